package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/sharpcut-app/sharpcut-api/internal/audit"
	"github.com/sharpcut-app/sharpcut-api/internal/authz"
	"github.com/sharpcut-app/sharpcut-api/internal/billing"
	"github.com/sharpcut-app/sharpcut-api/internal/config"
	"github.com/sharpcut-app/sharpcut-api/internal/handlers"
	infraRepo "github.com/sharpcut-app/sharpcut-api/internal/infra/repository"
	"github.com/sharpcut-app/sharpcut-api/internal/middleware"
	"github.com/sharpcut-app/sharpcut-api/internal/models"
	"github.com/sharpcut-app/sharpcut-api/internal/realtime"
	"github.com/sharpcut-app/sharpcut-api/internal/storage"
	ucAppointment "github.com/sharpcut-app/sharpcut-api/internal/usecase/appointment"
)

type Deps struct {
	DB      *gorm.DB
	Config  *config.Config
	Broker  *realtime.Broker
	Billing *billing.Client
	Log     zerolog.Logger
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TimeoutMiddleware())

	// unknown paths go back to the root
	r.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusTemporaryRedirect, "/")
	})

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)

	auditLogger := audit.New(d.DB)
	auditDispatcher := audit.NewDispatcher(auditLogger, d.Log)

	logoUploader := storage.NewLogoUploader(d.Config)

	// ======================================================
	// USE CASES (APPOINTMENTS)
	// ======================================================
	bookUC := ucAppointment.NewBook(appointmentRepo, d.Broker, auditDispatcher)
	cancelUC := ucAppointment.NewCancel(appointmentRepo, d.Broker, auditDispatcher)
	completeUC := ucAppointment.NewComplete(appointmentRepo, d.Broker, auditDispatcher)
	noShowUC := ucAppointment.NewMarkNoShow(appointmentRepo, d.Broker, auditDispatcher)
	deleteUC := ucAppointment.NewDelete(appointmentRepo, d.Broker, auditDispatcher)
	getUC := ucAppointment.NewGetForShop(appointmentRepo)
	availabilityUC := ucAppointment.NewAvailability(appointmentRepo)
	listByDateUC := ucAppointment.NewListByDate(appointmentRepo)
	listByMonthUC := ucAppointment.NewListByMonth(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.DB, d.Config)
	meHandler := handlers.NewMeHandler(d.DB)
	shopHandler := handlers.NewShopHandler(d.DB, logoUploader)
	serviceHandler := handlers.NewServiceHandler(d.DB)
	customerHandler := handlers.NewCustomerHandler(d.DB)
	workingHoursHandler := handlers.NewWorkingHoursHandler(d.DB)

	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		cancelUC,
		completeUC,
		noShowUC,
		deleteUC,
		getUC,
		listByDateUC,
		listByMonthUC,
	)

	publicHandler := handlers.NewPublicHandler(d.DB, availabilityUC, bookUC)
	adminHandler := handlers.NewAdminHandler(d.DB, d.Config, auditDispatcher)
	billingHandler := handlers.NewBillingHandler(d.DB, d.Billing, d.Log)
	feedHandler := handlers.NewFeedHandler(d.Broker, d.Log)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)

	// ======================================================
	// ROUTE POLICIES
	// ======================================================
	barberOnly := middleware.Policy(d.DB, d.Log, authz.RequireActiveSubscription())
	adminOnly := middleware.Policy(d.DB, d.Log, authz.RequireRole(models.RoleAdmin))

	// ======================================================
	// PUBLIC SURFACE
	// ======================================================
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "sharpcut-api"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC BOOKING FLOW
		// ------------------------------
		publicAPI := api.Group("/public")
		publicAPI.Use(middleware.OptionalAuth(d.Config))
		{
			publicAPI.GET("/:slug", publicHandler.ShopProfile)
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/working-hours", publicHandler.WorkingHours)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST("/:slug/appointments", publicHandler.CreateAppointment)
		}

		// ------------------------------
		// AUTH + BILLING WEBHOOK
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/billing/webhook", billingHandler.Webhook)

		// ------------------------------
		// AUTHENTICATED (any role)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Config))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.POST("/me/access-requests", meHandler.CreateAccessRequest)
			secured.GET("/me/access-request", meHandler.GetMyAccessRequest)

			// ------------------------------
			// BARBER AREA (role + subscription gate)
			// ------------------------------
			barber := secured.Group("/me")
			barber.Use(barberOnly)
			{
				barber.GET("/shop", shopHandler.GetMyShop)
				barber.PATCH("/shop", shopHandler.UpdateMyShop)
				barber.PUT("/shop/logo", shopHandler.UploadLogo)

				barber.GET("/services", serviceHandler.List)
				barber.POST("/services", serviceHandler.Create)
				barber.PATCH("/services/:id", serviceHandler.Update)
				barber.DELETE("/services/:id", serviceHandler.Delete)

				barber.GET("/customers", customerHandler.List)

				barber.GET("/working-hours", workingHoursHandler.Get)
				barber.PUT("/working-hours", workingHoursHandler.Update)

				barber.POST("/appointments", appointmentHandler.Create)
				barber.GET("/appointments", appointmentHandler.ListByDate)
				barber.GET("/appointments/month", appointmentHandler.ListByMonth)
				barber.GET("/appointments/feed", feedHandler.Stream)
				barber.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
				barber.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
				barber.PATCH("/appointments/:id/no-show", appointmentHandler.NoShow)
				barber.DELETE("/appointments/:id", appointmentHandler.Delete)
				barber.GET("/appointments/:id/whatsapp-link", appointmentHandler.WhatsApp)

				barber.POST("/subscription/checkout", billingHandler.CreateCheckout)

				barber.GET("/audit-logs", auditLogsHandler.List)
			}

			// ------------------------------
			// ADMIN CONSOLE
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(adminOnly)
			{
				admin.GET("/access-requests", adminHandler.ListAccessRequests)
				admin.POST("/access-requests/:id/approve", adminHandler.ApproveAccessRequest)
				admin.POST("/access-requests/:id/reject", adminHandler.RejectAccessRequest)

				admin.GET("/shops", adminHandler.ListShops)
				admin.PATCH("/shops/:id/subscription", adminHandler.UpdateSubscription)
			}
		}
	}
}
