package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sharpcut-app/sharpcut-api/internal/httperr"
	"github.com/sharpcut-app/sharpcut-api/internal/httpresp"
	"github.com/sharpcut-app/sharpcut-api/internal/middleware"
	"github.com/sharpcut-app/sharpcut-api/internal/models"
	ucAppointment "github.com/sharpcut-app/sharpcut-api/internal/usecase/appointment"
)

// Client-facing booking flow, keyed by shop slug.
type PublicHandler struct {
	db           *gorm.DB
	availability *ucAppointment.Availability
	book         *ucAppointment.Book
}

func NewPublicHandler(
	db *gorm.DB,
	availability *ucAppointment.Availability,
	book *ucAppointment.Book,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		availability: availability,
		book:         book,
	}
}

func (h *PublicHandler) shopBySlug(c *gin.Context) (*models.Shop, bool) {
	var shop models.Shop
	if err := h.db.
		Where("slug = ?", c.Param("slug")).
		First(&shop).Error; err != nil {
		httperr.NotFound(c, "shop_not_found", "Shop not found.")
		return nil, false
	}
	return &shop, true
}

func (h *PublicHandler) ShopProfile(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       shop.ID,
		"name":     shop.Name,
		"slug":     shop.Slug,
		"phone":    shop.Phone,
		"address":  shop.Address,
		"logo_url": shop.LogoURL,
	})
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	var services []models.Service
	if err := h.db.
		Where("shop_id = ? AND active = true", shop.ID).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	httpresp.List(c, services)
}

func (h *PublicHandler) WorkingHours(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	var rows []models.WorkingHours
	if err := h.db.
		Where("shop_id = ?", shop.ID).
		Order("weekday ASC, position ASC").
		Find(&rows).Error; err != nil {
		httperr.Internal(c, "failed_to_get_working_hours", "Could not load working hours.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": groupByWeekday(rows)})
}

// Availability returns the open slot grid for one date.
func (h *PublicHandler) Availability(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), shop.ID, date)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Invalid date.")
			return
		}
		httperr.Internal(c, "failed_to_get_availability", "Could not compute availability.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

type PublicBookingRequest struct {
	ServiceID  uint   `json:"service_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	GuestName  string `json:"guest_name"`
	GuestPhone string `json:"guest_phone"`
	GuestEmail string `json:"guest_email"`
	Notes      string `json:"notes"`
}

// CreateAppointment books a slot for a guest, or for the logged-in
// customer when the request carries a valid token (OptionalAuth).
func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	var req PublicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	in := ucAppointment.BookInput{
		ShopID:    shop.ID,
		Date:      req.Date,
		Time:      req.Time,
		ServiceID: req.ServiceID,
		Notes:     req.Notes,
	}

	if userID, authed := c.Get(middleware.ContextUserID); authed {
		uid := userID.(uint)
		in.CustomerUserID = &uid
	} else {
		in.GuestName = req.GuestName
		in.GuestPhone = req.GuestPhone
		in.GuestEmail = req.GuestEmail
	}

	ap, err := h.book.Execute(c.Request.Context(), in)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"reference":  ap.Reference,
		"date":       ap.Date,
		"start_time": ap.StartTime,
		"status":     ap.Status,
		"service":    ap.ServiceName,
	})
}
