package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sharpcut-app/sharpcut-api/internal/audit"
	"github.com/sharpcut-app/sharpcut-api/internal/config"
	"github.com/sharpcut-app/sharpcut-api/internal/domain/subscription"
	"github.com/sharpcut-app/sharpcut-api/internal/httperr"
	"github.com/sharpcut-app/sharpcut-api/internal/httpresp"
	"github.com/sharpcut-app/sharpcut-api/internal/middleware"
	"github.com/sharpcut-app/sharpcut-api/internal/models"
	"github.com/sharpcut-app/sharpcut-api/internal/timezone"
)

type AdminHandler struct {
	db    *gorm.DB
	cfg   *config.Config
	audit *audit.Dispatcher
}

func NewAdminHandler(db *gorm.DB, cfg *config.Config, auditDispatcher *audit.Dispatcher) *AdminHandler {
	return &AdminHandler{db: db, cfg: cfg, audit: auditDispatcher}
}

// --------- Access requests ---------

func (h *AdminHandler) ListAccessRequests(c *gin.Context) {
	q := h.db.Preload("User").Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var requests []models.AccessRequest
	if err := q.Find(&requests).Error; err != nil {
		httperr.Internal(c, "failed_to_list_requests", "Could not list access requests.")
		return
	}

	httpresp.List(c, requests)
}

// Approve flips the request, grants the barber role, creates the shop
// and opens the trial window in a single transaction.
func (h *AdminHandler) ApproveAccessRequest(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var approvedShopID uint

	err := h.db.Transaction(func(tx *gorm.DB) error {
		var req models.AccessRequest
		if err := tx.
			Where("id = ? AND status = ?", id, models.RequestPending).
			First(&req).Error; err != nil {
			return httperr.ErrBusiness("request_not_found")
		}

		slug := strings.ToLower(strings.TrimSpace(req.ShopSlug))

		var count int64
		tx.Model(&models.Shop{}).Where("slug = ?", slug).Count(&count)
		if count > 0 {
			return httperr.ErrBusiness("slug_already_exists")
		}

		trialEnd := timezone.Now().AddDate(0, 0, h.cfg.TrialDays)

		shop := models.Shop{
			OwnerID:            req.UserID,
			Name:               req.ShopName,
			Slug:               slug,
			Phone:              req.Phone,
			Timezone:           timezone.DefaultTimezone,
			SubscriptionStatus: subscription.StatusTrial,
			TrialEndDate:       &trialEnd,
		}
		if err := tx.Create(&shop).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.User{}).
			Where("id = ?", req.UserID).
			Updates(map[string]any{
				"role":    models.RoleBarber,
				"shop_id": shop.ID,
			}).Error; err != nil {
			return err
		}

		now := time.Now()
		req.Status = models.RequestApproved
		req.DecidedAt = &now
		if err := tx.Save(&req).Error; err != nil {
			return err
		}

		approvedShopID = shop.ID
		return nil
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "request_not_found"):
			httperr.NotFound(c, "request_not_found", "Pending request not found.")
		case httperr.IsBusiness(err, "slug_already_exists"):
			httperr.Conflict(c, "slug_already_exists", "Shop slug is taken.")
		default:
			httperr.Internal(c, "failed_to_approve_request", "Could not approve request.")
		}
		return
	}

	h.audit.Dispatch(audit.Event{
		ShopID: approvedShopID,
		UserID: &adminID,
		Action: "access_request_approved",
		Entity: "access_request",
	})

	c.JSON(http.StatusOK, gin.H{"status": "approved", "shop_id": approvedShopID})
}

func (h *AdminHandler) RejectAccessRequest(c *gin.Context) {
	id := c.Param("id")

	now := time.Now()
	res := h.db.Model(&models.AccessRequest{}).
		Where("id = ? AND status = ?", id, models.RequestPending).
		Updates(map[string]any{
			"status":     models.RequestRejected,
			"decided_at": now,
		})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_reject_request", "Could not reject request.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "request_not_found", "Pending request not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "rejected"})
}

// --------- Shops / subscriptions ---------

func (h *AdminHandler) ListShops(c *gin.Context) {
	var shops []models.Shop
	if err := h.db.Order("created_at DESC").Find(&shops).Error; err != nil {
		httperr.Internal(c, "failed_to_list_shops", "Could not list shops.")
		return
	}

	httpresp.List(c, shops)
}

type UpdateSubscriptionRequest struct {
	SubscriptionStatus  *string    `json:"subscription_status"`
	TrialEndDate        *time.Time `json:"trial_end_date"`
	SubscriptionEndDate *time.Time `json:"subscription_end_date"`
}

func (h *AdminHandler) UpdateSubscription(c *gin.Context) {
	id := c.Param("id")

	var req UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var shop models.Shop
	if err := h.db.First(&shop, id).Error; err != nil {
		httperr.NotFound(c, "shop_not_found", "Shop not found.")
		return
	}

	if req.SubscriptionStatus != nil {
		switch *req.SubscriptionStatus {
		case subscription.StatusTrial, subscription.StatusActive, subscription.StatusInactive:
			shop.SubscriptionStatus = *req.SubscriptionStatus
		default:
			httperr.BadRequest(c, "invalid_status", "Unknown subscription status.")
			return
		}
	}
	if req.TrialEndDate != nil {
		shop.TrialEndDate = req.TrialEndDate
	}
	if req.SubscriptionEndDate != nil {
		shop.SubscriptionEndDate = req.SubscriptionEndDate
	}

	if err := h.db.Save(&shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_shop", "Could not update shop.")
		return
	}

	c.JSON(http.StatusOK, shop)
}
