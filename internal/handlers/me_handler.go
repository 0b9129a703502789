package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sharpcut-app/sharpcut-api/internal/domain/subscription"
	"github.com/sharpcut-app/sharpcut-api/internal/httperr"
	"github.com/sharpcut-app/sharpcut-api/internal/middleware"
	"github.com/sharpcut-app/sharpcut-api/internal/models"
	"github.com/sharpcut-app/sharpcut-api/internal/timezone"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

// GetMe returns the profile, the shop if there is one and the gate
// state the front end routes on.
func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	payload := gin.H{
		"user": userPayload(&user),
	}

	if user.ShopID != nil {
		var shop models.Shop
		if err := h.db.First(&shop, *user.ShopID).Error; err == nil {
			payload["shop"] = shop
			payload["gate"] = subscription.Evaluate(&shop, timezone.NowIn(shop.Timezone))
		}
	} else {
		// no shop yet: onboarding, not an error
		payload["gate"] = subscription.StateNoShop
	}

	c.JSON(http.StatusOK, payload)
}

// --------- Access requests ---------

type AccessRequestInput struct {
	ShopName string `json:"shop_name" binding:"required"`
	ShopSlug string `json:"shop_slug" binding:"required"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
}

func (h *MeHandler) CreateAccessRequest(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req AccessRequestInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var pending int64
	h.db.Model(&models.AccessRequest{}).
		Where("user_id = ? AND status = ?", userID, models.RequestPending).
		Count(&pending)
	if pending > 0 {
		httperr.Conflict(c, "request_already_pending", "There is already a pending request.")
		return
	}

	ar := models.AccessRequest{
		UserID:   userID,
		ShopName: req.ShopName,
		ShopSlug: strings.ToLower(strings.TrimSpace(req.ShopSlug)),
		Phone:    req.Phone,
		Message:  req.Message,
		Status:   models.RequestPending,
	}

	if err := h.db.Create(&ar).Error; err != nil {
		httperr.Internal(c, "failed_to_create_request", "Could not create request.")
		return
	}

	c.JSON(http.StatusCreated, ar)
}

// GetMyAccessRequest returns the caller's latest request. A missing
// row is a routing signal for the front end, not a failure.
func (h *MeHandler) GetMyAccessRequest(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var ar models.AccessRequest
	err := h.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&ar).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "no_request", "No access request yet.")
			return
		}
		httperr.Internal(c, "failed_to_get_request", "Could not load request.")
		return
	}

	c.JSON(http.StatusOK, ar)
}
