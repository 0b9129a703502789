package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/sharpcut-app/sharpcut-api/internal/billing"
	"github.com/sharpcut-app/sharpcut-api/internal/domain/subscription"
	"github.com/sharpcut-app/sharpcut-api/internal/httperr"
	"github.com/sharpcut-app/sharpcut-api/internal/middleware"
	"github.com/sharpcut-app/sharpcut-api/internal/models"
)

type BillingHandler struct {
	db      *gorm.DB
	billing *billing.Client
	log     zerolog.Logger
}

func NewBillingHandler(db *gorm.DB, billingClient *billing.Client, log zerolog.Logger) *BillingHandler {
	return &BillingHandler{db: db, billing: billingClient, log: log}
}

// CreateCheckout starts a Mercado Pago checkout for one month of the
// plan.
func (h *BillingHandler) CreateCheckout(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	if h.billing == nil {
		httperr.Internal(c, "billing_disabled", "Billing is not configured.")
		return
	}

	var shop models.Shop
	if err := h.db.First(&shop, shopID).Error; err != nil {
		httperr.NotFound(c, "shop_not_found", "Shop not found.")
		return
	}

	checkout, err := h.billing.CreateSubscriptionCheckout(c.Request.Context(), &shop)
	if err != nil {
		h.log.Error().Err(err).Uint("shop_id", shopID).Msg("checkout creation failed")
		httperr.Internal(c, "failed_to_create_checkout", "Could not start checkout.")
		return
	}

	c.JSON(http.StatusOK, checkout)
}

type webhookPayload struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// Webhook activates the subscription once Mercado Pago reports the
// payment approved. Anything unexpected is acknowledged and ignored:
// the gateway retries on non-2xx and we never want to change state on
// a payload we did not understand.
func (h *BillingHandler) Webhook(c *gin.Context) {
	if h.billing == nil {
		c.Status(http.StatusOK)
		return
	}

	var payload webhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Type != "payment" {
		c.Status(http.StatusOK)
		return
	}

	paymentID, err := strconv.Atoi(payload.Data.ID)
	if err != nil {
		c.Status(http.StatusOK)
		return
	}

	info, err := h.billing.Payment(c.Request.Context(), paymentID)
	if err != nil {
		h.log.Warn().Err(err).Int("payment_id", paymentID).Msg("payment lookup failed")
		c.Status(http.StatusOK)
		return
	}

	if info.Status != "approved" {
		c.Status(http.StatusOK)
		return
	}

	var shop models.Shop
	if err := h.db.First(&shop, info.ShopID).Error; err != nil {
		h.log.Warn().Err(err).Uint("shop_id", info.ShopID).Msg("paid shop not found")
		c.Status(http.StatusOK)
		return
	}

	subscription.Activate(&shop, time.Now())

	// a failed write must surface as non-2xx: the gateway only
	// retries on error, and the shop already paid
	if err := h.db.Save(&shop).Error; err != nil {
		h.log.Error().Err(err).Uint("shop_id", shop.ID).Msg("subscription activation failed")
		httperr.Internal(c, "failed_to_activate_subscription", "Could not activate subscription.")
		return
	}

	c.Status(http.StatusOK)
}
