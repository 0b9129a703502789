package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sharpcut-app/sharpcut-api/internal/httperr"
	"github.com/sharpcut-app/sharpcut-api/internal/middleware"
	"github.com/sharpcut-app/sharpcut-api/internal/models"
	"github.com/sharpcut-app/sharpcut-api/internal/storage"
	"github.com/sharpcut-app/sharpcut-api/internal/timezone"
)

type ShopHandler struct {
	db    *gorm.DB
	logos *storage.LogoUploader
}

func NewShopHandler(db *gorm.DB, logos *storage.LogoUploader) *ShopHandler {
	return &ShopHandler{db: db, logos: logos}
}

func (h *ShopHandler) GetMyShop(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	var shop models.Shop
	if err := h.db.First(&shop, shopID).Error; err != nil {
		httperr.NotFound(c, "shop_not_found", "Shop not found.")
		return
	}

	c.JSON(http.StatusOK, shop)
}

type UpdateShopRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Timezone *string `json:"timezone"`
}

func (h *ShopHandler) UpdateMyShop(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	var req UpdateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var shop models.Shop
	if err := h.db.First(&shop, shopID).Error; err != nil {
		httperr.NotFound(c, "shop_not_found", "Shop not found.")
		return
	}

	if req.Name != nil {
		shop.Name = *req.Name
	}
	if req.Phone != nil {
		shop.Phone = *req.Phone
	}
	if req.Address != nil {
		shop.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Unknown timezone.")
			return
		}
		shop.Timezone = *req.Timezone
	}

	if err := h.db.Save(&shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_shop", "Could not update shop.")
		return
	}

	c.JSON(http.StatusOK, shop)
}

// UploadLogo stores the shop logo. The 2MB cap is checked before the
// file is read in full.
func (h *ShopHandler) UploadLogo(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	file, err := c.FormFile("logo")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Send the image as the 'logo' field.")
		return
	}

	if file.Size > storage.MaxLogoBytes {
		httperr.BadRequest(c, "logo_too_large", "Logo must be at most 2MB.")
		return
	}

	f, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Could not read upload.")
		return
	}
	defer f.Close()

	url, err := h.logos.Upload(c.Request.Context(), f, file.Size)
	if err != nil {
		if httperr.IsBusiness(err, "logo_too_large") {
			httperr.BadRequest(c, "logo_too_large", "Logo must be at most 2MB.")
			return
		}
		if httperr.IsBusiness(err, "invalid_image") {
			httperr.BadRequest(c, "invalid_image", "Could not decode image.")
			return
		}
		httperr.Internal(c, "failed_to_upload_logo", "Could not store logo.")
		return
	}

	if err := h.db.Model(&models.Shop{}).
		Where("id = ?", shopID).
		Update("logo_url", url).Error; err != nil {
		httperr.Internal(c, "failed_to_save_logo", "Could not save logo URL.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"logo_url": url})
}
