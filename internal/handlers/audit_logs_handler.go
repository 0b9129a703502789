package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sharpcut-app/sharpcut-api/internal/httperr"
	"github.com/sharpcut-app/sharpcut-api/internal/httpresp"
	"github.com/sharpcut-app/sharpcut-api/internal/middleware"
	"github.com/sharpcut-app/sharpcut-api/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	var logs []models.AuditLog
	if err := h.db.
		Where("shop_id = ?", shopID).
		Order("created_at DESC").
		Limit(100).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Could not list audit logs.")
		return
	}

	httpresp.List(c, logs)
}
