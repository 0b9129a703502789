package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sharpcut-app/sharpcut-api/internal/httperr"
	"github.com/sharpcut-app/sharpcut-api/internal/middleware"
	"github.com/sharpcut-app/sharpcut-api/internal/models"
	"github.com/sharpcut-app/sharpcut-api/internal/validators"
)

type WorkingHoursHandler struct {
	db *gorm.DB
}

func NewWorkingHoursHandler(db *gorm.DB) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db}
}

type WorkingDayConfig struct {
	Weekday int      `json:"weekday" binding:"min=0,max=6"`
	Ranges  []string `json:"ranges"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required"`
}

// weekday -> ordered ranges, the shape both the editor and the public
// booking page consume.
func groupByWeekday(rows []models.WorkingHours) map[int][]string {
	grouped := make(map[int][]string)
	for _, row := range rows {
		grouped[row.Weekday] = append(grouped[row.Weekday], row.TimeRange)
	}
	return grouped
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	var rows []models.WorkingHours
	if err := h.db.
		Where("shop_id = ?", shopID).
		Order("weekday ASC, position ASC").
		Find(&rows).Error; err != nil {
		httperr.Internal(c, "failed_to_get_working_hours", "Could not load working hours.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": groupByWeekday(rows)})
}

// Update replaces the whole week. Range strings are validated here
// at the edit step; the slot generator downstream assumes they are
// well-formed.
func (h *WorkingHoursHandler) Update(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var toCreate []models.WorkingHours
	for _, day := range req.Days {
		if day.Weekday < 0 || day.Weekday > 6 {
			httperr.BadRequest(c, "invalid_weekday", "Weekday must be 0-6.")
			return
		}
		for pos, r := range day.Ranges {
			if !validators.IsTimeRange(r) {
				httperr.BadRequest(c, "invalid_time_range", "Ranges must be HH:MM-HH:MM with start before end.")
				return
			}
			toCreate = append(toCreate, models.WorkingHours{
				ShopID:    shopID,
				Weekday:   day.Weekday,
				Position:  pos,
				TimeRange: r,
			})
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("shop_id = ?", shopID).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}

		if len(toCreate) > 0 {
			return tx.Create(&toCreate).Error
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_working_hours", "Could not save working hours.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
