package models

import "time"

// One open interval of a shop's week. A weekday may have several
// rows ("09:00-12:00", "13:00-18:00"); Position keeps the order the
// owner configured. No rows for a weekday means closed.
type WorkingHours struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	ShopID uint `gorm:"index" json:"shop_id"`

	Weekday   int    `json:"weekday"`
	Position  int    `json:"position"`
	TimeRange string `gorm:"size:11;not null" json:"time_range"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
