package models

import "time"

// Shop-scoped client record. Guests get one keyed by phone,
// logged-in customers get one linked to their user.
type Customer struct {
	ID     uint  `gorm:"primaryKey" json:"id"`
	ShopID uint  `gorm:"index" json:"shop_id"`
	UserID *uint `gorm:"index" json:"user_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
