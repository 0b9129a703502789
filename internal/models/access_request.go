package models

import "time"

// Barber onboarding request, decided by an admin.
type AccessRequest struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	ShopName string `gorm:"size:100;not null" json:"shop_name"`
	ShopSlug string `gorm:"size:100;not null" json:"shop_slug"`
	Phone    string `gorm:"size:20" json:"phone"`
	Message  string `gorm:"size:255" json:"message"`

	Status    string     `gorm:"size:20;default:'pending'" json:"status"`
	DecidedAt *time.Time `json:"decided_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)
