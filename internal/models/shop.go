package models

import "time"

type Shop struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	OwnerID uint   `gorm:"index" json:"owner_id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Slug    string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Phone   string `gorm:"size:20" json:"phone"`
	Address string `gorm:"size:255" json:"address"`
	LogoURL string `gorm:"size:255" json:"logo_url"`

	Timezone string `gorm:"size:50" json:"timezone"`

	SubscriptionStatus  string     `gorm:"size:20;default:'trial'" json:"subscription_status"`
	TrialEndDate        *time.Time `json:"trial_end_date"`
	SubscriptionEndDate *time.Time `json:"subscription_end_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
