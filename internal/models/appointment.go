package models

import "time"

type Appointment struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	ShopID uint `gorm:"index" json:"shop_id"`
	Shop   Shop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	// exactly one of the two identities is set
	CustomerID *uint     `json:"customer_id"`
	Customer   *Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer,omitempty"`
	GuestName  string    `gorm:"size:100" json:"guest_name"`
	GuestPhone string    `gorm:"size:20" json:"guest_phone"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// snapshot of the service at booking time
	ServiceName     string  `gorm:"size:100" json:"service_name"`
	ServicePrice    float64 `json:"service_price"`
	ServiceDuration int     `json:"service_duration"`

	Date      string `gorm:"size:10;index;not null" json:"date"`       // 2006-01-02
	StartTime string `gorm:"size:8;not null" json:"start_time"`        // 15:04:05
	Status    string `gorm:"size:20;default:'confirmed'" json:"status"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
