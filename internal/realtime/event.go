package realtime

import (
	"fmt"

	"github.com/sharpcut-app/sharpcut-api/internal/models"
)

// Row-level change event for the appointment collection, mirroring
// what subscribers get on the wire.
type EventType string

const (
	EventInsert EventType = "INSERT"
	EventUpdate EventType = "UPDATE"
	EventDelete EventType = "DELETE"
)

type Event struct {
	Type EventType           `json:"event_type"`
	New  *models.Appointment `json:"new,omitempty"`
	Old  *models.Appointment `json:"old,omitempty"`
}

// Channel returns the per-shop feed channel name.
func Channel(shopID uint) string {
	return fmt.Sprintf("shop:%d:appointments", shopID)
}
