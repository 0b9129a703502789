package appointment

import "github.com/sharpcut-app/sharpcut-api/internal/httperr"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
	StatusNoShow    Status = "no-show"
)

// Live statuses hold their slot against double booking.
func IsLive(s Status) bool {
	return s == StatusPending || s == StatusConfirmed
}

// Blocking statuses keep the start time out of the availability grid.
// no-show still blocks: the slot was consumed even if nobody came.
func IsBlocking(s Status) bool {
	return s != StatusCancelled && s != StatusCompleted
}

func CanCancel(current Status) error {
	if !IsLive(current) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if !IsLive(current) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanMarkNoShow(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusConfirmed
}
