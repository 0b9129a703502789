package realtime

import "time"

// NotificationKind classifies feed events for the dashboard bell.
type NotificationKind string

const (
	NotifyNewBooking NotificationKind = "new_booking"
	NotifyCancelled  NotificationKind = "cancelled"
)

type Notification struct {
	Kind          NotificationKind    `json:"kind"`
	AppointmentID uint                `json:"appointment_id"`
	Date          string              `json:"date"`
	StartTime     string              `json:"start_time"`
	At            time.Time           `json:"at"`
}

// Classify maps a change event to a notification, or reports that the
// event only warrants a silent re-fetch. Deletes count as implicit
// cancellations and use whichever row the feed still carries.
func Classify(ev Event, now time.Time) (Notification, bool) {
	switch ev.Type {
	case EventInsert:
		if ev.New != nil && ev.New.Status == "confirmed" {
			return notificationFor(NotifyNewBooking, ev, now), true
		}

	case EventUpdate:
		if ev.New != nil && ev.New.Status == "cancelled" {
			return notificationFor(NotifyCancelled, ev, now), true
		}

	case EventDelete:
		return notificationFor(NotifyCancelled, ev, now), true
	}

	return Notification{}, false
}

func notificationFor(kind NotificationKind, ev Event, now time.Time) Notification {
	row := ev.New
	if row == nil {
		row = ev.Old
	}

	n := Notification{Kind: kind, At: now}
	if row != nil {
		n.AppointmentID = row.ID
		n.Date = row.Date
		n.StartTime = row.StartTime
	}
	return n
}

// NotificationFeed folds events into the bounded, most-recent-first
// list the dashboard shows. It is owned by a single subscriber
// goroutine and needs no locking.
type NotificationFeed struct {
	max   int
	items []Notification
}

func NewNotificationFeed(max int) *NotificationFeed {
	if max <= 0 {
		max = 10
	}
	return &NotificationFeed{max: max}
}

// Apply folds one event in and returns the resulting notification,
// if the event produced one.
func (f *NotificationFeed) Apply(ev Event, now time.Time) (Notification, bool) {
	n, ok := Classify(ev, now)
	if !ok {
		return Notification{}, false
	}

	f.items = append([]Notification{n}, f.items...)
	if len(f.items) > f.max {
		f.items = f.items[:f.max]
	}
	return n, true
}

func (f *NotificationFeed) Items() []Notification {
	return f.items
}
