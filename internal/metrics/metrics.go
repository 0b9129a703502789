package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Bookings = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sharpcut_bookings_total",
		Help: "Appointments successfully booked.",
	})

	SlotConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sharpcut_slot_conflicts_total",
		Help: "Bookings rejected because the slot was already taken.",
	})

	RealtimeEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sharpcut_realtime_events_total",
		Help: "Appointment change-feed events published.",
	}, []string{"event_type"})
)
