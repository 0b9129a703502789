package schedule

import (
	"fmt"
	"strings"
	"time"
)

// SlotMinutes is the booking granularity. Everything in the product
// assumes it: the grid the clients see, the stored start times, the
// uniqueness of a (shop, date, start) slot.
const SlotMinutes = 30

// ParseClock parses "HH:MM" into minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock %q", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ParseRange parses a "HH:MM-HH:MM" open interval. Start must be
// strictly before end.
func ParseRange(s string) (start, end int, err error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid range %q", s)
	}
	if start, err = ParseClock(parts[0]); err != nil {
		return 0, 0, err
	}
	if end, err = ParseClock(parts[1]); err != nil {
		return 0, 0, err
	}
	if start >= end {
		return 0, 0, fmt.Errorf("range %q starts after it ends", s)
	}
	return start, end, nil
}

// FormatSlot renders minutes since midnight as the stored "HH:MM:00"
// start-time representation.
func FormatSlot(minutes int) string {
	return fmt.Sprintf("%02d:%02d:00", minutes/60, minutes%60)
}

// Slots walks the day's working-hour ranges and emits every bookable
// start time: one candidate per granularity step, end exclusive, in
// the order the ranges were configured. Candidates repeated by
// overlapping ranges are emitted once; candidates present in booked
// are dropped. Empty ranges means the shop is closed that day and
// yields an empty grid.
//
// Ranges are validated when the owner saves them; a malformed range
// that slipped through is skipped rather than aborting the whole day.
func Slots(ranges []string, booked []string, granularity int) []string {
	if granularity <= 0 {
		granularity = SlotMinutes
	}

	taken := make(map[string]struct{}, len(booked))
	for _, b := range booked {
		taken[b] = struct{}{}
	}

	seen := make(map[string]struct{})
	slots := []string{}

	for _, r := range ranges {
		start, end, err := ParseRange(r)
		if err != nil {
			continue
		}

		for cur := start; cur < end; cur += granularity {
			slot := FormatSlot(cur)

			if _, dup := seen[slot]; dup {
				continue
			}
			seen[slot] = struct{}{}

			if _, busy := taken[slot]; busy {
				continue
			}
			slots = append(slots, slot)
		}
	}

	return slots
}

// Contains reports whether start ("HH:MM:00") is a valid candidate of
// the given ranges, ignoring bookings.
func Contains(ranges []string, start string, granularity int) bool {
	for _, slot := range Slots(ranges, nil, granularity) {
		if slot == start {
			return true
		}
	}
	return false
}
