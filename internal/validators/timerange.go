package validators

import "github.com/sharpcut-app/sharpcut-api/internal/domain/schedule"

// IsTimeRange validates the "HH:MM-HH:MM" syntax used by working
// hours, including start < end.
func IsTimeRange(s string) bool {
	_, _, err := schedule.ParseRange(s)
	return err == nil
}
