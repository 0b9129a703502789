package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	min, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9*60+30, min)

	_, err = ParseClock("25:00")
	assert.Error(t, err)

	_, err = ParseClock("0900")
	assert.Error(t, err)
}

func TestParseRange(t *testing.T) {
	start, end, err := ParseRange("09:00-12:00")
	require.NoError(t, err)
	assert.Equal(t, 9*60, start)
	assert.Equal(t, 12*60, end)

	_, _, err = ParseRange("12:00-09:00")
	assert.Error(t, err, "start after end")

	_, _, err = ParseRange("09:00-09:00")
	assert.Error(t, err, "empty range")

	_, _, err = ParseRange("09:00")
	assert.Error(t, err)
}

func TestFormatSlot(t *testing.T) {
	assert.Equal(t, "09:00:00", FormatSlot(9*60))
	assert.Equal(t, "09:30:00", FormatSlot(9*60+30))
	assert.Equal(t, "00:00:00", FormatSlot(0))
}

func TestSlots_Basic(t *testing.T) {
	slots := Slots([]string{"09:00-10:00"}, nil, 30)
	assert.Equal(t, []string{"09:00:00", "09:30:00"}, slots)
}

func TestSlots_EndExclusive(t *testing.T) {
	// a single step range yields exactly one start time
	slots := Slots([]string{"09:00-09:30"}, nil, 30)
	assert.Equal(t, []string{"09:00:00"}, slots)
}

func TestSlots_BookedRemoved(t *testing.T) {
	slots := Slots([]string{"09:00-10:00"}, []string{"09:30:00"}, 30)
	assert.Equal(t, []string{"09:00:00"}, slots)
}

func TestSlots_MultipleRanges(t *testing.T) {
	slots := Slots([]string{"09:00-10:00", "14:00-15:00"}, nil, 30)
	assert.Equal(t, []string{"09:00:00", "09:30:00", "14:00:00", "14:30:00"}, slots)
}

func TestSlots_OverlappingRangesDeduped(t *testing.T) {
	slots := Slots([]string{"09:00-10:00", "09:30-10:30"}, nil, 30)
	assert.Equal(t, []string{"09:00:00", "09:30:00", "10:00:00"}, slots)
}

func TestSlots_ClosedDay(t *testing.T) {
	slots := Slots(nil, nil, 30)
	require.NotNil(t, slots, "closed day is an empty grid, not null")
	assert.Empty(t, slots)
}

func TestSlots_PartialStep(t *testing.T) {
	// candidates are start times only: 09:30 < 09:45, so it counts
	slots := Slots([]string{"09:00-09:45"}, nil, 30)
	assert.Equal(t, []string{"09:00:00", "09:30:00"}, slots)
}

func TestSlots_MalformedRangeSkipped(t *testing.T) {
	slots := Slots([]string{"bogus", "09:00-10:00"}, nil, 30)
	assert.Equal(t, []string{"09:00:00", "09:30:00"}, slots)
}

func TestSlots_DefaultGranularity(t *testing.T) {
	slots := Slots([]string{"09:00-10:00"}, nil, 0)
	assert.Len(t, slots, 60/SlotMinutes)
}

func TestContains(t *testing.T) {
	ranges := []string{"09:00-12:00"}

	assert.True(t, Contains(ranges, "09:00:00", 30))
	assert.True(t, Contains(ranges, "11:30:00", 30))
	assert.False(t, Contains(ranges, "12:00:00", 30), "end is exclusive")
	assert.False(t, Contains(ranges, "09:15:00", 30), "off the grid")
	assert.False(t, Contains(ranges, "08:30:00", 30))
}
