package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTimeRange(t *testing.T) {
	assert.True(t, IsTimeRange("09:00-18:00"))
	assert.True(t, IsTimeRange("00:00-23:30"))

	assert.False(t, IsTimeRange("18:00-09:00"))
	assert.False(t, IsTimeRange("09:00-09:00"))
	assert.False(t, IsTimeRange("09:00"))
	assert.False(t, IsTimeRange("9am-6pm"))
	assert.False(t, IsTimeRange(""))
}
