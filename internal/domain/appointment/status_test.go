package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharpcut-app/sharpcut-api/internal/httperr"
	"github.com/sharpcut-app/sharpcut-api/internal/models"
)

func TestIsLive(t *testing.T) {
	assert.True(t, IsLive(StatusPending))
	assert.True(t, IsLive(StatusConfirmed))

	assert.False(t, IsLive(StatusCancelled))
	assert.False(t, IsLive(StatusCompleted))
	assert.False(t, IsLive(StatusNoShow))
}

func TestIsBlocking(t *testing.T) {
	assert.True(t, IsBlocking(StatusPending))
	assert.True(t, IsBlocking(StatusConfirmed))
	assert.True(t, IsBlocking(StatusNoShow), "a no-show still consumed its slot")

	assert.False(t, IsBlocking(StatusCancelled))
	assert.False(t, IsBlocking(StatusCompleted))
}

func TestCancel(t *testing.T) {
	now := time.Now()

	ap := &models.Appointment{Status: string(StatusConfirmed)}
	require.NoError(t, Cancel(ap, now))
	assert.Equal(t, string(StatusCancelled), ap.Status)
	require.NotNil(t, ap.CancelledAt)
	assert.Equal(t, now, *ap.CancelledAt)

	// cancelling twice is rejected
	err := Cancel(ap, now)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestComplete(t *testing.T) {
	now := time.Now()

	ap := &models.Appointment{Status: string(StatusPending)}
	require.NoError(t, Complete(ap, now))
	assert.Equal(t, string(StatusCompleted), ap.Status)
	require.NotNil(t, ap.CompletedAt)

	done := &models.Appointment{Status: string(StatusCompleted)}
	assert.Error(t, Complete(done, now))
}

func TestMarkNoShow(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusConfirmed)}
	require.NoError(t, MarkNoShow(ap))
	assert.Equal(t, string(StatusNoShow), ap.Status)

	// only confirmed appointments can be marked
	pending := &models.Appointment{Status: string(StatusPending)}
	assert.Error(t, MarkNoShow(pending))

	cancelled := &models.Appointment{Status: string(StatusCancelled)}
	assert.Error(t, MarkNoShow(cancelled))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusConfirmed, InitialStatus())
}
