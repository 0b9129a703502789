package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/sharpcut-app/sharpcut-api/internal/domain/appointment"
	"github.com/sharpcut-app/sharpcut-api/internal/httperr"
	"github.com/sharpcut-app/sharpcut-api/internal/models"
	"github.com/sharpcut-app/sharpcut-api/internal/realtime"
)

func stateFixture(status domain.Status) (*fakeRepo, *capturePublisher) {
	return &fakeRepo{
		shop: &models.Shop{ID: 1, Timezone: "America/Sao_Paulo"},
		appointments: map[uint]*models.Appointment{
			7: {ID: 7, ShopID: 1, Date: "2026-09-01", StartTime: "09:00:00", Status: string(status)},
		},
	}, &capturePublisher{}
}

func TestCancel(t *testing.T) {
	repo, feed := stateFixture(domain.StatusConfirmed)
	uc := NewCancel(repo, feed, nopSink{})

	ap, err := uc.Execute(context.Background(), 1, 2, 7)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), ap.Status)
	assert.NotNil(t, ap.CancelledAt)
	assert.Equal(t, ap, repo.updated)

	require.Len(t, feed.events, 1)
	ev := feed.events[0]
	assert.Equal(t, realtime.EventUpdate, ev.Type)
	assert.Equal(t, string(domain.StatusCancelled), ev.New.Status)
	require.NotNil(t, ev.Old, "subscribers diff old against new")
	assert.Equal(t, string(domain.StatusConfirmed), ev.Old.Status)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	repo, feed := stateFixture(domain.StatusCancelled)
	uc := NewCancel(repo, feed, nopSink{})

	_, err := uc.Execute(context.Background(), 1, 2, 7)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Empty(t, feed.events)
}

func TestCancel_NotFound(t *testing.T) {
	repo, feed := stateFixture(domain.StatusConfirmed)
	uc := NewCancel(repo, feed, nopSink{})

	_, err := uc.Execute(context.Background(), 1, 2, 99)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestCancel_WrongShop(t *testing.T) {
	repo, feed := stateFixture(domain.StatusConfirmed)
	repo.appointments[7].ShopID = 2

	uc := NewCancel(repo, feed, nopSink{})

	_, err := uc.Execute(context.Background(), 1, 2, 7)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestComplete(t *testing.T) {
	repo, feed := stateFixture(domain.StatusConfirmed)
	uc := NewComplete(repo, feed, nopSink{})

	ap, err := uc.Execute(context.Background(), 1, 2, 7)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCompleted), ap.Status)
	assert.NotNil(t, ap.CompletedAt)
	require.Len(t, feed.events, 1)
	assert.Equal(t, realtime.EventUpdate, feed.events[0].Type)
}

func TestMarkNoShowUseCase(t *testing.T) {
	repo, feed := stateFixture(domain.StatusConfirmed)
	uc := NewMarkNoShow(repo, feed, nopSink{})

	ap, err := uc.Execute(context.Background(), 1, 2, 7)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusNoShow), ap.Status)
	require.Len(t, feed.events, 1)
}

func TestMarkNoShowUseCase_RequiresConfirmed(t *testing.T) {
	repo, feed := stateFixture(domain.StatusPending)
	uc := NewMarkNoShow(repo, feed, nopSink{})

	_, err := uc.Execute(context.Background(), 1, 2, 7)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestDelete(t *testing.T) {
	repo, feed := stateFixture(domain.StatusConfirmed)
	uc := NewDelete(repo, feed, nopSink{})

	err := uc.Execute(context.Background(), 1, 2, 7)
	require.NoError(t, err)

	require.NotNil(t, repo.deleted)
	assert.Equal(t, uint(7), repo.deleted.ID)

	require.Len(t, feed.events, 1)
	ev := feed.events[0]
	assert.Equal(t, realtime.EventDelete, ev.Type)
	assert.Nil(t, ev.New)
	require.NotNil(t, ev.Old)
	assert.Equal(t, uint(7), ev.Old.ID)
}

func TestListByMonth_Period(t *testing.T) {
	repo := &fakeRepo{
		listPeriod: []models.Appointment{{ID: 1}},
	}
	uc := NewListByMonth(repo)

	_, err := uc.Execute(context.Background(), 1, 2026, 12)
	require.NoError(t, err)

	assert.Equal(t, "2026-12-01", repo.periodFrom)
	assert.Equal(t, "2027-01-01", repo.periodTo, "upper bound rolls into the next year")
}
