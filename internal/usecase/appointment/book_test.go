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

func bookFixture() (*fakeRepo, *capturePublisher, *Book) {
	repo := &fakeRepo{
		shop: &models.Shop{ID: 1, Slug: "barba-negra", Timezone: "America/Sao_Paulo"},
		service: &models.Service{
			ID: 5, ShopID: 1, Name: "Corte", Price: 50, DurationMin: 30, Active: true,
		},
		ranges: []string{"09:00-12:00", "14:00-18:00"},
	}
	feed := &capturePublisher{}
	return repo, feed, NewBook(repo, feed, nopSink{})
}

func guestInput() BookInput {
	return BookInput{
		ShopID:     1,
		Date:       "2100-01-04",
		Time:       "09:30",
		ServiceID:  5,
		GuestName:  "João",
		GuestPhone: "11988887777",
	}
}

func TestBook_Guest(t *testing.T) {
	repo, feed, uc := bookFixture()

	ap, err := uc.Execute(context.Background(), guestInput())
	require.NoError(t, err)

	assert.NotEmpty(t, ap.Reference)
	assert.Equal(t, uint(1), ap.ShopID)
	assert.Equal(t, "2100-01-04", ap.Date)
	assert.Equal(t, "09:30:00", ap.StartTime, "stored start times carry seconds")
	assert.Equal(t, string(domain.StatusConfirmed), ap.Status)

	assert.Equal(t, "João", ap.GuestName)
	assert.Equal(t, "11988887777", ap.GuestPhone)
	require.NotNil(t, ap.CustomerID, "guests still get a customer record")

	// service snapshot survives later edits to the catalog
	assert.Equal(t, "Corte", ap.ServiceName)
	assert.Equal(t, 50.0, ap.ServicePrice)
	assert.Equal(t, 30, ap.ServiceDuration)

	require.NotNil(t, repo.created)

	require.Len(t, feed.events, 1)
	assert.Equal(t, realtime.EventInsert, feed.events[0].Type)
	assert.Equal(t, ap, feed.events[0].New)
}

func TestBook_LoggedInCustomer(t *testing.T) {
	_, _, uc := bookFixture()

	userID := uint(42)
	in := guestInput()
	in.GuestName = ""
	in.GuestPhone = ""
	in.CustomerUserID = &userID

	ap, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Empty(t, ap.GuestName)
	assert.Empty(t, ap.GuestPhone)
	require.NotNil(t, ap.CustomerID)
}

func TestBook_IdentityRequired(t *testing.T) {
	_, _, uc := bookFixture()

	in := guestInput()
	in.GuestName = ""
	in.GuestPhone = ""

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "identity_required"))
}

func TestBook_IdentityConflict(t *testing.T) {
	_, _, uc := bookFixture()

	userID := uint(42)
	in := guestInput()
	in.CustomerUserID = &userID

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "identity_conflict"))
}

func TestBook_OffGridTime(t *testing.T) {
	_, _, uc := bookFixture()

	in := guestInput()
	in.Time = "09:15"

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_time"))
}

func TestBook_PastSlot(t *testing.T) {
	_, _, uc := bookFixture()

	in := guestInput()
	in.Date = "2020-01-06"

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "slot_in_the_past"))
}

func TestBook_OutsideWorkingHours(t *testing.T) {
	_, _, uc := bookFixture()

	in := guestInput()
	in.Time = "08:00"

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "outside_working_hours"))
}

func TestBook_SlotTaken(t *testing.T) {
	repo, feed, uc := bookFixture()
	repo.taken = true

	_, err := uc.Execute(context.Background(), guestInput())
	assert.True(t, httperr.IsBusiness(err, "slot_taken"))
	assert.Empty(t, feed.events, "nothing is published on conflict")
}

func TestBook_ConcurrentInsertConflict(t *testing.T) {
	// the read path saw the slot free but the insert lost the race
	repo, feed, uc := bookFixture()
	repo.createErr = httperr.ErrBusiness("slot_taken")

	_, err := uc.Execute(context.Background(), guestInput())
	assert.True(t, httperr.IsBusiness(err, "slot_taken"))
	assert.Empty(t, feed.events)
}

func TestBook_ServiceNotFound(t *testing.T) {
	_, _, uc := bookFixture()

	in := guestInput()
	in.ServiceID = 99

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}
