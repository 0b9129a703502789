package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharpcut-app/sharpcut-api/internal/httperr"
	"github.com/sharpcut-app/sharpcut-api/internal/models"
)

func TestAvailability(t *testing.T) {
	repo := &fakeRepo{
		shop:   &models.Shop{ID: 1, Timezone: "America/Sao_Paulo"},
		ranges: []string{"09:00-10:30"},
		booked: []string{"09:30:00"},
	}
	uc := NewAvailability(repo)

	slots, err := uc.Execute(context.Background(), 1, "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00:00", "10:00:00"}, slots)
}

func TestAvailability_ClosedDay(t *testing.T) {
	repo := &fakeRepo{shop: &models.Shop{ID: 1}}
	uc := NewAvailability(repo)

	slots, err := uc.Execute(context.Background(), 1, "2026-09-01")
	require.NoError(t, err)
	require.NotNil(t, slots, "closed day serializes as [] not null")
	assert.Empty(t, slots)
}

func TestAvailability_FullyBooked(t *testing.T) {
	repo := &fakeRepo{
		shop:   &models.Shop{ID: 1},
		ranges: []string{"09:00-10:00"},
		booked: []string{"09:00:00", "09:30:00"},
	}
	uc := NewAvailability(repo)

	slots, err := uc.Execute(context.Background(), 1, "2026-09-01")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestAvailability_InvalidDate(t *testing.T) {
	repo := &fakeRepo{shop: &models.Shop{ID: 1}}
	uc := NewAvailability(repo)

	_, err := uc.Execute(context.Background(), 1, "01/09/2026")
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}
