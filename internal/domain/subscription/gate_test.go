package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharpcut-app/sharpcut-api/internal/models"
)

func TestEvaluate_NoShop(t *testing.T) {
	state := Evaluate(nil, time.Now())

	assert.Equal(t, StateNoShop, state)
	assert.True(t, state.Allowed(), "onboarding must stay reachable")
}

func TestEvaluate_Trial(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	tomorrow := now.Add(24 * time.Hour)
	yesterday := now.Add(-24 * time.Hour)

	active := &models.Shop{SubscriptionStatus: StatusTrial, TrialEndDate: &tomorrow}
	assert.Equal(t, StateTrialActive, Evaluate(active, now))
	assert.True(t, Evaluate(active, now).Allowed())

	expired := &models.Shop{SubscriptionStatus: StatusTrial, TrialEndDate: &yesterday}
	assert.Equal(t, StateTrialExpired, Evaluate(expired, now))
	assert.False(t, Evaluate(expired, now).Allowed())

	// trial without an end date cannot be verified as active
	noEnd := &models.Shop{SubscriptionStatus: StatusTrial}
	assert.Equal(t, StateTrialExpired, Evaluate(noEnd, now))
}

func TestEvaluate_Active(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	nextMonth := now.AddDate(0, 1, 0)
	lastMonth := now.AddDate(0, -1, 0)

	paid := &models.Shop{SubscriptionStatus: StatusActive, SubscriptionEndDate: &nextMonth}
	assert.Equal(t, StateActive, Evaluate(paid, now))

	lapsed := &models.Shop{SubscriptionStatus: StatusActive, SubscriptionEndDate: &lastMonth}
	assert.Equal(t, StateInactive, Evaluate(lapsed, now))
	assert.False(t, Evaluate(lapsed, now).Allowed())

	unrestricted := &models.Shop{SubscriptionStatus: StatusActive}
	assert.Equal(t, StateActive, Evaluate(unrestricted, now))
}

func TestActivate(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	// first payment out of trial: one month from now
	trialEnd := now.Add(24 * time.Hour)
	shop := &models.Shop{SubscriptionStatus: StatusTrial, TrialEndDate: &trialEnd}
	Activate(shop, now)

	assert.Equal(t, StatusActive, shop.SubscriptionStatus)
	require.NotNil(t, shop.SubscriptionEndDate)
	assert.Equal(t, now.AddDate(0, 1, 0), *shop.SubscriptionEndDate)
	assert.Equal(t, StateActive, Evaluate(shop, now))

	// paying again while still active stacks on the current end
	Activate(shop, now)
	assert.Equal(t, now.AddDate(0, 2, 0), *shop.SubscriptionEndDate)

	// a lapsed subscription restarts from now, not from the old end
	lapsedEnd := now.AddDate(0, -3, 0)
	lapsed := &models.Shop{SubscriptionStatus: StatusActive, SubscriptionEndDate: &lapsedEnd}
	Activate(lapsed, now)
	assert.Equal(t, now.AddDate(0, 1, 0), *lapsed.SubscriptionEndDate)
	assert.Equal(t, StateActive, Evaluate(lapsed, now))
}

func TestEvaluate_Inactive(t *testing.T) {
	shop := &models.Shop{SubscriptionStatus: StatusInactive}
	assert.Equal(t, StateInactive, Evaluate(shop, time.Now()))

	unknown := &models.Shop{SubscriptionStatus: "weird"}
	assert.Equal(t, StateInactive, Evaluate(unknown, time.Now()))
}
