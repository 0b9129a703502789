package subscription

import (
	"time"

	"github.com/sharpcut-app/sharpcut-api/internal/models"
)

type State string

const (
	StateNoShop       State = "no_shop"
	StateTrialActive  State = "trial_active"
	StateTrialExpired State = "trial_expired"
	StateActive       State = "active"
	StateInactive     State = "inactive"
)

const (
	StatusTrial    = "trial"
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Evaluate reads the shop's subscription fields against the clock and
// nothing else; it never mutates state. A nil shop means the barber
// has not finished onboarding and is let through to it.
func Evaluate(shop *models.Shop, now time.Time) State {
	if shop == nil {
		return StateNoShop
	}

	switch shop.SubscriptionStatus {
	case StatusTrial:
		if shop.TrialEndDate != nil && now.Before(*shop.TrialEndDate) {
			return StateTrialActive
		}
		return StateTrialExpired

	case StatusActive:
		// no end date means unrestricted
		if shop.SubscriptionEndDate == nil || now.Before(*shop.SubscriptionEndDate) {
			return StateActive
		}
		return StateInactive

	default:
		return StateInactive
	}
}

// Activate applies one approved monthly payment: status becomes
// active and the end date moves one month past the later of now and
// the current end, so back-to-back payments stack.
func Activate(shop *models.Shop, now time.Time) {
	base := now
	if shop.SubscriptionEndDate != nil && shop.SubscriptionEndDate.After(now) {
		base = *shop.SubscriptionEndDate
	}
	end := base.AddDate(0, 1, 0)

	shop.SubscriptionStatus = StatusActive
	shop.SubscriptionEndDate = &end
}

// Allowed reports whether the protected area is reachable in this state.
func (s State) Allowed() bool {
	switch s {
	case StateNoShop, StateTrialActive, StateActive:
		return true
	}
	return false
}
