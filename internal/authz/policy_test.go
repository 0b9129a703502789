package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sharpcut-app/sharpcut-api/internal/domain/subscription"
)

func TestEvaluate_Public(t *testing.T) {
	d := Evaluate(Public(), Session{}, subscription.StateInactive)
	assert.Equal(t, Allow, d, "public routes ignore identity and gate")
}

func TestEvaluate_RequireRole(t *testing.T) {
	p := RequireRole("admin")

	assert.Equal(t, DenyUnauthenticated, Evaluate(p, Session{}, subscription.StateActive))

	barber := Session{Authenticated: true, Role: "barber"}
	assert.Equal(t, DenyForbidden, Evaluate(p, barber, subscription.StateActive))

	admin := Session{Authenticated: true, Role: "admin"}
	assert.Equal(t, Allow, Evaluate(p, admin, subscription.StateInactive),
		"role checks do not consult the subscription gate")
}

func TestEvaluate_RequireActiveSubscription(t *testing.T) {
	p := RequireActiveSubscription()

	assert.Equal(t, DenyUnauthenticated, Evaluate(p, Session{}, subscription.StateActive))

	customer := Session{Authenticated: true, Role: "customer"}
	assert.Equal(t, DenyForbidden, Evaluate(p, customer, subscription.StateActive))

	barber := Session{Authenticated: true, Role: "barber"}

	assert.Equal(t, Allow, Evaluate(p, barber, subscription.StateActive))
	assert.Equal(t, Allow, Evaluate(p, barber, subscription.StateTrialActive))
	assert.Equal(t, Allow, Evaluate(p, barber, subscription.StateNoShop),
		"onboarding stays open before a shop exists")

	assert.Equal(t, DenyLocked, Evaluate(p, barber, subscription.StateTrialExpired))
	assert.Equal(t, DenyLocked, Evaluate(p, barber, subscription.StateInactive))
}
