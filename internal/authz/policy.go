package authz

import "github.com/sharpcut-app/sharpcut-api/internal/domain/subscription"

// One evaluator for every protected route instead of per-handler
// role checks.

type PolicyKind int

const (
	KindPublic PolicyKind = iota
	KindRequireRole
	KindRequireActiveSubscription
)

type Policy struct {
	Kind PolicyKind
	Role string
}

func Public() Policy {
	return Policy{Kind: KindPublic}
}

func RequireRole(role string) Policy {
	return Policy{Kind: KindRequireRole, Role: role}
}

// RequireActiveSubscription implies the barber role.
func RequireActiveSubscription() Policy {
	return Policy{Kind: KindRequireActiveSubscription}
}

// Session is the per-request identity, extracted from the verified
// token. There is no process-wide auth state.
type Session struct {
	Authenticated bool
	UserID        uint
	ShopID        uint
	Role          string
}

type Decision int

const (
	Allow Decision = iota
	DenyUnauthenticated
	DenyForbidden
	DenyLocked
)

func Evaluate(p Policy, s Session, gate subscription.State) Decision {
	switch p.Kind {
	case KindPublic:
		return Allow

	case KindRequireRole:
		if !s.Authenticated {
			return DenyUnauthenticated
		}
		if s.Role != p.Role {
			return DenyForbidden
		}
		return Allow

	case KindRequireActiveSubscription:
		if !s.Authenticated {
			return DenyUnauthenticated
		}
		if s.Role != "barber" {
			return DenyForbidden
		}
		if !gate.Allowed() {
			return DenyLocked
		}
		return Allow
	}

	return DenyForbidden
}
