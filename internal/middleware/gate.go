package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/sharpcut-app/sharpcut-api/internal/authz"
	"github.com/sharpcut-app/sharpcut-api/internal/domain/subscription"
	"github.com/sharpcut-app/sharpcut-api/internal/models"
	"github.com/sharpcut-app/sharpcut-api/internal/timezone"
)

// Policy evaluates one authz.Policy per route group. Runs after
// AuthMiddleware, which installs the session keys it reads.
func Policy(db *gorm.DB, log zerolog.Logger, p authz.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessionFrom(c)

		gate := subscription.StateNoShop
		if p.Kind == authz.KindRequireActiveSubscription {
			gate = gateState(c, db, log, session)
		}

		switch authz.Evaluate(p, session, gate) {
		case authz.Allow:
			c.Next()

		case authz.DenyUnauthenticated:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})

		case authz.DenyLocked:
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{"error": "subscription_locked"})

		default:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		}
	}
}

func sessionFrom(c *gin.Context) authz.Session {
	userID, ok := c.Get(ContextUserID)
	if !ok {
		return authz.Session{}
	}

	session := authz.Session{
		Authenticated: true,
		UserID:        userID.(uint),
	}
	if v, ok := c.Get(ContextShopID); ok {
		session.ShopID = v.(uint)
	}
	if v, ok := c.Get(ContextUserRole); ok {
		session.Role = v.(string)
	}
	return session
}

// gateState loads the barber's shop and evaluates the trial/
// subscription window. Read failures fail open: a transient error
// must not lock a paying barber out.
func gateState(c *gin.Context, db *gorm.DB, log zerolog.Logger, s authz.Session) subscription.State {
	if s.ShopID == 0 {
		return subscription.StateNoShop
	}

	var shop models.Shop
	if err := db.WithContext(c.Request.Context()).First(&shop, s.ShopID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return subscription.StateNoShop
		}

		log.Warn().Err(err).Uint("shop_id", s.ShopID).Msg("gate read failed, allowing")
		return subscription.StateActive
	}

	return subscription.Evaluate(&shop, timezone.NowIn(shop.Timezone))
}
