package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/sharpcut-app/sharpcut-api/internal/config"
)

const (
	ContextUserID   = "userID"
	ContextShopID   = "shopID"
	ContextUserRole = "userRole"
)

func parseToken(cfg *config.Config, tokenString string) (userID uint, shopID uint, role string, ok bool) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, 0, "", false
	}

	claims, claimsOK := token.Claims.(jwt.MapClaims)
	if !claimsOK {
		return 0, 0, "", false
	}

	sub, subOK := claims["sub"].(float64)
	if !subOK {
		return 0, 0, "", false
	}

	// customers and admins carry no shop
	if sid, exists := claims["shopId"].(float64); exists {
		shopID = uint(sid)
	}
	role, _ = claims["role"].(string)

	return uint(sub), shopID, role, true
}

// AuthMiddleware verifies the bearer token and installs the session
// into the request context. No global auth state exists.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		userID, shopID, role, ok := parseToken(cfg, parts[1])
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextShopID, shopID)
		c.Set(ContextUserRole, role)

		c.Next()
	}
}

// OptionalAuth installs the session when a valid bearer token is
// present and stays silent otherwise. The public booking endpoint
// uses it to attach bookings to logged-in customers.
func OptionalAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.Next()
			return
		}

		if userID, shopID, role, ok := parseToken(cfg, parts[1]); ok {
			c.Set(ContextUserID, userID)
			c.Set(ContextShopID, shopID)
			c.Set(ContextUserRole, role)
		}

		c.Next()
	}
}
