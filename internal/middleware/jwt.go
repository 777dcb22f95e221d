package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/synchomes/synchomes-api/internal/response"
	"github.com/synchomes/synchomes-api/internal/service"
)

const (
	// ContextKeyClaims is the Gin context key for session claims.
	ContextKeyClaims = "claims"
)

// TokenValidator verifies a session token. *service.AuthService satisfies it.
type TokenValidator interface {
	ValidateToken(tokenStr string) (*service.Claims, error)
}

// RequireAdminSession validates the admin session cookie. A missing cookie
// and a bad token both abort with 401; expired and tampered tokens are
// reported identically.
func RequireAdminSession(validator TokenValidator, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(cookieName)
		if err != nil || tokenStr == "" {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrNotAuthenticated)
			return
		}

		claims, err := validator.ValidateToken(tokenStr)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
			return
		}

		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// GetClaims retrieves the session claims from the Gin context.
func GetClaims(c *gin.Context) *service.Claims {
	val, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil
	}
	claims, ok := val.(*service.Claims)
	if !ok {
		return nil
	}
	return claims
}
