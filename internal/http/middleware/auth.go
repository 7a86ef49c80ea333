package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Rom943/ecommerce-template/internal/session"
)

const sessionClaimsKey = "sessionClaims"

// AdminAuth validates the admin session and attaches its claims. The token is
// read from the session cookie, falling back to a bearer Authorization header
// for API clients.
func AdminAuth(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
			return
		}

		claims, err := sessions.Validate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
			return
		}

		c.Set(sessionClaimsKey, claims)
		c.Next()
	}
}

// GetSessionClaims exposes the validated session claims to handlers.
func GetSessionClaims(c *gin.Context) (*session.Claims, bool) {
	value, ok := c.Get(sessionClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := value.(*session.Claims)
	return claims, ok
}

func sessionToken(c *gin.Context) string {
	if cookie, err := c.Request.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
