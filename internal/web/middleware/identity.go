package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"microblog/internal/core/service"
)

const (
	// SessionCookieName is the cookie carrying the signed session token.
	SessionCookieName = "LoginCookie"

	identityContextKey = "identity"
)

// IdentityMiddleware decodes the session cookie and, when the token
// verifies, attaches the identity to the request context. It never blocks
// the request: an absent or invalid token just means an anonymous request.
func IdentityMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cookie, err := c.Cookie(SessionCookieName); err == nil {
			if identity, ok := authService.VerifyToken(cookie); ok {
				c.Set(identityContextKey, identity)
			}
		}
		c.Next()
	}
}

// RequireAuth redirects anonymous requests to the homepage.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentIdentity(c); !ok {
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentIdentity retrieves the identity attached by IdentityMiddleware.
func CurrentIdentity(c *gin.Context) (*service.Identity, bool) {
	value, exists := c.Get(identityContextKey)
	if !exists {
		return nil, false
	}

	identity, ok := value.(*service.Identity)
	return identity, ok
}
