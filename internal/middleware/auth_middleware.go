package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FanSt3/naturale-api/internal/utils"
)

// AuthMiddleware gates admin routes on a valid session token.
type AuthMiddleware struct {
	tokens *utils.TokenManager
}

// NewAuthMiddleware constructs a new AuthMiddleware.
func NewAuthMiddleware(tokens *utils.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle returns a middleware for JSON API routes. Any verification failure
// is a uniform 401; the reason is never surfaced to the client. Verified
// claims are set on the context, but handlers that need the full user record
// re-resolve it through the session resolver.
func (m *AuthMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.TokenFromRequest(c)
		if token == "" {
			utils.Error(c, 401, "Unauthorized")
			c.Abort()
			return
		}

		claims, err := m.tokens.Verify(token)
		if err != nil {
			utils.Error(c, 401, "Unauthorized")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("name", claims.Name)
		c.Next()
	}
}

// PageGate returns a middleware for the admin panel pages. The login page
// passes through in every state; otherwise a missing or invalid cookie
// redirects to it. The gate attaches nothing downstream and never refreshes
// the token.
func (m *AuthMiddleware) PageGate(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == loginPath {
			c.Next()
			return
		}

		cookie, err := c.Cookie(utils.AuthCookieName)
		if err != nil || cookie == "" {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		if _, err := m.tokens.Verify(cookie); err != nil {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		c.Next()
	}
}
