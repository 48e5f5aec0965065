package utils

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthCookieName is the cookie carrying the session token.
const AuthCookieName = "auth-token"

// TokenFromRequest extracts the session token from the auth cookie, falling
// back to an Authorization bearer header for non-cookie clients. Returns an
// empty string when neither is present. This is the only place request token
// extraction happens; handlers and middleware all go through it.
func TokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(AuthCookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// SetAuthCookie attaches the session token cookie to the response: HTTP-only,
// strict same-site, lifetime matching the token, secure in production.
func SetAuthCookie(c *gin.Context, token string, secure bool) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(AuthCookieName, token, int(TokenLifetime.Seconds()), "/", "", secure, true)
}
