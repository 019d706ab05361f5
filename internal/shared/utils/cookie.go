package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/config"
)

const (
	AccessTokenCookie = "access_token"
	SessionIDCookie   = "session_id"
	CSRFTokenCookie   = "csrf_token"
	CSRFTokenHeader   = "X-CSRF-Token"
)

// SetAccessTokenCookie sets the access token as an HttpOnly cookie
func SetAccessTokenCookie(c *gin.Context, cookieConfig config.CookieConfig, accessToken string, maxAge int) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(
		AccessTokenCookie,
		accessToken,
		maxAge,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true, // HttpOnly
	)
}

// ClearAccessTokenCookie removes the access token cookie
func ClearAccessTokenCookie(c *gin.Context, cookieConfig config.CookieConfig) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(
		AccessTokenCookie,
		"",
		-1,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true,
	)
}

// GetTokenFromCookie retrieves a token value from the named cookie
func GetTokenFromCookie(c *gin.Context, cookieName string) string {
	token, err := c.Cookie(cookieName)
	if err == nil && token != "" {
		return token
	}
	return ""
}

// parseSameSite converts string to http.SameSite
func parseSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
