package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type CSRFMiddleware struct {
	guard      *auth.CSRFGuard
	jwtService *auth.JWTService
	enabled    bool
	logger     logger.Interface
}

func NewCSRFMiddleware(guard *auth.CSRFGuard, jwtService *auth.JWTService, enabled bool, logger logger.Interface) *CSRFMiddleware {
	return &CSRFMiddleware{
		guard:      guard,
		jwtService: jwtService,
		enabled:    enabled,
		logger:     logger,
	}
}

// ValidateToken checks the X-CSRF-Token header on mutating requests against
// the caller's session. A request that sends no token at all passes; only a
// token that is present and fails verification is rejected.
func (m *CSRFMiddleware) ValidateToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.enabled || isSafeMethod(c.Request.Method) {
			c.Next()
			return
		}

		token := c.GetHeader(utils.CSRFTokenHeader)
		if token == "" {
			c.Next()
			return
		}

		if !m.guard.Validate(token, m.SessionID(c)) {
			m.logger.Warnw("rejected request with invalid csrf token",
				"path", c.Request.URL.Path,
				"client_ip", c.ClientIP())
			utils.ErrorResponse(c, http.StatusForbidden, "Invalid CSRF token")
			c.Abort()
			return
		}

		c.Next()
	}
}

// SessionID resolves the identifier a CSRF token is bound to: the bearer
// token subject when one verifies, then the session cookie, then the client
// address for anonymous callers.
func (m *CSRFMiddleware) SessionID(c *gin.Context) string {
	if token := bearerToken(c); token != "" {
		if claims, err := m.jwtService.Verify(token); err == nil && claims.Subject != "" {
			return claims.Subject
		}
	}

	if cookie := utils.GetTokenFromCookie(c, utils.SessionIDCookie); cookie != "" {
		return cookie
	}

	return "ip_" + c.ClientIP()
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	default:
		return false
	}
}
