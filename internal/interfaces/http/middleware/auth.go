package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	users      user.Repository
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, users user.Repository, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		users:      users,
		logger:     logger,
	}
}

// RequireAuth verifies the bearer token and resolves the account behind its
// subject email. Every failure collapses into the same generic 401 so callers
// cannot tell a bad signature from a deleted account.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			token = utils.GetTokenFromCookie(c, utils.AccessTokenCookie)
		}
		if token == "" {
			rejectUnauthenticated(c)
			return
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil || claims.Subject == "" {
			m.logger.Debugw("token verification failed", "error", err)
			rejectUnauthenticated(c)
			return
		}

		account, err := m.users.FindByEmail(c.Request.Context(), claims.Subject)
		if err != nil {
			m.logger.Warnw("failed to load account for token subject", "error", err)
			rejectUnauthenticated(c)
			return
		}
		if account == nil {
			rejectUnauthenticated(c)
			return
		}

		c.Set("user_id", account.ID())
		c.Set("user_email", account.Email())
		c.Set(authorization.ContextKeyUserRole, string(account.Role()))

		c.Next()
	}
}

func rejectUnauthenticated(c *gin.Context) {
	utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid token")
	c.Abort()
}

// bearerToken extracts the token from the Authorization header, if any.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
