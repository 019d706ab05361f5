package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/authorization"
)

// AuthRouteConfig holds dependencies for account and session routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	UserHandler    *handlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
	CSRFMiddleware *middleware.CSRFMiddleware
	Security       gin.HandlerFunc
}

// SetupAuthRoutes configures registration, login and account management.
// Account mutations carry the origin filter and the CSRF check; ownership
// rules for updates live in the use case.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/register", cfg.AuthHandler.Register)
		auth.POST("/login", cfg.Security, cfg.AuthHandler.Login)
		auth.GET("/csrf-token", cfg.Security, cfg.AuthHandler.CSRFToken)
		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Me)

		users := auth.Group("/users")
		users.Use(cfg.AuthMiddleware.RequireAuth())
		{
			users.GET("", authorization.RequireAdmin(), cfg.UserHandler.List)
			users.GET("/:id", authorization.RequireAdmin(), cfg.UserHandler.Get)
			users.PUT("/:id", cfg.Security, cfg.CSRFMiddleware.ValidateToken(), cfg.UserHandler.Update)
			users.DELETE("/:id", authorization.RequireAdmin(), cfg.Security, cfg.CSRFMiddleware.ValidateToken(), cfg.UserHandler.Delete)
		}
	}
}
