package routes

import (
	"github.com/gin-gonic/gin"

	categoryHandler "helpdesk/internal/interfaces/http/handlers/category"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/authorization"
)

// CategoryRouteConfig holds dependencies for category routes.
type CategoryRouteConfig struct {
	CategoryHandler *categoryHandler.Handler
	AuthMiddleware  *middleware.AuthMiddleware
}

// SetupCategoryRoutes configures category routes. The listing is public so
// the ticket form can be rendered before login; everything else is for
// administrators.
func SetupCategoryRoutes(engine *gin.Engine, cfg *CategoryRouteConfig) {
	categories := engine.Group("/categories")
	{
		categories.GET("", cfg.CategoryHandler.List)

		admin := categories.Group("")
		admin.Use(cfg.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
		{
			admin.POST("", cfg.CategoryHandler.Create)
			admin.GET("/:id", cfg.CategoryHandler.Get)
			admin.PUT("/:id", cfg.CategoryHandler.Update)
			admin.DELETE("/:id", cfg.CategoryHandler.Delete)
		}
	}
}
