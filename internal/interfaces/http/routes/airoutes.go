package routes

import (
	"github.com/gin-gonic/gin"

	aiHandler "helpdesk/internal/interfaces/http/handlers/ai"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/authorization"
)

// AIRouteConfig holds dependencies for the assistant routes.
type AIRouteConfig struct {
	AIHandler      *aiHandler.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAIRoutes configures the response drafting routes. Drafting from a
// stored ticket lives under /tickets but is handled by the assistant handler.
func SetupAIRoutes(engine *gin.Engine, cfg *AIRouteConfig) {
	ai := engine.Group("/ai")
	ai.Use(cfg.AuthMiddleware.RequireAuth())
	{
		ai.POST("/generate-response", cfg.AIHandler.GenerateResponse)
		ai.GET("/health", authorization.RequireAdmin(), cfg.AIHandler.Health)
	}

	engine.POST("/tickets/:id/ai-response", cfg.AuthMiddleware.RequireAuth(), cfg.AIHandler.GenerateTicketResponse)
}
