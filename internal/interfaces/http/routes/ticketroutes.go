package routes

import (
	"github.com/gin-gonic/gin"

	ticketHandler "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/authorization"
)

// TicketRouteConfig holds dependencies for ticket routes.
type TicketRouteConfig struct {
	TicketHandler  *ticketHandler.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupTicketRoutes configures ticket routes. Every route requires an
// authenticated caller; per-ticket ownership is enforced in the use cases.
func SetupTicketRoutes(engine *gin.Engine, cfg *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		tickets.GET("", cfg.TicketHandler.List)
		tickets.POST("", cfg.TicketHandler.Create)
		tickets.GET("/:id", cfg.TicketHandler.Get)
		tickets.PUT("/:id", cfg.TicketHandler.Update)
		tickets.PATCH("/:id/close", authorization.RequireAdmin(), cfg.TicketHandler.Close)
		tickets.DELETE("/:id", cfg.TicketHandler.Delete)
	}
}
