package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	aiUsecases "helpdesk/internal/application/ai/usecases"
	categoryUsecases "helpdesk/internal/application/category/usecases"
	ticketUsecases "helpdesk/internal/application/ticket/usecases"
	userUsecases "helpdesk/internal/application/user/usecases"
	"helpdesk/internal/infrastructure/ai"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/interfaces/http/handlers"
	aiHandler "helpdesk/internal/interfaces/http/handlers/ai"
	categoryHandler "helpdesk/internal/interfaces/http/handlers/category"
	ticketHandler "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/routes"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/sanitizer"
	"helpdesk/internal/shared/utils"
)

// Router wires repositories, use cases, handlers and middleware into a Gin
// engine.
type Router struct {
	engine          *gin.Engine
	authHandler     *handlers.AuthHandler
	userHandler     *handlers.UserHandler
	categoryHandler *categoryHandler.Handler
	ticketHandler   *ticketHandler.Handler
	aiHandler       *aiHandler.Handler
	authMiddleware  *middleware.AuthMiddleware
	csrfMiddleware  *middleware.CSRFMiddleware
	allowedOrigins  []string
	logger          logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	ticketRepo := repository.NewTicketRepository(db)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.ExpMinutes)
	csrfGuard := auth.NewCSRFGuard(cfg.Auth.JWT.Secret)
	sanitize := sanitizer.New()
	completions := ai.NewCompletionClient(&cfg.AI, log)

	registerUC := userUsecases.NewRegisterUserUseCase(userRepo, hasher, log)
	loginUC := userUsecases.NewLoginUseCase(userRepo, hasher, jwtService, log)
	getProfileUC := userUsecases.NewGetProfileUseCase(userRepo, log)
	listUsersUC := userUsecases.NewListUsersUseCase(userRepo, log)
	getUserUC := userUsecases.NewGetUserUseCase(userRepo, log)
	updateUserUC := userUsecases.NewUpdateUserUseCase(userRepo, hasher, log)
	deleteUserUC := userUsecases.NewDeleteUserUseCase(userRepo, ticketRepo, log)

	createCategoryUC := categoryUsecases.NewCreateCategoryUseCase(categoryRepo, sanitize, log)
	listCategoriesUC := categoryUsecases.NewListCategoriesUseCase(categoryRepo, log)
	getCategoryUC := categoryUsecases.NewGetCategoryUseCase(categoryRepo, log)
	updateCategoryUC := categoryUsecases.NewUpdateCategoryUseCase(categoryRepo, sanitize, log)
	deleteCategoryUC := categoryUsecases.NewDeleteCategoryUseCase(categoryRepo, log)

	createTicketUC := ticketUsecases.NewCreateTicketUseCase(ticketRepo, categoryRepo, sanitize, log)
	listTicketsUC := ticketUsecases.NewListTicketsUseCase(ticketRepo, log)
	getTicketUC := ticketUsecases.NewGetTicketUseCase(ticketRepo, log)
	updateTicketUC := ticketUsecases.NewUpdateTicketUseCase(ticketRepo, categoryRepo, sanitize, log)
	closeTicketUC := ticketUsecases.NewCloseTicketUseCase(ticketRepo, log)
	deleteTicketUC := ticketUsecases.NewDeleteTicketUseCase(ticketRepo, log)

	generateResponseUC := aiUsecases.NewGenerateResponseUseCase(completions, sanitize, log)
	generateTicketResponseUC := aiUsecases.NewGenerateTicketResponseUseCase(ticketRepo, completions, sanitize, log)
	aiHealthUC := aiUsecases.NewHealthCheckUseCase(completions)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, userRepo, log)
	csrfMiddleware := middleware.NewCSRFMiddleware(csrfGuard, jwtService, cfg.Security.CSRFEnabled, log)

	cookieConfig := cfg.Auth.Cookie
	if cfg.Security.SecureCookies {
		cookieConfig.Secure = true
	}

	return &Router{
		engine: engine,
		authHandler: handlers.NewAuthHandler(
			registerUC, loginUC, getProfileUC,
			csrfGuard, csrfMiddleware,
			cookieConfig, cfg.Auth.JWT.ExpMinutes, log,
		),
		userHandler: handlers.NewUserHandler(
			listUsersUC, getUserUC, updateUserUC, deleteUserUC, log,
		),
		categoryHandler: categoryHandler.NewHandler(
			createCategoryUC, listCategoriesUC, getCategoryUC, updateCategoryUC, deleteCategoryUC, log,
		),
		ticketHandler: ticketHandler.NewHandler(
			createTicketUC, listTicketsUC, getTicketUC, updateTicketUC, closeTicketUC, deleteTicketUC, log,
		),
		aiHandler: aiHandler.NewHandler(
			generateResponseUC, generateTicketResponseUC, aiHealthUC, log,
		),
		authMiddleware: authMiddleware,
		csrfMiddleware: csrfMiddleware,
		allowedOrigins: cfg.Server.AllowedOrigins,
		logger:         log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.allowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/", func(c *gin.Context) {
		utils.SuccessResponse(c, http.StatusOK, "", gin.H{
			"message": "Chamados API",
			"version": "1.0.0",
		})
	})

	security := middleware.ValidateRequestSecurity(r.allowedOrigins)

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		UserHandler:    r.userHandler,
		AuthMiddleware: r.authMiddleware,
		CSRFMiddleware: r.csrfMiddleware,
		Security:       security,
	})

	routes.SetupCategoryRoutes(r.engine, &routes.CategoryRouteConfig{
		CategoryHandler: r.categoryHandler,
		AuthMiddleware:  r.authMiddleware,
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupAIRoutes(r.engine, &routes.AIRouteConfig{
		AIHandler:      r.aiHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
