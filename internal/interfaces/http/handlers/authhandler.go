package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/user/usecases"
	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type AuthHandler struct {
	registerUseCase   registerUseCase
	loginUseCase      loginUseCase
	getProfileUseCase getProfileUseCase
	csrfTokens        csrfTokenIssuer
	sessions          sessionResolver
	cookieConfig      config.CookieConfig
	tokenMaxAge       int
	logger            logger.Interface
}

func NewAuthHandler(
	registerUC registerUseCase,
	loginUC loginUseCase,
	getProfileUC getProfileUseCase,
	csrfTokens csrfTokenIssuer,
	sessions sessionResolver,
	cookieConfig config.CookieConfig,
	tokenExpMinutes int,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUseCase:   registerUC,
		loginUseCase:      loginUC,
		getProfileUseCase: getProfileUC,
		csrfTokens:        csrfTokens,
		sessions:          sessions,
		cookieConfig:      cookieConfig,
		tokenMaxAge:       tokenExpMinutes * 60,
		logger:            logger,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=128"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Role        string `json:"role"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	cmd := usecases.RegisterUserCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}

	newUser, err := h.registerUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("registration failed", "error", err, "email", req.Email)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, NewUserResponse(newUser), "registration successful")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	cmd := usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("login failed", "error", err, "email", req.Email)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetAccessTokenCookie(c, h.cookieConfig, result.AccessToken, h.tokenMaxAge)

	utils.SuccessResponse(c, http.StatusOK, "login successful", LoginResponse{
		AccessToken: result.AccessToken,
		TokenType:   result.TokenType,
		Role:        string(result.Role),
	})
}

// CSRFToken issues a token bound to the caller's session. Anonymous callers
// get one bound to their client address.
func (h *AuthHandler) CSRFToken(c *gin.Context) {
	token, err := h.csrfTokens.Generate(h.sessions.SessionID(c))
	if err != nil {
		h.logger.Errorw("failed to issue csrf token", "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error occurred")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"csrf_token": token})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetUint("user_id")

	profile, err := h.getProfileUseCase.Execute(c.Request.Context(), usecases.GetProfileQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewUserResponse(profile))
}
