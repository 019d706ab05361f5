package ai

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ai/usecases"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type generateResponseUseCase interface {
	Execute(ctx context.Context, cmd usecases.GenerateResponseCommand) (*usecases.GenerateResponseResult, error)
}

type generateTicketResponseUseCase interface {
	Execute(ctx context.Context, cmd usecases.GenerateTicketResponseCommand) (*usecases.GenerateResponseResult, error)
}

type healthCheckUseCase interface {
	Execute(ctx context.Context) *usecases.HealthCheckResult
}

type Handler struct {
	generateUseCase       generateResponseUseCase
	generateTicketUseCase generateTicketResponseUseCase
	healthUseCase         healthCheckUseCase
	logger                logger.Interface
}

func NewHandler(
	generateUC generateResponseUseCase,
	generateTicketUC generateTicketResponseUseCase,
	healthUC healthCheckUseCase,
	logger logger.Interface,
) *Handler {
	return &Handler{
		generateUseCase:       generateUC,
		generateTicketUseCase: generateTicketUC,
		healthUseCase:         healthUC,
		logger:                logger,
	}
}

// GenerateResponse drafts a support reply from a free-form title and
// description. Available to any authenticated user.
func (h *Handler) GenerateResponse(c *gin.Context) {
	var req GenerateResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	cmd := usecases.GenerateResponseCommand{
		Title:       req.Title,
		Description: req.Description,
	}

	result, err := h.generateUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("ai response generation failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewGenerateResponseOut(result))
}

// GenerateTicketResponse drafts a reply from a stored ticket's fields.
func (h *Handler) GenerateTicketResponse(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.generateTicketUseCase.Execute(c.Request.Context(), usecases.GenerateTicketResponseCommand{TicketID: id})
	if err != nil {
		h.logger.Warnw("ai ticket response generation failed", "error", err, "ticket_id", id)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewGenerateResponseOut(result))
}

func (h *Handler) Health(c *gin.Context) {
	result := h.healthUseCase.Execute(c.Request.Context())
	if !result.Healthy {
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "AI service is not responding properly")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"status":     "healthy",
		"service":    result.Service,
		"model":      result.Model,
		"checked_at": result.CheckedAt,
	})
}
