package ticket

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type createTicketUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateTicketCommand) (*ticket.Ticket, error)
}

type listTicketsUseCase interface {
	Execute(ctx context.Context, query usecases.ListTicketsQuery) ([]*ticket.Ticket, error)
}

type getTicketUseCase interface {
	Execute(ctx context.Context, query usecases.GetTicketQuery) (*ticket.Ticket, error)
}

type updateTicketUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateTicketCommand) (*ticket.Ticket, error)
}

type closeTicketUseCase interface {
	Execute(ctx context.Context, cmd usecases.CloseTicketCommand) (*ticket.Ticket, error)
}

type deleteTicketUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeleteTicketCommand) error
}

func authorizationRole(role string) authorization.UserRole {
	return authorization.UserRole(role)
}

type Handler struct {
	createUseCase createTicketUseCase
	listUseCase   listTicketsUseCase
	getUseCase    getTicketUseCase
	updateUseCase updateTicketUseCase
	closeUseCase  closeTicketUseCase
	deleteUseCase deleteTicketUseCase
	logger        logger.Interface
}

func NewHandler(
	createUC createTicketUseCase,
	listUC listTicketsUseCase,
	getUC getTicketUseCase,
	updateUC updateTicketUseCase,
	closeUC closeTicketUseCase,
	deleteUC deleteTicketUseCase,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createUseCase: createUC,
		listUseCase:   listUC,
		getUseCase:    getUC,
		updateUseCase: updateUC,
		closeUseCase:  closeUC,
		deleteUseCase: deleteUC,
		logger:        logger,
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	created, err := h.createUseCase.Execute(c.Request.Context(), req.ToCommand(c.GetUint("user_id")))
	if err != nil {
		h.logger.Warnw("ticket creation failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, NewTicketResponse(created))
}

func (h *Handler) List(c *gin.Context) {
	query := usecases.ListTicketsQuery{
		UserID: c.GetUint("user_id"),
		Role:   authorizationRole(c.GetString(authorization.ContextKeyUserRole)),
	}

	tickets, err := h.listUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewTicketResponses(tickets))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetTicketQuery{
		ID:     id,
		UserID: c.GetUint("user_id"),
		Role:   authorizationRole(c.GetString(authorization.ContextKeyUserRole)),
	}

	found, err := h.getUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewTicketResponse(found))
}

func (h *Handler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	cmd := req.ToCommand(id, c.GetUint("user_id"), c.GetString(authorization.ContextKeyUserRole))

	updated, err := h.updateUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("ticket update failed", "error", err, "ticket_id", id)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewTicketResponse(updated))
}

func (h *Handler) Close(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	closed, err := h.closeUseCase.Execute(c.Request.Context(), usecases.CloseTicketCommand{ID: id})
	if err != nil {
		h.logger.Warnw("ticket close failed", "error", err, "ticket_id", id)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewTicketResponse(closed))
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteTicketCommand{
		ID:        id,
		ActorID:   c.GetUint("user_id"),
		ActorRole: authorizationRole(c.GetString(authorization.ContextKeyUserRole)),
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), cmd); err != nil {
		h.logger.Warnw("ticket deletion failed", "error", err, "ticket_id", id)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket deleted successfully", gin.H{"ok": true})
}
