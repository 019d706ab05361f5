package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	ID     uint
	UserID uint
	Role   authorization.UserRole
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute loads a ticket. Existence is checked before ownership, so a
// missing ticket is 404 even for callers who could not have seen it.
func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*ticket.Ticket, error) {
	found, err := uc.ticketRepo.FindByID(ctx, query.ID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", query.ID)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if found == nil {
		return nil, errors.NewNotFoundError("Not found")
	}
	if !authorization.CanAccessResourceByOwnerID(query.UserID, query.Role, found.CreatedBy()) {
		return nil, errors.NewForbiddenError("Forbidden")
	}
	return found, nil
}
