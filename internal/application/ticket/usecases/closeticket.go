package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CloseTicketCommand struct {
	ID uint
}

type CloseTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewCloseTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *CloseTicketUseCase {
	return &CloseTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute forces the ticket into the closed state. Closing an already
// closed ticket is not an error.
func (uc *CloseTicketUseCase) Execute(ctx context.Context, cmd CloseTicketCommand) (*ticket.Ticket, error) {
	existing, err := uc.ticketRepo.FindByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.ID)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("Not found")
	}

	if err := uc.ticketRepo.UpdateFields(ctx, cmd.ID, map[string]interface{}{
		"status": vo.StatusClosed.String(),
	}); err != nil {
		uc.logger.Errorw("failed to close ticket", "error", err, "ticket_id", cmd.ID)
		return nil, fmt.Errorf("failed to close ticket: %w", err)
	}

	closed, err := uc.ticketRepo.FindByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to reload ticket", "error", err, "ticket_id", cmd.ID)
		return nil, fmt.Errorf("failed to reload ticket: %w", err)
	}
	if closed == nil {
		return nil, errors.NewNotFoundError("Not found")
	}

	uc.logger.Infow("ticket closed", "ticket_id", cmd.ID)
	return closed, nil
}
