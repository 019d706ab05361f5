package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	ID        uint
	ActorID   uint
	ActorRole authorization.UserRole
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewDeleteTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	existing, err := uc.ticketRepo.FindByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.ID)
		return fmt.Errorf("failed to get ticket: %w", err)
	}
	if existing == nil {
		return errors.NewNotFoundError("Not found")
	}
	if !authorization.CanAccessResourceByOwnerID(cmd.ActorID, cmd.ActorRole, existing.CreatedBy()) {
		return errors.NewForbiddenError("Forbidden")
	}

	if err := uc.ticketRepo.Delete(ctx, cmd.ID); err != nil {
		uc.logger.Errorw("failed to delete ticket", "error", err, "ticket_id", cmd.ID)
		return fmt.Errorf("failed to delete ticket: %w", err)
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.ID, "actor_id", cmd.ActorID)
	return nil
}
