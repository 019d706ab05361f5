package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/category"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/sanitizer"
)

type CreateTicketCommand struct {
	Title       string
	Description string
	CategoryID  uint
	Priority    string
	CreatedBy   uint
}

type CreateTicketUseCase struct {
	ticketRepo   ticket.Repository
	categoryRepo category.Repository
	sanitizer    *sanitizer.Sanitizer
	logger       logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	categoryRepo category.Repository,
	sanitizer *sanitizer.Sanitizer,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:   ticketRepo,
		categoryRepo: categoryRepo,
		sanitizer:    sanitizer,
		logger:       logger,
	}
}

// Execute opens a new ticket. The creator and the open status are forced
// from the caller's identity, never from the payload.
func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*ticket.Ticket, error) {
	existing, err := uc.categoryRepo.FindByID(ctx, cmd.CategoryID)
	if err != nil {
		uc.logger.Errorw("failed to check category", "error", err, "category_id", cmd.CategoryID)
		return nil, fmt.Errorf("failed to check category: %w", err)
	}
	if existing == nil {
		return nil, errors.NewConflictError("Invalid category")
	}

	title := uc.sanitizer.SanitizeText(cmd.Title)
	description := uc.sanitizer.SanitizeText(cmd.Description)
	priority := vo.ParsePriority(cmd.Priority)

	newTicket, err := ticket.NewTicket(title, description, cmd.CategoryID, priority, cmd.CreatedBy)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to create ticket", "error", err)
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	uc.logger.Infow("ticket created",
		"ticket_id", newTicket.ID(),
		"created_by", cmd.CreatedBy,
		"category_id", cmd.CategoryID)
	return newTicket, nil
}
