package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/category"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/sanitizer"
)

type UpdateTicketCommand struct {
	ID          uint
	Title       *string
	Description *string
	CategoryID  *uint
	Status      *string
	Priority    *string
	Response    *string
	ActorID     uint
	ActorRole   authorization.UserRole
}

type UpdateTicketUseCase struct {
	ticketRepo   ticket.Repository
	categoryRepo category.Repository
	sanitizer    *sanitizer.Sanitizer
	logger       logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	categoryRepo category.Repository,
	sanitizer *sanitizer.Sanitizer,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo:   ticketRepo,
		categoryRepo: categoryRepo,
		sanitizer:    sanitizer,
		logger:       logger,
	}
}

// Execute applies a partial update with owner-or-admin access. The
// response field is reserved for admins; a non-admin setting it gets a
// silent no-op on that field, not an error. A command with no effective
// changes returns the current record.
func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*ticket.Ticket, error) {
	existing, err := uc.ticketRepo.FindByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.ID)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("Not found")
	}
	if !authorization.CanAccessResourceByOwnerID(cmd.ActorID, cmd.ActorRole, existing.CreatedBy()) {
		return nil, errors.NewForbiddenError("Forbidden")
	}

	fields := map[string]interface{}{}

	if cmd.Title != nil {
		title, err := ticket.ValidateTitle(uc.sanitizer.SanitizeText(*cmd.Title))
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		fields["title"] = title
	}

	if cmd.Description != nil {
		description := uc.sanitizer.SanitizeText(*cmd.Description)
		if err := ticket.ValidateDescription(description); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		fields["description"] = description
	}

	if cmd.CategoryID != nil {
		target, err := uc.categoryRepo.FindByID(ctx, *cmd.CategoryID)
		if err != nil {
			uc.logger.Errorw("failed to check category", "error", err, "category_id", *cmd.CategoryID)
			return nil, fmt.Errorf("failed to check category: %w", err)
		}
		if target == nil {
			return nil, errors.NewConflictError("Invalid category")
		}
		fields["category_id"] = *cmd.CategoryID
	}

	if cmd.Status != nil {
		status := vo.TicketStatus(*cmd.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid status: %s", *cmd.Status))
		}
		fields["status"] = status.String()
	}

	if cmd.Priority != nil {
		priority := vo.Priority(*cmd.Priority)
		if !priority.IsValid() {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid priority: %s", *cmd.Priority))
		}
		fields["priority"] = priority.String()
	}

	// Only admins may write the response field. For everyone else the
	// field is dropped without complaint.
	if cmd.Response != nil && cmd.ActorRole.IsAdmin() {
		fields["response"] = *cmd.Response
	}

	if len(fields) == 0 {
		return existing, nil
	}

	if err := uc.ticketRepo.UpdateFields(ctx, cmd.ID, fields); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", cmd.ID)
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	updated, err := uc.ticketRepo.FindByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to reload ticket", "error", err, "ticket_id", cmd.ID)
		return nil, fmt.Errorf("failed to reload ticket: %w", err)
	}
	if updated == nil {
		return nil, errors.NewNotFoundError("Not found")
	}

	uc.logger.Infow("ticket updated", "ticket_id", cmd.ID, "actor_id", cmd.ActorID)
	return updated, nil
}
