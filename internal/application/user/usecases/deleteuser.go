package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteUserCommand struct {
	TargetID uint
}

type DeleteUserResult struct {
	DeletedUser *user.User
}

type DeleteUserUseCase struct {
	userRepo   user.Repository
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewDeleteUserUseCase(
	userRepo user.Repository,
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo:   userRepo,
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute removes an account. Deletion is refused while the account still
// owns tickets, and the last administrator can never be removed.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) (*DeleteUserResult, error) {
	existing, err := uc.userRepo.FindByID(ctx, cmd.TargetID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", cmd.TargetID)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("User not found")
	}

	ticketCount, err := uc.ticketRepo.CountByCreator(ctx, cmd.TargetID)
	if err != nil {
		uc.logger.Errorw("failed to count user tickets", "error", err, "user_id", cmd.TargetID)
		return nil, fmt.Errorf("failed to count user tickets: %w", err)
	}
	if ticketCount > 0 {
		return nil, errors.NewConflictError(fmt.Sprintf(
			"Cannot delete user: User has %d ticket(s) associated. Please resolve or transfer the tickets first.",
			ticketCount))
	}

	if existing.IsAdmin() {
		admins, err := uc.userRepo.CountByRole(ctx, authorization.RoleAdmin)
		if err != nil {
			uc.logger.Errorw("failed to count administrators", "error", err)
			return nil, fmt.Errorf("failed to count administrators: %w", err)
		}
		if admins <= 1 {
			return nil, errors.NewConflictError("Cannot delete the last administrator")
		}
	}

	if err := uc.userRepo.Delete(ctx, cmd.TargetID); err != nil {
		uc.logger.Errorw("failed to delete user", "error", err, "user_id", cmd.TargetID)
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}

	uc.logger.Infow("user deleted", "user_id", cmd.TargetID)
	return &DeleteUserResult{DeletedUser: existing}, nil
}
