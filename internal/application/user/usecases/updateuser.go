package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

const updatePasswordMinLength = 6

type UpdateUserCommand struct {
	TargetID  uint
	Name      *string
	Email     *string
	Password  *string
	Role      *string
	ActorID   uint
	ActorRole authorization.UserRole
}

type UpdateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewUpdateUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// Execute applies a partial update. Admins may update anyone; regular
// users only themselves, and only admins may grant the admin role. A
// command with no effective changes returns the current record.
func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*user.User, error) {
	existing, err := uc.userRepo.FindByID(ctx, cmd.TargetID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", cmd.TargetID)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("User not found")
	}

	if !cmd.ActorRole.IsAdmin() && cmd.ActorID != cmd.TargetID {
		return nil, errors.NewForbiddenError("Forbidden: You can only update your own profile")
	}

	fields := map[string]interface{}{}

	if cmd.Name != nil {
		name, err := user.ValidateName(*cmd.Name)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		fields["name"] = name
	}

	if cmd.Email != nil {
		email, err := user.ValidateEmail(*cmd.Email)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		inUse, err := uc.userRepo.FindByEmail(ctx, email)
		if err != nil {
			uc.logger.Errorw("failed to check email existence", "error", err)
			return nil, fmt.Errorf("failed to check email existence: %w", err)
		}
		if inUse != nil && inUse.ID() != cmd.TargetID {
			return nil, errors.NewConflictError("Email already in use")
		}
		fields["email"] = email
	}

	if cmd.Password != nil {
		if err := user.ValidatePassword(*cmd.Password, updatePasswordMinLength); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		hash, err := uc.hasher.Hash(*cmd.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		fields["password_hash"] = hash
	}

	if cmd.Role != nil {
		newRole := authorization.UserRole(*cmd.Role)
		if !newRole.IsValid() {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid role: %s", *cmd.Role))
		}
		if !cmd.ActorRole.IsAdmin() && newRole.IsAdmin() {
			return nil, errors.NewForbiddenError("Only administrators can change user roles")
		}
		if existing.IsAdmin() && !newRole.IsAdmin() {
			admins, err := uc.userRepo.CountByRole(ctx, authorization.RoleAdmin)
			if err != nil {
				uc.logger.Errorw("failed to count administrators", "error", err)
				return nil, fmt.Errorf("failed to count administrators: %w", err)
			}
			if admins <= 1 {
				return nil, errors.NewConflictError("Cannot change role of the last administrator")
			}
		}
		fields["role"] = newRole.String()
	}

	if len(fields) == 0 {
		return existing, nil
	}

	if err := uc.userRepo.UpdateFields(ctx, cmd.TargetID, fields); err != nil {
		uc.logger.Errorw("failed to update user", "error", err, "user_id", cmd.TargetID)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	updated, err := uc.userRepo.FindByID(ctx, cmd.TargetID)
	if err != nil {
		uc.logger.Errorw("failed to reload user", "error", err, "user_id", cmd.TargetID)
		return nil, fmt.Errorf("failed to reload user: %w", err)
	}
	if updated == nil {
		return nil, errors.NewNotFoundError("User not found")
	}

	uc.logger.Infow("user updated", "user_id", cmd.TargetID, "actor_id", cmd.ActorID)
	return updated, nil
}
