package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

const registerPasswordMinLength = 8

type RegisterUserCommand struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type RegisterUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewRegisterUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
	if err := user.ValidatePassword(cmd.Password, registerPasswordMinLength); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	email, err := user.ValidateEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("Email already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := authorization.ParseUserRole(cmd.Role)
	newUser, err := user.NewUser(cmd.Name, email, hash, role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "email", newUser.Email())
	return newUser, nil
}
