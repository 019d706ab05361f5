package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	AccessToken string
	TokenType   string
	Role        authorization.UserRole
	User        *user.User
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Execute authenticates by email and password. Unknown accounts and wrong
// passwords produce the same generic error.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	existing, err := uc.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if existing == nil {
		return nil, errors.NewUnauthorizedError("Invalid credentials")
	}

	if err := uc.hasher.Verify(cmd.Password, existing.PasswordHash()); err != nil {
		return nil, errors.NewUnauthorizedError("Invalid credentials")
	}

	token, err := uc.tokens.Generate(existing.Email(), existing.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate access token", "error", err)
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	uc.logger.Infow("user logged in", "user_id", existing.ID())
	return &LoginResult{
		AccessToken: token,
		TokenType:   "bearer",
		Role:        existing.Role(),
		User:        existing,
	}, nil
}
