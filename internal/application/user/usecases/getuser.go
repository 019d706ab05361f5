package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetUserQuery struct {
	ID uint
}

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, query GetUserQuery) (*user.User, error) {
	found, err := uc.userRepo.FindByID(ctx, query.ID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", query.ID)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if found == nil {
		return nil, errors.NewNotFoundError("User not found")
	}
	return found, nil
}
