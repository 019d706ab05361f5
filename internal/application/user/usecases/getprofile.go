package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetProfileQuery struct {
	UserID uint
}

type GetProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetProfileUseCase(userRepo user.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, query GetProfileQuery) (*user.User, error) {
	found, err := uc.userRepo.FindByID(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load profile", "error", err, "user_id", query.UserID)
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if found == nil {
		return nil, errors.NewNotFoundError("User not found")
	}
	return found, nil
}
