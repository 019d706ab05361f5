package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context) ([]*user.User, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
