package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/category"
	"helpdesk/internal/shared/logger"
)

type ListCategoriesUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewListCategoriesUseCase(categoryRepo category.Repository, logger logger.Interface) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context) ([]*category.Category, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list categories", "error", err)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
