package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/category"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetCategoryQuery struct {
	ID uint
}

type GetCategoryUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewGetCategoryUseCase(categoryRepo category.Repository, logger logger.Interface) *GetCategoryUseCase {
	return &GetCategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *GetCategoryUseCase) Execute(ctx context.Context, query GetCategoryQuery) (*category.Category, error) {
	found, err := uc.categoryRepo.FindByID(ctx, query.ID)
	if err != nil {
		uc.logger.Errorw("failed to get category", "error", err, "category_id", query.ID)
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	if found == nil {
		return nil, errors.NewNotFoundError("Not found")
	}
	return found, nil
}
