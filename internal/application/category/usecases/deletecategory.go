package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/category"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteCategoryCommand struct {
	ID uint
}

type DeleteCategoryUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewDeleteCategoryUseCase(categoryRepo category.Repository, logger logger.Interface) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, cmd DeleteCategoryCommand) error {
	existing, err := uc.categoryRepo.FindByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to get category", "error", err, "category_id", cmd.ID)
		return fmt.Errorf("failed to get category: %w", err)
	}
	if existing == nil {
		return errors.NewNotFoundError("Not found")
	}

	if err := uc.categoryRepo.Delete(ctx, cmd.ID); err != nil {
		uc.logger.Errorw("failed to delete category", "error", err, "category_id", cmd.ID)
		return fmt.Errorf("failed to delete category: %w", err)
	}

	uc.logger.Infow("category deleted", "category_id", cmd.ID)
	return nil
}
