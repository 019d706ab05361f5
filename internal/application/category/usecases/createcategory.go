package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/category"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/sanitizer"
)

type CreateCategoryCommand struct {
	Name        string
	Description string
	Color       string
}

type CreateCategoryUseCase struct {
	categoryRepo category.Repository
	sanitizer    *sanitizer.Sanitizer
	logger       logger.Interface
}

func NewCreateCategoryUseCase(
	categoryRepo category.Repository,
	sanitizer *sanitizer.Sanitizer,
	logger logger.Interface,
) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
		sanitizer:    sanitizer,
		logger:       logger,
	}
}

func (uc *CreateCategoryUseCase) Execute(ctx context.Context, cmd CreateCategoryCommand) (*category.Category, error) {
	name := uc.sanitizer.SanitizeText(cmd.Name)
	description := uc.sanitizer.SanitizeText(cmd.Description)

	if description == "" {
		description = category.DefaultDescription
	}
	color := cmd.Color
	if color == "" {
		color = category.DefaultColor
	}

	newCategory, err := category.NewCategory(name, description, color)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.categoryRepo.FindByName(ctx, newCategory.Name())
	if err != nil {
		uc.logger.Errorw("failed to check category name", "error", err)
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("Category exists")
	}

	if err := uc.categoryRepo.Save(ctx, newCategory); err != nil {
		uc.logger.Errorw("failed to create category", "error", err)
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	uc.logger.Infow("category created", "category_id", newCategory.ID(), "name", newCategory.Name())
	return newCategory, nil
}
