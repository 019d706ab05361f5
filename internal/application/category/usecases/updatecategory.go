package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/category"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/sanitizer"
)

type UpdateCategoryCommand struct {
	ID          uint
	Name        string
	Description string
	Color       string
}

type UpdateCategoryUseCase struct {
	categoryRepo category.Repository
	sanitizer    *sanitizer.Sanitizer
	logger       logger.Interface
}

func NewUpdateCategoryUseCase(
	categoryRepo category.Repository,
	sanitizer *sanitizer.Sanitizer,
	logger logger.Interface,
) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
		sanitizer:    sanitizer,
		logger:       logger,
	}
}

// Execute replaces name, description and color wholesale. The name is
// not re-checked for uniqueness here; the database unique index is the
// only guard on renames.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, cmd UpdateCategoryCommand) (*category.Category, error) {
	existing, err := uc.categoryRepo.FindByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to get category", "error", err, "category_id", cmd.ID)
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("Not found")
	}

	name, err := category.ValidateName(uc.sanitizer.SanitizeText(cmd.Name))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	description := uc.sanitizer.SanitizeText(cmd.Description)
	if len(description) > 500 {
		return nil, errors.NewValidationError("description exceeds maximum length of 500 characters")
	}

	color, err := category.ValidateColor(cmd.Color)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	fields := map[string]interface{}{
		"name":        name,
		"description": description,
		"color":       color,
	}
	if err := uc.categoryRepo.UpdateFields(ctx, cmd.ID, fields); err != nil {
		uc.logger.Errorw("failed to update category", "error", err, "category_id", cmd.ID)
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	updated, err := uc.categoryRepo.FindByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to reload category", "error", err, "category_id", cmd.ID)
		return nil, fmt.Errorf("failed to reload category: %w", err)
	}
	if updated == nil {
		return nil, errors.NewNotFoundError("Not found")
	}

	uc.logger.Infow("category updated", "category_id", cmd.ID)
	return updated, nil
}
