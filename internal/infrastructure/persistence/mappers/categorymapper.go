package mappers

import (
	"fmt"

	"helpdesk/internal/domain/category"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/mapper"
)

type CategoryMapper interface {
	ToEntity(model *models.CategoryModel) (*category.Category, error)
	ToModel(entity *category.Category) (*models.CategoryModel, error)
	ToEntities(models []*models.CategoryModel) ([]*category.Category, error)
}

type CategoryMapperImpl struct{}

func NewCategoryMapper() CategoryMapper {
	return &CategoryMapperImpl{}
}

// ToEntity substitutes the documented defaults for null description and
// color columns.
func (m *CategoryMapperImpl) ToEntity(model *models.CategoryModel) (*category.Category, error) {
	if model == nil {
		return nil, nil
	}

	description := category.DefaultDescription
	if model.Description != nil {
		description = *model.Description
	}
	color := category.DefaultColor
	if model.Color != nil {
		color = *model.Color
	}

	entity, err := category.ReconstructCategory(
		model.ID,
		model.Name,
		description,
		color,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct category entity: %w", err)
	}
	return entity, nil
}

func (m *CategoryMapperImpl) ToModel(entity *category.Category) (*models.CategoryModel, error) {
	if entity == nil {
		return nil, nil
	}

	description := entity.Description()
	color := entity.Color()
	return &models.CategoryModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Description: &description,
		Color:       &color,
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

func (m *CategoryMapperImpl) ToEntities(modelList []*models.CategoryModel) ([]*category.Category, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.CategoryModel) uint { return model.ID })
}
