package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/category"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/errors"
)

type CategoryRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CategoryMapper
}

func NewCategoryRepository(db *gorm.DB) category.Repository {
	return &CategoryRepositoryImpl{
		db:     db,
		mapper: mappers.NewCategoryMapper(),
	}
}

func (r *CategoryRepositoryImpl) Save(ctx context.Context, c *category.Category) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return fmt.Errorf("failed to map category entity to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set category ID: %w", err)
	}
	return nil
}

func (r *CategoryRepositoryImpl) FindByID(ctx context.Context, id uint) (*category.Category, error) {
	var model models.CategoryModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category by ID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *CategoryRepositoryImpl) FindByName(ctx context.Context, name string) (*category.Category, error) {
	var model models.CategoryModel

	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category by name: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *CategoryRepositoryImpl) List(ctx context.Context) ([]*category.Category, error) {
	var modelList []*models.CategoryModel

	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *CategoryRepositoryImpl) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.CategoryModel{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("category not found")
	}
	return nil
}

func (r *CategoryRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.CategoryModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("category not found")
	}
	return nil
}
