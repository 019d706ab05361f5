package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &UserRepositoryImpl{
		db:     db,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepositoryImpl) Save(ctx context.Context, u *user.User) error {
	model, err := r.mapper.ToModel(u)
	if err != nil {
		return fmt.Errorf("failed to map user entity to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := u.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set user ID: %w", err)
	}
	return nil
}

func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel

	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *UserRepositoryImpl) List(ctx context.Context) ([]*user.User, error) {
	var modelList []*models.UserModel

	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *UserRepositoryImpl) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.UserModel{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("user not found")
	}
	return nil
}

func (r *UserRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.UserModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("user not found")
	}
	return nil
}

func (r *UserRepositoryImpl) CountByRole(ctx context.Context, role authorization.UserRole) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.UserModel{}).Where("role = ?", role.String()).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users by role: %w", err)
	}
	return count, nil
}
