package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/errors"
)

type TicketRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) ticket.Repository {
	return &TicketRepositoryImpl{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepositoryImpl) Save(ctx context.Context, t *ticket.Ticket) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return fmt.Errorf("failed to map ticket entity to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set ticket ID: %w", err)
	}
	return nil
}

func (r *TicketRepositoryImpl) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ticket by ID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *TicketRepositoryImpl) ListAll(ctx context.Context) ([]*ticket.Ticket, error) {
	var modelList []*models.TicketModel

	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *TicketRepositoryImpl) ListByCreator(ctx context.Context, creatorID uint) ([]*ticket.Ticket, error) {
	var modelList []*models.TicketModel

	if err := r.db.WithContext(ctx).
		Where("created_by = ?", creatorID).
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets by creator: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *TicketRepositoryImpl) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.TicketModel{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("ticket not found")
	}
	return nil
}

func (r *TicketRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.TicketModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("ticket not found")
	}
	return nil
}

func (r *TicketRepositoryImpl) CountByCreator(ctx context.Context, creatorID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.TicketModel{}).Where("created_by = ?", creatorID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets by creator: %w", err)
	}
	return count, nil
}
