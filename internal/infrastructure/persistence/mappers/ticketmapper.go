package mappers

import (
	"fmt"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/mapper"
)

type TicketMapper interface {
	ToEntity(model *models.TicketModel) (*ticket.Ticket, error)
	ToModel(entity *ticket.Ticket) (*models.TicketModel, error)
	ToEntities(models []*models.TicketModel) ([]*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToEntity(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}

	status := vo.TicketStatus(model.Status)
	priority := vo.ParsePriority(model.Priority)

	entity, err := ticket.ReconstructTicket(
		model.ID,
		model.Title,
		model.Description,
		status,
		priority,
		model.CreatedBy,
		model.CategoryID,
		model.Response,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket entity: %w", err)
	}
	return entity, nil
}

func (m *TicketMapperImpl) ToModel(entity *ticket.Ticket) (*models.TicketModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.TicketModel{
		ID:          entity.ID(),
		Title:       entity.Title(),
		Description: entity.Description(),
		Status:      entity.Status().String(),
		Priority:    entity.Priority().String(),
		CreatedBy:   entity.CreatedBy(),
		CategoryID:  entity.CategoryID(),
		Response:    entity.Response(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

func (m *TicketMapperImpl) ToEntities(modelList []*models.TicketModel) ([]*ticket.Ticket, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.TicketModel) uint { return model.ID })
}
