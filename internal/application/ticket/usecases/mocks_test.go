package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/category"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
)

type mockTicketRepo struct {
	saveFn           func(ctx context.Context, t *ticket.Ticket) error
	findByIDFn       func(ctx context.Context, id uint) (*ticket.Ticket, error)
	listAllFn        func(ctx context.Context) ([]*ticket.Ticket, error)
	listByCreatorFn  func(ctx context.Context, creatorID uint) ([]*ticket.Ticket, error)
	updateFieldsFn   func(ctx context.Context, id uint, fields map[string]interface{}) error
	deleteFn         func(ctx context.Context, id uint) error
	countByCreatorFn func(ctx context.Context, creatorID uint) (int64, error)
}

func (m *mockTicketRepo) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, t)
	}
	return t.SetID(1)
}

func (m *mockTicketRepo) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepo) ListAll(ctx context.Context) ([]*ticket.Ticket, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx)
	}
	return nil, nil
}

func (m *mockTicketRepo) ListByCreator(ctx context.Context, creatorID uint) ([]*ticket.Ticket, error) {
	if m.listByCreatorFn != nil {
		return m.listByCreatorFn(ctx, creatorID)
	}
	return nil, nil
}

func (m *mockTicketRepo) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	if m.updateFieldsFn != nil {
		return m.updateFieldsFn(ctx, id, fields)
	}
	return nil
}

func (m *mockTicketRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockTicketRepo) CountByCreator(ctx context.Context, creatorID uint) (int64, error) {
	if m.countByCreatorFn != nil {
		return m.countByCreatorFn(ctx, creatorID)
	}
	return 0, nil
}

type mockCategoryRepo struct {
	findByIDFn func(ctx context.Context, id uint) (*category.Category, error)
}

func (m *mockCategoryRepo) Save(ctx context.Context, c *category.Category) error {
	return c.SetID(1)
}

func (m *mockCategoryRepo) FindByID(ctx context.Context, id uint) (*category.Category, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockCategoryRepo) FindByName(ctx context.Context, name string) (*category.Category, error) {
	return nil, nil
}

func (m *mockCategoryRepo) List(ctx context.Context) ([]*category.Category, error) {
	return nil, nil
}

func (m *mockCategoryRepo) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return nil
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id uint) error {
	return nil
}

func existingCategoryRepo() *mockCategoryRepo {
	return &mockCategoryRepo{
		findByIDFn: func(ctx context.Context, id uint) (*category.Category, error) {
			now := time.Now()
			return category.ReconstructCategory(id, "Hardware", "Categoria", "#3b82f6", now, now)
		},
	}
}

func reconstructTestTicket(id, createdBy uint, status vo.TicketStatus) *ticket.Ticket {
	now := time.Now()
	t, err := ticket.ReconstructTicket(
		id,
		"printer does not print",
		"a description long enough",
		status,
		vo.PriorityMedium,
		createdBy,
		1,
		nil,
		now,
		now,
	)
	if err != nil {
		panic(err)
	}
	return t
}
