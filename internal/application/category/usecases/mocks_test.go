package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/category"
)

type mockCategoryRepo struct {
	saveFn         func(ctx context.Context, c *category.Category) error
	findByIDFn     func(ctx context.Context, id uint) (*category.Category, error)
	findByNameFn   func(ctx context.Context, name string) (*category.Category, error)
	listFn         func(ctx context.Context) ([]*category.Category, error)
	updateFieldsFn func(ctx context.Context, id uint, fields map[string]interface{}) error
	deleteFn       func(ctx context.Context, id uint) error
}

func (m *mockCategoryRepo) Save(ctx context.Context, c *category.Category) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, c)
	}
	return c.SetID(1)
}

func (m *mockCategoryRepo) FindByID(ctx context.Context, id uint) (*category.Category, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockCategoryRepo) FindByName(ctx context.Context, name string) (*category.Category, error) {
	if m.findByNameFn != nil {
		return m.findByNameFn(ctx, name)
	}
	return nil, nil
}

func (m *mockCategoryRepo) List(ctx context.Context) ([]*category.Category, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockCategoryRepo) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	if m.updateFieldsFn != nil {
		return m.updateFieldsFn(ctx, id, fields)
	}
	return nil
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func reconstructTestCategory(id uint, name string) *category.Category {
	now := time.Now()
	c, err := category.ReconstructCategory(id, name, "Categoria", "#3b82f6", now, now)
	if err != nil {
		panic(err)
	}
	return c
}
