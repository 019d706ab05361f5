package category

import "context"

// Repository abstracts the remote category table.
type Repository interface {
	Save(ctx context.Context, c *Category) error
	FindByID(ctx context.Context, id uint) (*Category, error)
	FindByName(ctx context.Context, name string) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}
