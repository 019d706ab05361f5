package ticket

import "context"

// Repository abstracts the remote ticket table. List results are ordered
// by creation time, newest first.
type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	ListAll(ctx context.Context) ([]*Ticket, error)
	ListByCreator(ctx context.Context, creatorID uint) ([]*Ticket, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	CountByCreator(ctx context.Context, creatorID uint) (int64, error)
}
