package user

import (
	"context"

	"helpdesk/internal/shared/authorization"
)

// Repository abstracts the remote user table. Updates send only the
// changed fields; reads always hit the store.
type Repository interface {
	Save(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	CountByRole(ctx context.Context, role authorization.UserRole) (int64, error)
}
