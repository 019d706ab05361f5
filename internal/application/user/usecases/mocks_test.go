package usecases

import (
	"context"
	"fmt"
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
)

type mockUserRepo struct {
	saveFn         func(ctx context.Context, u *user.User) error
	findByIDFn     func(ctx context.Context, id uint) (*user.User, error)
	findByEmailFn  func(ctx context.Context, email string) (*user.User, error)
	listFn         func(ctx context.Context) ([]*user.User, error)
	updateFieldsFn func(ctx context.Context, id uint, fields map[string]interface{}) error
	deleteFn       func(ctx context.Context, id uint) error
	countByRoleFn  func(ctx context.Context, role authorization.UserRole) (int64, error)
}

func (m *mockUserRepo) Save(ctx context.Context, u *user.User) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, u)
	}
	return u.SetID(1)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) List(ctx context.Context) ([]*user.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepo) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	if m.updateFieldsFn != nil {
		return m.updateFieldsFn(ctx, id, fields)
	}
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockUserRepo) CountByRole(ctx context.Context, role authorization.UserRole) (int64, error) {
	if m.countByRoleFn != nil {
		return m.countByRoleFn(ctx, role)
	}
	return 0, nil
}

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

type mockHasher struct {
	hashFn   func(password string) (string, error)
	verifyFn func(password, hash string) error
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.hashFn != nil {
		return m.hashFn(password)
	}
	return "hashed:" + password, nil
}

func (m *mockHasher) Verify(password, hash string) error {
	if m.verifyFn != nil {
		return m.verifyFn(password, hash)
	}
	if "hashed:"+password != hash {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

type mockTokenIssuer struct {
	generateFn func(email string, role authorization.UserRole) (string, error)
}

func (m *mockTokenIssuer) Generate(email string, role authorization.UserRole) (string, error) {
	if m.generateFn != nil {
		return m.generateFn(email, role)
	}
	return "token-for-" + email, nil
}

func reconstructTestUser(id uint, email string, role authorization.UserRole) *user.User {
	now := time.Now()
	u, err := user.ReconstructUser(id, "Test User", email, "hashed:secret-pass", role, now, now)
	if err != nil {
		panic(err)
	}
	return u
}
