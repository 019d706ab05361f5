package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

func TestDeleteUser_Success(t *testing.T) {
	target := reconstructTestUser(2, "bob@example.com", authorization.RoleUser)
	deleted := false

	uc := NewDeleteUserUseCase(&mockUserRepo{
		findByIDFn: func(ctx context.Context, id uint) (*user.User, error) {
			return target, nil
		},
		deleteFn: func(ctx context.Context, id uint) error {
			deleted = true
			return nil
		},
	}, &mockTicketRepo{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), DeleteUserCommand{TargetID: 2})
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, target, result.DeletedUser)
}

func TestDeleteUser_Missing(t *testing.T) {
	uc := NewDeleteUserUseCase(&mockUserRepo{}, &mockTicketRepo{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), DeleteUserCommand{TargetID: 99})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeleteUser_BlockedByOwnedTickets(t *testing.T) {
	target := reconstructTestUser(2, "bob@example.com", authorization.RoleUser)

	uc := NewDeleteUserUseCase(&mockUserRepo{
		findByIDFn: func(ctx context.Context, id uint) (*user.User, error) {
			return target, nil
		},
	}, &mockTicketRepo{
		countByCreatorFn: func(ctx context.Context, creatorID uint) (int64, error) {
			return 3, nil
		},
	}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), DeleteUserCommand{TargetID: 2})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	assert.Contains(t, errors.GetAppError(err).Message, "3 ticket(s) associated")
}

func TestDeleteUser_LastAdminBlocked(t *testing.T) {
	target := reconstructTestUser(1, "root@example.com", authorization.RoleAdmin)

	uc := NewDeleteUserUseCase(&mockUserRepo{
		findByIDFn: func(ctx context.Context, id uint) (*user.User, error) {
			return target, nil
		},
		countByRoleFn: func(ctx context.Context, role authorization.UserRole) (int64, error) {
			return 1, nil
		},
	}, &mockTicketRepo{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), DeleteUserCommand{TargetID: 1})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	assert.Equal(t, "Cannot delete the last administrator", errors.GetAppError(err).Message)
}

func TestDeleteUser_AdminWithPeersAllowed(t *testing.T) {
	target := reconstructTestUser(1, "root@example.com", authorization.RoleAdmin)

	uc := NewDeleteUserUseCase(&mockUserRepo{
		findByIDFn: func(ctx context.Context, id uint) (*user.User, error) {
			return target, nil
		},
		countByRoleFn: func(ctx context.Context, role authorization.UserRole) (int64, error) {
			return 2, nil
		},
	}, &mockTicketRepo{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), DeleteUserCommand{TargetID: 1})
	require.NoError(t, err)
}
