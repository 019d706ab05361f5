package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

func TestCloseTicket_SetsClosedStatus(t *testing.T) {
	open := reconstructTestTicket(1, 7, vo.StatusOpen)
	closed := reconstructTestTicket(1, 7, vo.StatusClosed)
	var gotFields map[string]interface{}
	calls := 0

	uc := NewCloseTicketUseCase(&mockTicketRepo{
		findByIDFn: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			calls++
			if calls == 1 {
				return open, nil
			}
			return closed, nil
		},
		updateFieldsFn: func(ctx context.Context, id uint, fields map[string]interface{}) error {
			gotFields = fields
			return nil
		},
	}, logger.NewLogger())

	got, err := uc.Execute(context.Background(), CloseTicketCommand{ID: 1})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"status": "closed"}, gotFields)
	assert.Equal(t, vo.StatusClosed, got.Status())
}

func TestCloseTicket_IdempotentOnClosedTicket(t *testing.T) {
	closed := reconstructTestTicket(1, 7, vo.StatusClosed)
	uc := NewCloseTicketUseCase(&mockTicketRepo{
		findByIDFn: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return closed, nil
		},
	}, logger.NewLogger())

	got, err := uc.Execute(context.Background(), CloseTicketCommand{ID: 1})
	require.NoError(t, err)
	assert.Equal(t, vo.StatusClosed, got.Status())
}

func TestCloseTicket_Missing(t *testing.T) {
	uc := NewCloseTicketUseCase(&mockTicketRepo{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), CloseTicketCommand{ID: 99})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeleteTicket_OwnerDeletes(t *testing.T) {
	existing := reconstructTestTicket(1, 7, vo.StatusOpen)
	deleted := false

	uc := NewDeleteTicketUseCase(&mockTicketRepo{
		findByIDFn: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
		deleteFn: func(ctx context.Context, id uint) error {
			deleted = true
			return nil
		},
	}, logger.NewLogger())

	require.NoError(t, uc.Execute(context.Background(), DeleteTicketCommand{
		ID:        1,
		ActorID:   7,
		ActorRole: authorization.RoleUser,
	}))
	assert.True(t, deleted)
}

func TestDeleteTicket_StrangerForbidden(t *testing.T) {
	existing := reconstructTestTicket(1, 7, vo.StatusOpen)
	uc := NewDeleteTicketUseCase(&mockTicketRepo{
		findByIDFn: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}, logger.NewLogger())

	err := uc.Execute(context.Background(), DeleteTicketCommand{
		ID:        1,
		ActorID:   8,
		ActorRole: authorization.RoleUser,
	})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}
