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
	"helpdesk/internal/shared/services/sanitizer"
)

func strPtr(s string) *string {
	return &s
}

func TestUpdateTicket_OwnerUpdatesTitle(t *testing.T) {
	existing := reconstructTestTicket(1, 7, vo.StatusOpen)
	var gotFields map[string]interface{}

	uc := NewUpdateTicketUseCase(&mockTicketRepo{
		findByIDFn: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
		updateFieldsFn: func(ctx context.Context, id uint, fields map[string]interface{}) error {
			gotFields = fields
			return nil
		},
	}, existingCategoryRepo(), sanitizer.New(), logger.NewLogger())

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{
		ID:        1,
		Title:     strPtr("Printer still broken"),
		ActorID:   7,
		ActorRole: authorization.RoleUser,
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"title": "Printer still broken"}, gotFields)
}

func TestUpdateTicket_NonOwnerForbidden(t *testing.T) {
	existing := reconstructTestTicket(1, 7, vo.StatusOpen)
	uc := NewUpdateTicketUseCase(&mockTicketRepo{
		findByIDFn: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}, existingCategoryRepo(), sanitizer.New(), logger.NewLogger())

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{
		ID:        1,
		Title:     strPtr("Hijacked title"),
		ActorID:   8,
		ActorRole: authorization.RoleUser,
	})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
	assert.Equal(t, "Forbidden", errors.GetAppError(err).Message)
}

func TestUpdateTicket_MissingIs404BeforeOwnership(t *testing.T) {
	uc := NewUpdateTicketUseCase(&mockTicketRepo{}, existingCategoryRepo(), sanitizer.New(), logger.NewLogger())

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{
		ID:        99,
		ActorID:   8,
		ActorRole: authorization.RoleUser,
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUpdateTicket_ResponseDroppedForNonAdmin(t *testing.T) {
	existing := reconstructTestTicket(1, 7, vo.StatusOpen)
	uc := NewUpdateTicketUseCase(&mockTicketRepo{
		findByIDFn: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
		updateFieldsFn: func(ctx context.Context, id uint, fields map[string]interface{}) error {
			t.Fatal("update should not be called when only the response field is sent by a non-admin")
			return nil
		},
	}, existingCategoryRepo(), sanitizer.New(), logger.NewLogger())

	got, err := uc.Execute(context.Background(), UpdateTicketCommand{
		ID:        1,
		Response:  strPtr("I fixed it myself"),
		ActorID:   7,
		ActorRole: authorization.RoleUser,
	})
	require.NoError(t, err)
	assert.Same(t, existing, got)
}

func TestUpdateTicket_AdminWritesResponse(t *testing.T) {
	existing := reconstructTestTicket(1, 7, vo.StatusOpen)
	var gotFields map[string]interface{}

	uc := NewUpdateTicketUseCase(&mockTicketRepo{
		findByIDFn: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
		updateFieldsFn: func(ctx context.Context, id uint, fields map[string]interface{}) error {
			gotFields = fields
			return nil
		},
	}, existingCategoryRepo(), sanitizer.New(), logger.NewLogger())

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{
		ID:        1,
		Response:  strPtr("Replaced the fuser unit"),
		ActorID:   2,
		ActorRole: authorization.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"response": "Replaced the fuser unit"}, gotFields)
}

func TestUpdateTicket_UnknownCategoryRejected(t *testing.T) {
	existing := reconstructTestTicket(1, 7, vo.StatusOpen)
	uc := NewUpdateTicketUseCase(&mockTicketRepo{
		findByIDFn: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
		updateFieldsFn: func(ctx context.Context, id uint, fields map[string]interface{}) error {
			t.Fatal("update should not be called with an unknown category")
			return nil
		},
	}, &mockCategoryRepo{}, sanitizer.New(), logger.NewLogger())

	unknown := uint(999999)
	_, err := uc.Execute(context.Background(), UpdateTicketCommand{
		ID:         1,
		CategoryID: &unknown,
		ActorID:    7,
		ActorRole:  authorization.RoleUser,
	})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	assert.Equal(t, "Invalid category", errors.GetAppError(err).Message)
}

func TestUpdateTicket_InvalidStatus(t *testing.T) {
	existing := reconstructTestTicket(1, 7, vo.StatusOpen)
	uc := NewUpdateTicketUseCase(&mockTicketRepo{
		findByIDFn: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}, existingCategoryRepo(), sanitizer.New(), logger.NewLogger())

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{
		ID:        1,
		Status:    strPtr("pending"),
		ActorID:   7,
		ActorRole: authorization.RoleUser,
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
