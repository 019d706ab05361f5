package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/sanitizer"
)

func TestCreateTicket_Success(t *testing.T) {
	uc := NewCreateTicketUseCase(&mockTicketRepo{}, existingCategoryRepo(), sanitizer.New(), logger.NewLogger())

	created, err := uc.Execute(context.Background(), CreateTicketCommand{
		Title:       "Printer broken on floor 2",
		Description: "It jams on every second page",
		CategoryID:  1,
		Priority:    "HIGH",
		CreatedBy:   7,
	})
	require.NoError(t, err)
	assert.Equal(t, vo.StatusOpen, created.Status())
	assert.Equal(t, vo.PriorityHigh, created.Priority())
	assert.Equal(t, uint(7), created.CreatedBy())
	assert.NotZero(t, created.ID())
}

func TestCreateTicket_UnknownPriorityDefaultsToMedium(t *testing.T) {
	uc := NewCreateTicketUseCase(&mockTicketRepo{}, existingCategoryRepo(), sanitizer.New(), logger.NewLogger())

	created, err := uc.Execute(context.Background(), CreateTicketCommand{
		Title:       "Printer broken on floor 2",
		Description: "It jams on every second page",
		CategoryID:  1,
		Priority:    "whatever",
		CreatedBy:   7,
	})
	require.NoError(t, err)
	assert.Equal(t, vo.PriorityMedium, created.Priority())
}

func TestCreateTicket_InvalidCategory(t *testing.T) {
	uc := NewCreateTicketUseCase(&mockTicketRepo{
		saveFn: func(ctx context.Context, tk *ticket.Ticket) error {
			t.Fatal("save should not be called")
			return nil
		},
	}, &mockCategoryRepo{}, sanitizer.New(), logger.NewLogger())

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Title:       "Printer broken on floor 2",
		Description: "It jams on every second page",
		CategoryID:  99,
		CreatedBy:   7,
	})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	assert.Equal(t, "Invalid category", errors.GetAppError(err).Message)
}

func TestCreateTicket_TitleTooShort(t *testing.T) {
	uc := NewCreateTicketUseCase(&mockTicketRepo{}, existingCategoryRepo(), sanitizer.New(), logger.NewLogger())

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Title:       "bad",
		Description: "It jams on every second page",
		CategoryID:  1,
		CreatedBy:   7,
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateTicket_MarkupStripped(t *testing.T) {
	uc := NewCreateTicketUseCase(&mockTicketRepo{}, existingCategoryRepo(), sanitizer.New(), logger.NewLogger())

	created, err := uc.Execute(context.Background(), CreateTicketCommand{
		Title:       "<script>alert(1)</script>Printer broken",
		Description: "It jams on <b>every</b> second page",
		CategoryID:  1,
		CreatedBy:   7,
	})
	require.NoError(t, err)
	assert.Equal(t, "Printer broken", created.Title())
	assert.Equal(t, "It jams on every second page", created.Description())
}
