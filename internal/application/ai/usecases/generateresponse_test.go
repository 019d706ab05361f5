package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/sanitizer"
)

type mockGenerator struct {
	generateFn func(ctx context.Context, title, description string) string
	healthFn   func(ctx context.Context) bool
}

func (m *mockGenerator) GenerateTicketResponse(ctx context.Context, title, description string) string {
	if m.generateFn != nil {
		return m.generateFn(ctx, title, description)
	}
	return "Tente reiniciar o equipamento."
}

func (m *mockGenerator) HealthCheck(ctx context.Context) bool {
	if m.healthFn != nil {
		return m.healthFn(ctx)
	}
	return true
}

func (m *mockGenerator) Model() string {
	return "test-model"
}

type mockTicketRepo struct {
	findByIDFn func(ctx context.Context, id uint) (*ticket.Ticket, error)
}

func (m *mockTicketRepo) Save(ctx context.Context, t *ticket.Ticket) error {
	return t.SetID(1)
}

func (m *mockTicketRepo) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepo) ListAll(ctx context.Context) ([]*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepo) ListByCreator(ctx context.Context, creatorID uint) ([]*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepo) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return nil
}

func (m *mockTicketRepo) Delete(ctx context.Context, id uint) error {
	return nil
}

func (m *mockTicketRepo) CountByCreator(ctx context.Context, creatorID uint) (int64, error) {
	return 0, nil
}

func TestGenerateResponse_ReturnsModelAndTimestamp(t *testing.T) {
	uc := NewGenerateResponseUseCase(&mockGenerator{}, sanitizer.New(), logger.NewLogger())

	got, err := uc.Execute(context.Background(), GenerateResponseCommand{
		Title:       "Sem internet",
		Description: "O wifi caiu hoje cedo",
	})
	require.NoError(t, err)
	assert.Equal(t, "Tente reiniciar o equipamento.", got.Response)
	assert.Equal(t, "test-model", got.UsedModel)
	assert.WithinDuration(t, time.Now(), got.GeneratedAt, time.Minute)
}

func TestGenerateResponse_RendersMarkdown(t *testing.T) {
	uc := NewGenerateResponseUseCase(&mockGenerator{
		generateFn: func(ctx context.Context, title, description string) string {
			return "Passos:\n\n- Reinicie o **roteador**"
		},
	}, sanitizer.New(), logger.NewLogger())

	got, err := uc.Execute(context.Background(), GenerateResponseCommand{
		Title:       "Sem internet",
		Description: "O wifi caiu hoje cedo",
	})
	require.NoError(t, err)
	assert.Contains(t, got.ResponseHTML, "<strong>roteador</strong>")
}

func TestGenerateTicketResponse_UsesTicketFields(t *testing.T) {
	now := time.Now()
	existing, err := ticket.ReconstructTicket(
		5, "printer does not print", "a description long enough",
		vo.StatusOpen, vo.PriorityMedium, 7, 1, nil, now, now,
	)
	require.NoError(t, err)

	var gotTitle, gotDescription string
	uc := NewGenerateTicketResponseUseCase(&mockTicketRepo{
		findByIDFn: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}, &mockGenerator{
		generateFn: func(ctx context.Context, title, description string) string {
			gotTitle, gotDescription = title, description
			return "draft reply"
		},
	}, sanitizer.New(), logger.NewLogger())

	got, err := uc.Execute(context.Background(), GenerateTicketResponseCommand{TicketID: 5})
	require.NoError(t, err)
	assert.Equal(t, "printer does not print", gotTitle)
	assert.Equal(t, "a description long enough", gotDescription)
	assert.Equal(t, "draft reply", got.Response)
}

func TestGenerateTicketResponse_MissingTicket(t *testing.T) {
	uc := NewGenerateTicketResponseUseCase(&mockTicketRepo{}, &mockGenerator{}, sanitizer.New(), logger.NewLogger())

	_, err := uc.Execute(context.Background(), GenerateTicketResponseCommand{TicketID: 99})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestHealthCheck_ReportsGeneratorState(t *testing.T) {
	healthy := NewHealthCheckUseCase(&mockGenerator{}).Execute(context.Background())
	assert.True(t, healthy.Healthy)
	assert.Equal(t, "groq", healthy.Service)
	assert.Equal(t, "test-model", healthy.Model)

	down := NewHealthCheckUseCase(&mockGenerator{
		healthFn: func(ctx context.Context) bool { return false },
	}).Execute(context.Background())
	assert.False(t, down.Healthy)
}
