package usecases

import "context"

// ResponseGenerator produces support-ticket reply drafts from a
// completion API.
type ResponseGenerator interface {
	GenerateTicketResponse(ctx context.Context, title, description string) string
	HealthCheck(ctx context.Context) bool
	Model() string
}
