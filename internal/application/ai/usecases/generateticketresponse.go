package usecases

import (
	"context"
	"fmt"
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/sanitizer"
)

type GenerateTicketResponseCommand struct {
	TicketID uint
}

type GenerateTicketResponseUseCase struct {
	ticketRepo ticket.Repository
	generator  ResponseGenerator
	sanitizer  *sanitizer.Sanitizer
	logger     logger.Interface
}

func NewGenerateTicketResponseUseCase(
	ticketRepo ticket.Repository,
	generator ResponseGenerator,
	sanitizer *sanitizer.Sanitizer,
	logger logger.Interface,
) *GenerateTicketResponseUseCase {
	return &GenerateTicketResponseUseCase{
		ticketRepo: ticketRepo,
		generator:  generator,
		sanitizer:  sanitizer,
		logger:     logger,
	}
}

// Execute generates a reply draft for an existing ticket. Any
// authenticated caller may do this for any ticket id; ownership is
// deliberately not consulted here.
func (uc *GenerateTicketResponseUseCase) Execute(ctx context.Context, cmd GenerateTicketResponseCommand) (*GenerateResponseResult, error) {
	existing, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("Not found")
	}

	response := uc.generator.GenerateTicketResponse(ctx, existing.Title(), existing.Description())

	html, err := uc.sanitizer.RenderMarkdown(response)
	if err != nil {
		uc.logger.Warnw("failed to render response markdown", "error", err)
		html = ""
	}

	return &GenerateResponseResult{
		Response:     response,
		ResponseHTML: html,
		UsedModel:    uc.generator.Model(),
		GeneratedAt:  time.Now(),
	}, nil
}
