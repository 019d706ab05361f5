package usecases

import (
	"context"
	"time"

	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/sanitizer"
)

type GenerateResponseCommand struct {
	Title       string
	Description string
}

type GenerateResponseResult struct {
	Response     string
	ResponseHTML string
	UsedModel    string
	GeneratedAt  time.Time
}

type GenerateResponseUseCase struct {
	generator ResponseGenerator
	sanitizer *sanitizer.Sanitizer
	logger    logger.Interface
}

func NewGenerateResponseUseCase(
	generator ResponseGenerator,
	sanitizer *sanitizer.Sanitizer,
	logger logger.Interface,
) *GenerateResponseUseCase {
	return &GenerateResponseUseCase{
		generator: generator,
		sanitizer: sanitizer,
		logger:    logger,
	}
}

// Execute generates a reply draft from free-form title and description.
// The raw markdown is kept alongside a sanitized HTML rendering.
func (uc *GenerateResponseUseCase) Execute(ctx context.Context, cmd GenerateResponseCommand) (*GenerateResponseResult, error) {
	response := uc.generator.GenerateTicketResponse(ctx, cmd.Title, cmd.Description)

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
