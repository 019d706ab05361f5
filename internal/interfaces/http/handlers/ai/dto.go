package ai

import (
	"time"

	"helpdesk/internal/application/ai/usecases"
)

type GenerateResponseRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"required,min=1,max=2000"`
}

type GenerateResponseOut struct {
	Response     string    `json:"response"`
	ResponseHTML string    `json:"response_html,omitempty"`
	UsedModel    string    `json:"used_model"`
	GeneratedAt  time.Time `json:"generated_at"`
}

func NewGenerateResponseOut(result *usecases.GenerateResponseResult) GenerateResponseOut {
	return GenerateResponseOut{
		Response:     result.Response,
		ResponseHTML: result.ResponseHTML,
		UsedModel:    result.UsedModel,
		GeneratedAt:  result.GeneratedAt,
	}
}
