package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sharedConfig "helpdesk/internal/shared/config"
	"helpdesk/internal/shared/logger"
)

const systemPrompt = "Você é um assistente de suporte técnico especializado. " +
	"Responda de forma profissional, clara e útil em português brasileiro. " +
	"Forneça soluções práticas e, quando necessário, sugira próximos passos."

const supportPromptTemplate = `
Analise o seguinte ticket de suporte e forneça uma resposta útil e profissional:

**TÍTULO:** %s

**DESCRIÇÃO:** %s

Por favor, forneça:
1. Uma análise do problema reportado
2. Possíveis soluções ou passos para resolver
3. Informações adicionais que podem ser úteis
4. Se necessário, sugira quando escalar para suporte humano

Mantenha a resposta concisa mas completa, e use um tom profissional e empático.
`

const fallbackResponse = `Obrigado por entrar em contato conosco.

Recebemos seu ticket e nossa equipe está analisando sua solicitação. Retornaremos com uma resposta personalizada em breve.

Enquanto isso, você pode:
- Verificar nossa base de conhecimento para soluções rápidas
- Entrar em contato pelo chat se for urgente
- Aguardar o retorno de nossa equipe de suporte

Agradecemos sua paciência!`

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	TopP        float64       `json:"top_p,omitempty"`
	Stream      bool          `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// CompletionClient talks to an OpenAI-compatible chat completions endpoint.
type CompletionClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     logger.Interface
}

func NewCompletionClient(cfg *sharedConfig.AIConfig, log logger.Interface) *CompletionClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &CompletionClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: timeout},
		logger:     log,
	}
}

// Model returns the configured model identifier.
func (c *CompletionClient) Model() string {
	return c.model
}

// GenerateTicketResponse produces a draft reply for a ticket. Upstream
// failures and blank completions degrade to a static fallback message
// instead of surfacing an error.
func (c *CompletionClient) GenerateTicketResponse(ctx context.Context, title, description string) string {
	prompt := fmt.Sprintf(supportPromptTemplate, title, description)

	content, err := c.complete(ctx, chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   1024,
		TopP:        1,
	})
	if err != nil {
		c.logger.Warnw("ai response generation failed, using fallback", "error", err)
		return fallbackResponse
	}

	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return fallbackResponse
	}
	return trimmed
}

// HealthCheck issues a minimal completion to verify connectivity.
func (c *CompletionClient) HealthCheck(ctx context.Context) bool {
	content, err := c.complete(ctx, chatRequest{
		Model:     c.model,
		Messages:  []chatMessage{{Role: "user", Content: "test"}},
		MaxTokens: 10,
	})
	if err != nil {
		c.logger.Warnw("ai health check failed", "error", err)
		return false
	}
	return content != ""
}

func (c *CompletionClient) complete(ctx context.Context, payload chatRequest) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read completion response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("completion API error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("completion response contained no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
