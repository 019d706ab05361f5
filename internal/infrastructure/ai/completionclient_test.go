package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedConfig "helpdesk/internal/shared/config"
	"helpdesk/internal/shared/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *CompletionClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewCompletionClient(&sharedConfig.AIConfig{
		BaseURL:        srv.URL,
		APIKey:         "test-key",
		Model:          "test-model",
		TimeoutSeconds: 5,
	}, logger.NewLogger())
}

func completionBody(content string) string {
	quoted, _ := json.Marshal(content)
	return `{"choices":[{"message":{"role":"assistant","content":` + string(quoted) + `}}]}`
}

func TestCompletionClient_GenerateTicketResponse(t *testing.T) {
	var gotAuth string
	var gotReq chatRequest

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionBody("  Tente reiniciar o roteador.  ")))
	})

	got := client.GenerateTicketResponse(context.Background(), "Sem internet", "O wifi caiu hoje cedo")
	assert.Equal(t, "Tente reiniciar o roteador.", got)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "test-model", gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Contains(t, gotReq.Messages[1].Content, "**TÍTULO:** Sem internet")
	assert.Contains(t, gotReq.Messages[1].Content, "**DESCRIÇÃO:** O wifi caiu hoje cedo")
	assert.Equal(t, 1024, gotReq.MaxTokens)
}

func TestCompletionClient_GenerateFallsBackOnUpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"boom"}}`, http.StatusInternalServerError)
	})

	got := client.GenerateTicketResponse(context.Background(), "Sem internet", "O wifi caiu hoje cedo")
	assert.True(t, strings.HasPrefix(got, "Obrigado por entrar em contato conosco."))
}

func TestCompletionClient_GenerateFallsBackOnBlankContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionBody("   ")))
	})

	got := client.GenerateTicketResponse(context.Background(), "Sem internet", "O wifi caiu hoje cedo")
	assert.Equal(t, fallbackResponse, got)
}

func TestCompletionClient_HealthCheck(t *testing.T) {
	var gotReq chatRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Write([]byte(completionBody("ok")))
	})

	assert.True(t, client.HealthCheck(context.Background()))
	assert.Equal(t, 10, gotReq.MaxTokens)
}

func TestCompletionClient_HealthCheckUnhealthy(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	})

	assert.False(t, client.HealthCheck(context.Background()))
}

func TestCompletionClient_HealthCheckBlankContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionBody("")))
	})

	assert.False(t, client.HealthCheck(context.Background()))
}
