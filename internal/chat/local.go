package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Mcjevsta1234/local-agent/internal/config"
)

// ollamaBackend talks to a locally hosted inference endpoint, typically
// Ollama. It is the cheap side of the routing decision.
type ollamaBackend struct {
	httpClient *http.Client
	url        string
	model      string
}

// NewOllamaBackend is the constructor for the local backend client.
func NewOllamaBackend(cfg *config.Config) ChatBackend {
	return &ollamaBackend{
		// No explicit timeout: a hung local model hangs the request, the
		// transport default is the only bound.
		httpClient: &http.Client{},
		url:        cfg.LocalURL,
		model:      cfg.LocalModel,
	}
}

func (b *ollamaBackend) Name() string { return "ollama" }

// localChatRequest is the payload the local endpoint expects.
type localChatRequest struct {
	Model    string         `json:"model"`
	Messages []*ChatMessage `json:"messages"`
	Stream   bool           `json:"stream"`
}

// Send implements ChatBackend against the configured local endpoint.
func (b *ollamaBackend) Send(ctx context.Context, history []*ChatMessage) (string, error) {
	if b.url == "" {
		return "", &ConfigurationError{Missing: "local model URL"}
	}

	reqBody, err := json.Marshal(localChatRequest{
		Model:    b.model,
		Messages: history,
		Stream:   false,
	})
	if err != nil {
		return "", fmt.Errorf("could not marshal local chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", b.url, bytes.NewBuffer(reqBody))
	if err != nil {
		return "", fmt.Errorf("could not create local chat http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("local chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &BackendHTTPError{
			Backend:    b.Name(),
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("could not read local chat response: %w", err)
	}

	// Ollama native shape first, then the OpenAI-compatible one.
	return extractContent(body, "message.content", "choices.0.message.content"), nil
}
