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

// togetherEndpoint is fixed: the remote backend is always the Together
// chat-completions API.
const togetherEndpoint = "https://api.together.xyz/v1/chat/completions"

// Sampling parameters for the remote backend are deliberately not
// configurable.
const (
	remoteTemperature = 0.2
	remoteMaxTokens   = 1024
)

// togetherBackend talks to the hosted Together API. It is the metered side
// of the routing decision.
type togetherBackend struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	model      string
}

// NewTogetherBackend is the constructor for the remote backend client.
func NewTogetherBackend(cfg *config.Config) ChatBackend {
	return &togetherBackend{
		httpClient: &http.Client{},
		endpoint:   togetherEndpoint,
		apiKey:     cfg.TogetherAPIKey,
		model:      cfg.RemoteModel,
	}
}

func (b *togetherBackend) Name() string { return "together" }

// remoteChatRequest is the payload the Together API expects.
type remoteChatRequest struct {
	Model       string         `json:"model"`
	Messages    []*ChatMessage `json:"messages"`
	Temperature float64        `json:"temperature"`
	MaxTokens   int            `json:"max_tokens"`
}

// Send implements ChatBackend against the Together API.
func (b *togetherBackend) Send(ctx context.Context, history []*ChatMessage) (string, error) {
	if b.apiKey == "" {
		return "", &ConfigurationError{Missing: "Together API key"}
	}

	reqBody, err := json.Marshal(remoteChatRequest{
		Model:       b.model,
		Messages:    history,
		Temperature: remoteTemperature,
		MaxTokens:   remoteMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("could not marshal remote chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", b.endpoint, bytes.NewBuffer(reqBody))
	if err != nil {
		return "", fmt.Errorf("could not create remote chat http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+b.apiKey)

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("remote chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Read the body fully so the error keeps whatever diagnostic
		// detail the API sent back.
		body, _ := io.ReadAll(resp.Body)
		return "", &BackendHTTPError{
			Backend:    b.Name(),
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(body),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("could not read remote chat response: %w", err)
	}

	return extractContent(body, "choices.0.message.content"), nil
}
