package chat

//go:generate mockgen -destination=./clients_mock_test.go -package=chat -source=clients.go ChatBackend

import "context"

// ChatBackend is the contract for anything that can answer a conversation.
// The router only ever talks to this interface; the local and remote clients
// are the two implementations.
type ChatBackend interface {
	// Name identifies the backend, e.g. "ollama" or "together".
	Name() string

	// Send submits the full conversation and returns the generated reply
	// text. An unrecognizable response shape yields the empty string, not
	// an error. Failures are *ConfigurationError or *BackendHTTPError.
	Send(ctx context.Context, history []*ChatMessage) (string, error)
}
