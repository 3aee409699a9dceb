package chat

import "fmt"

// ConfigurationError means a backend was asked to send a request without the
// configuration it needs. It is raised before any network call is attempted.
type ConfigurationError struct {
	// Missing names the absent setting, e.g. "local model URL".
	Missing string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing configuration: %s", e.Missing)
}

// BackendHTTPError means a backend answered with a non-success status.
// The router never retries or falls back, so this propagates to the caller.
type BackendHTTPError struct {
	// Backend is the name of the backend that failed, e.g. "ollama".
	Backend string
	// StatusCode is the numeric HTTP status.
	StatusCode int
	// Status is the status line text, e.g. "429 Too Many Requests".
	Status string
	// Body is the response body, when it was read before failing.
	Body string
}

func (e *BackendHTTPError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s backend returned status %d (%s): %s", e.Backend, e.StatusCode, e.Status, e.Body)
	}
	return fmt.Sprintf("%s backend returned status %d (%s)", e.Backend, e.StatusCode, e.Status)
}
