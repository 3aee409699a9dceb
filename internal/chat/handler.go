package chat

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler is the http api layer for the ChatRouterService.
type Handler struct {
	service Service
}

// NewHandler creates a new handler injecting the service.
func NewHandler(s Service) *Handler {
	return &Handler{
		service: s,
	}
}

// RegisterRoutes attaches the chat endpoint to the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
}

// MethodNotAllowed is the chi handler for requests with the wrong method.
// The contract wants a JSON error body, not chi's default empty 405.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
}

// --- DTOs ---

// chatRequest is the DTO for what the client sends.
type chatRequest struct {
	Messages []*ChatMessage `json:"messages"`
}

// chatResponse is the DTO for the single generated reply.
type chatResponse struct {
	Message string `json:"message"`
}

// --- Handlers ---

// handleChat validates the inbound request, invokes the router and maps the
// outcome to an HTTP response.
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Messages == nil {
		// A body that does not decode and a body without a messages array
		// are the same failure to the caller.
		writeError(w, http.StatusBadRequest, "Invalid request body: messages array required")
		return
	}

	reply, err := h.service.Chat(r.Context(), req.Messages)
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = "Could not process chat"
		}
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Message: reply})
}

// writeJSON is a helper function for sending json responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError is a helper for sending a standardized json error.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
