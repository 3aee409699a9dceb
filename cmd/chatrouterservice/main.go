package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Mcjevsta1234/local-agent/internal/chat"
	"github.com/Mcjevsta1234/local-agent/internal/config"
)

// main is the entry point for the ChatRouterService.
func main() {
	// Build the configuration once and pass it down. Missing credentials
	// are not fatal here: the unconfigured backend only fails if a request
	// is actually routed to it.
	cfg := config.Load()

	if cfg.LocalConfigured() {
		log.Printf("local backend configured at %s (model %s)", cfg.LocalURL, cfg.LocalModel)
	} else {
		log.Printf("no local backend configured, all traffic goes remote")
	}

	// This is the dependency injection part, done manually.
	// We create each layer and pass it to the next.

	// Backend clients.
	localBackend := chat.NewOllamaBackend(cfg)
	remoteBackend := chat.NewTogetherBackend(cfg)

	// Routing service.
	chatService := chat.NewService(cfg, localBackend, remoteBackend)

	// API layer. Takes the service.
	chatHandler := chat.NewHandler(chatService)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Wrong-method requests still get a JSON error body.
	r.MethodNotAllowed(chat.MethodNotAllowed)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ChatRouterService OK"))
	})

	// Register the API routes from the handler ( /chat )
	chatHandler.RegisterRoutes(r)

	log.Printf("ChatRouterService starting on port %s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatalf("Could not start server: %v", err)
	}
}
