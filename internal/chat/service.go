package chat

//go:generate mockgen -destination=./service_mock_test.go -package=chat -source=service.go Service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/Mcjevsta1234/local-agent/internal/config"
)

// Service defines the business logic for the ChatRouterService: pick one
// backend for a conversation and return its reply.
type Service interface {
	// Chat routes the conversation to exactly one backend and returns the
	// generated reply text. There is no retry and no fallback: if the
	// chosen backend fails, the failure propagates unchanged.
	Chat(ctx context.Context, history []*ChatMessage) (string, error)
}

// service is the concrete implementation of the Service interface.
type service struct {
	local           ChatBackend // cheap, locally hosted backend
	remote          ChatBackend // metered, hosted backend
	threshold       int         // character-count cutoff for going local
	localConfigured bool        // whether a local endpoint exists at all
}

// NewService is the constructor for the router.
func NewService(cfg *config.Config, local, remote ChatBackend) Service {
	return &service{
		local:           local,
		remote:          remote,
		threshold:       cfg.LocalThreshold,
		localConfigured: cfg.LocalConfigured(),
	}
}

// routingDecision is the ephemeral, per-request outcome of the cost
// heuristic. It only exists long enough to be acted on and logged.
type routingDecision struct {
	id      uuid.UUID
	backend ChatBackend
	length  int
	reason  string
}

// decide applies the cost heuristic. The proxy length is a crude
// character-count approximation of token count, compared strictly against
// the threshold, so a conversation exactly at the threshold goes remote.
func (s *service) decide(history []*ChatMessage) routingDecision {
	decision := routingDecision{
		id:     uuid.New(),
		length: proxyLength(history),
	}

	if decision.length >= s.threshold {
		decision.backend = s.remote
		decision.reason = "conversation at or above local threshold"
		return decision
	}
	if !s.localConfigured {
		decision.backend = s.remote
		decision.reason = "no local backend configured"
		return decision
	}

	decision.backend = s.local
	decision.reason = "conversation below local threshold"
	return decision
}

// Chat implements the Service interface.
func (s *service) Chat(ctx context.Context, history []*ChatMessage) (string, error) {
	decision := s.decide(history)
	log.Printf("routing decision %s: backend=%s length=%d reason=%q",
		decision.id, decision.backend.Name(), decision.length, decision.reason)

	return decision.backend.Send(ctx, history)
}
