package service

import (
	"context"
)

// Recompute scopes carried by a MatchEvent.
const (
	MatchScopeUser = "user" // Rescore one user against the whole catalog.
	MatchScopeAll  = "all"  // Full cross-product recompute, scheduled/administrative.
)

// MatchEvent asks the match worker to recompute affinity scores. A sign-in
// publishes a user-scoped event; scheduled runs publish an all-scoped one.
type MatchEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	Scope     string `json:"scope"`                // MatchScopeUser or MatchScopeAll
	UserID    string `json:"user_id,omitempty"`    // Required when Scope is MatchScopeUser
	Reason    string `json:"reason,omitempty"`     // Trigger description ("sign-in", "scheduled", ...)
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMatchEvent publishes a recompute request for async processing
	PublishMatchEvent(ctx context.Context, event *MatchEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
