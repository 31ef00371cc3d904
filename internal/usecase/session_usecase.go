package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SessionUsecase defines the interface for session lifecycle events.
// It is the bridge between sign-in and the asynchronous match recompute:
// reporting a sign-in publishes a user-scoped recompute event for the worker.
type SessionUsecase interface {
	// RecordSignIn publishes a recompute request for the user who just
	// authenticated. requestID is propagated for tracing.
	RecordSignIn(ctx context.Context, userID uuid.UUID, requestID string) error
}
