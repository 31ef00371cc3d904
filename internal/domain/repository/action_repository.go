package repository

import (
	"context"

	"kindred/internal/domain/entity"
	"kindred/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for action persistence.
var (
	// ErrActionNotFound is returned when a user action is not found.
	ErrActionNotFound = errors.New("action not found")
)

// ActionRepository defines the interface for user-action database operations.
type ActionRepository interface {
	// Create persists a new user action.
	Create(ctx context.Context, action *entity.UserAction) error

	// FindByUser retrieves a user's actions with posts and NGOs preloaded,
	// newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserAction, error)
}
