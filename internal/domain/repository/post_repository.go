package repository

import (
	"context"

	"kindred/internal/domain/entity"
	"kindred/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for post persistence.
var (
	// ErrPostNotFound is returned when a post is not found.
	ErrPostNotFound = errors.New("post not found")
)

// PostRepository defines the interface for action-feed database operations.
type PostRepository interface {
	// FindByID retrieves a single post with its NGO preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// ListFeed retrieves the most recent posts with NGOs preloaded,
	// newest first. limit <= 0 means no limit.
	ListFeed(ctx context.Context, limit int) ([]*entity.Post, error)

	// ListByNGO retrieves every post published for one NGO, newest first.
	ListByNGO(ctx context.Context, ngoID uuid.UUID) ([]*entity.Post, error)

	// Create persists a new post.
	Create(ctx context.Context, post *entity.Post) error
}
