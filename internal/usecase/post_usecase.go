package usecase

import (
	"context"

	"kindred/internal/domain/entity"

	"github.com/google/uuid"
)

// PostUsecase defines the interface for the action feed use cases.
// Reading the feed is public; publishing posts is administrative.
type PostUsecase interface {
	GetPost(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// ListFeed returns the most recent posts across all NGOs, newest first.
	ListFeed(ctx context.Context, limit int) ([]*entity.Post, error)

	// ListByNGO returns every post published for one NGO, newest first.
	ListByNGO(ctx context.Context, ngoID uuid.UUID) ([]*entity.Post, error)

	CreatePost(ctx context.Context, input *CreatePostInput) (*entity.Post, error)
}

// --- Input DTOs ---

// CreatePostInput defines the data required to publish a feed post.
type CreatePostInput struct {
	NGOID       uuid.UUID      `json:"ngo_id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	ImageURL    string         `json:"image_url"`
	PostType    string         `json:"post_type"`
	ActionData  map[string]any `json:"action_data"`
}
