// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"kindred/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
// Identity is external: the profile ID is the subject of the bearer token, and
// a profile row is created the first time the owner writes to it.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	UpsertProfile(ctx context.Context, userID uuid.UUID, input *UpsertProfileInput) (*entity.Profile, error)
	UpdateInterests(ctx context.Context, userID uuid.UUID, interests []string) (*entity.Profile, error)
}

// --- Input DTOs ---

// UpsertProfileInput defines the data required to create or update a profile.
type UpsertProfileInput struct {
	Username  string   `json:"username"`
	FullName  string   `json:"full_name"`
	AvatarURL string   `json:"avatar_url"`
	Bio       string   `json:"bio"`
	Interests []string `json:"interests"`
}
