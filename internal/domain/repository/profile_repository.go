// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"kindred/internal/domain/entity"
	"kindred/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for profile persistence.
var (
	// ErrProfileNotFound is returned when a profile is not found.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrDuplicateProfile is returned when creating a profile whose ID already exists.
	ErrDuplicateProfile = errors.New("profile already exists")
)

// ProfileRepository defines the interface for profile-related database operations.
type ProfileRepository interface {
	// FindByID retrieves a single profile by its identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// List retrieves every profile, ordered by identifier for stable iteration.
	List(ctx context.Context) ([]*entity.Profile, error)

	// Create persists a new profile.
	Create(ctx context.Context, profile *entity.Profile) error

	// Update overwrites the mutable fields of an existing profile.
	Update(ctx context.Context, profile *entity.Profile) error

	// IncrementImpactScore adds delta to a profile's impact score.
	// The score is monotonically non-decreasing, so delta must be >= 0.
	IncrementImpactScore(ctx context.Context, id uuid.UUID, delta int) error
}
