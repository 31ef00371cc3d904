package usecase

import (
	"context"

	"kindred/internal/domain/entity"

	"github.com/google/uuid"
)

// MatchUsecase defines the interface for affinity scoring and recommendation use cases
type MatchUsecase interface {
	// RecomputeForUser rescores one user against the whole NGO catalog and
	// upserts the results in chunks. Returns the number of pairs scored.
	RecomputeForUser(ctx context.Context, userID uuid.UUID) (int, error)

	// RecomputeAll rescores every profile against every NGO. Partial progress
	// persists when the context is cancelled between chunks; the run is
	// idempotent and can simply be re-triggered. Returns the number of pairs
	// scored before stopping.
	RecomputeAll(ctx context.Context) (int, error)

	// GetRankedMatches returns the user's recommendation list, highest score
	// first. limit <= 0 means no limit.
	GetRankedMatches(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.RankedMatch, error)

	// SetAdopted flips the adoption flag on an already-scored (user, NGO)
	// pair and returns the updated record.
	SetAdopted(ctx context.Context, userID, ngoID uuid.UUID, adopted bool) (*entity.NGOMatch, error)
}
