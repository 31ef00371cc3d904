package repository

import (
	"context"

	"kindred/internal/domain/entity"
	"kindred/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for match persistence.
var (
	// ErrMatchNotFound is returned when no affinity record exists for a (user, NGO) pair.
	ErrMatchNotFound = errors.New("match not found")
)

// ScoreUpdate is one entry of a scoring batch headed for the affinity store.
type ScoreUpdate struct {
	UserID uuid.UUID
	NGOID  uuid.UUID
	Score  float64
}

// MatchRepository is the affinity store: durable keyed storage for NGOMatch
// records. It owns the (user_id, ngo_id) uniqueness invariant.
type MatchRepository interface {
	// UpsertScores applies a scoring batch atomically per row: an existing
	// (user, NGO) record gets its score and updated timestamp overwritten,
	// a missing one is inserted with is_adopted=false. The conflict is
	// resolved inside the database, never by read-then-write, so concurrent
	// batches cannot violate uniqueness or lose updates. is_adopted is never
	// written on conflict. Returns the number of rows affected.
	UpsertScores(ctx context.Context, batch []ScoreUpdate) (int64, error)

	// FindRankedMatchesByUser returns the user's matches joined with NGO
	// attributes, ordered by match_score descending with ties broken by
	// ngo_id ascending. limit <= 0 means no limit. A user with no records
	// yields an empty slice, not an error.
	FindRankedMatchesByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.RankedMatch, error)

	// FindMatch retrieves the unique record for a (user, NGO) pair.
	FindMatch(ctx context.Context, userID, ngoID uuid.UUID) (*entity.NGOMatch, error)

	// SetAdopted flips is_adopted on the unique record for the pair.
	// Returns ErrMatchNotFound if the pair has never been scored; it never
	// creates a record.
	SetAdopted(ctx context.Context, userID, ngoID uuid.UUID, adopted bool) error

	// CountByUser returns the number of affinity records for one user.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
