package entity

import (
	"time"

	"github.com/google/uuid"
)

// NGOMatch represents the affinity between exactly one profile and exactly
// one NGO. At most one record exists per (user, NGO) pair; the scoring batch
// overwrites MatchScore (last write wins) and must never touch IsAdopted,
// which is owned by the adopt toggle alone.
type NGOMatch struct {
	UserID     uuid.UUID `json:"user_id"`
	NGOID      uuid.UUID `json:"ngo_id"`
	MatchScore float64   `json:"match_score"` // Conventionally 0-100.
	IsAdopted  bool      `json:"is_adopted"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// RankedMatch is a match joined with the NGO it points at, as served by the
// recommendation read path.
type RankedMatch struct {
	NGOMatch
	NGO *NGO `json:"ngo"`
}
