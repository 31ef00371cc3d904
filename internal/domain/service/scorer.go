package service

import (
	"kindred/internal/domain/entity"
)

// MatchScorer computes the affinity score between one profile and one NGO.
//
// Implementations must be pure and deterministic: the same (profile, NGO)
// inputs always yield the same score, in the range [0, 100]. Missing optional
// fields degrade to defaults rather than errors; in particular a profile with
// no interest tags receives the implementation's documented baseline score for
// every NGO instead of a silent zero.
type MatchScorer interface {
	Score(profile *entity.Profile, ngo *entity.NGO) float64
}
