// Package matching contains the deterministic affinity scoring engine.
package matching

import (
	"strings"

	"kindred/config"
	"kindred/internal/domain/entity"
	"kindred/internal/domain/service"
)

const maxScore = 100.0

// TagScorer scores a (profile, NGO) pair by weighted overlap between the
// profile's interest tags and the NGO's category, name and description, with
// a bio bonus when the donor's bio already mentions the NGO's cause.
//
// The scorer is pure: no clock, no randomness, no I/O. Re-running a batch
// with unchanged inputs always reproduces the same scores.
type TagScorer struct {
	baseline       float64
	categoryWeight float64
	keywordWeight  float64
	bioWeight      float64
}

// NewTagScorer builds a TagScorer from the matching section of the config.
func NewTagScorer(cfg *config.Config) service.MatchScorer {
	return &TagScorer{
		baseline:       cfg.Matching.BaselineScore,
		categoryWeight: cfg.Matching.CategoryWeight,
		keywordWeight:  cfg.Matching.KeywordWeight,
		bioWeight:      cfg.Matching.BioWeight,
	}
}

// Score computes the affinity between a profile and an NGO in [0, 100].
// A profile with no interest tags receives the configured baseline for every
// NGO so new users still get a ranked (if flat) recommendation list.
func (s *TagScorer) Score(profile *entity.Profile, ngo *entity.NGO) float64 {
	if profile == nil || ngo == nil {
		return 0
	}

	interests := normalizeTags(profile.Interests)
	if len(interests) == 0 {
		return clamp(s.baseline)
	}

	score := 0.0
	category := normalizeTag(string(ngo.Category))
	haystack := strings.ToLower(ngo.Name + " " + ngo.Description)

	// Category component: full weight when any interest tag names the
	// NGO's category.
	if category != "" {
		for _, tag := range interests {
			if tag == category {
				score += s.categoryWeight

				break
			}
		}
	}

	// Keyword component: proportional to the share of interest tags that
	// appear in the NGO's name or description.
	matched := 0
	for _, tag := range interests {
		if containsTag(haystack, tag) {
			matched++
		}
	}
	score += s.keywordWeight * float64(matched) / float64(len(interests))

	// Bio component: the donor already writes about this cause.
	if category != "" && containsTag(strings.ToLower(profile.Bio), category) {
		score += s.bioWeight
	}

	return clamp(score)
}

// normalizeTag lowercases a tag and canonicalizes separators so that
// "Animal Welfare" and "animal-welfare" compare equal.
func normalizeTag(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))

	return strings.ReplaceAll(tag, " ", "-")
}

func normalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		if t := normalizeTag(tag); t != "" {
			normalized = append(normalized, t)
		}
	}

	return normalized
}

// containsTag reports whether the haystack mentions the tag, matching both
// the hyphenated and the spaced form.
func containsTag(haystack, tag string) bool {
	if strings.Contains(haystack, tag) {
		return true
	}

	return strings.Contains(haystack, strings.ReplaceAll(tag, "-", " "))
}

func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > maxScore {
		return maxScore
	}

	return score
}
