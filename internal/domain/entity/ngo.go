package entity

import (
	"time"

	"github.com/google/uuid"
)

// NGOCategory is the fixed set of catalog categories. An NGO may also carry
// no category at all (CategoryUnset) while its listing is being completed.
type NGOCategory string

const (
	CategoryUnset                NGOCategory = ""
	CategoryEducation            NGOCategory = "education"
	CategoryHealthcare           NGOCategory = "healthcare"
	CategoryEnvironment          NGOCategory = "environment"
	CategoryAnimalWelfare        NGOCategory = "animal-welfare"
	CategoryHumanRights          NGOCategory = "human-rights"
	CategoryPoverty              NGOCategory = "poverty"
	CategoryDisasterRelief       NGOCategory = "disaster-relief"
	CategoryArtsCulture          NGOCategory = "arts-culture"
	CategoryCommunityDevelopment NGOCategory = "community-development"
)

// KnownCategories lists every valid non-empty category, used for input validation.
func KnownCategories() []NGOCategory {
	return []NGOCategory{
		CategoryEducation,
		CategoryHealthcare,
		CategoryEnvironment,
		CategoryAnimalWelfare,
		CategoryHumanRights,
		CategoryPoverty,
		CategoryDisasterRelief,
		CategoryArtsCulture,
		CategoryCommunityDevelopment,
	}
}

// Valid reports whether the category is unset or one of the known values.
func (c NGOCategory) Valid() bool {
	if c == CategoryUnset {
		return true
	}
	for _, known := range KnownCategories() {
		if c == known {
			return true
		}
	}

	return false
}

// NGO represents one organization in the catalog. Records are maintained by
// administrative users and are read-only from the matcher's perspective.
type NGO struct {
	ID            uuid.UUID      `json:"id"`
	Name          string         `json:"name"` // Non-empty.
	Description   string         `json:"description"`
	LogoURL       string         `json:"logo_url"`
	CoverImageURL string         `json:"cover_image_url"`
	Category      NGOCategory    `json:"category"`
	Location      string         `json:"location"`       // Free text, may be empty.
	ImpactMetrics map[string]any `json:"impact_metrics"` // Arbitrary structured metrics.
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
