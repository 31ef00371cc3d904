package matching

import (
	"testing"

	"kindred/config"
	"kindred/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScorer() *TagScorer {
	cfg := &config.Config{
		Matching: &config.MatchingConfig{
			BatchSize:      config.DefaultMatchBatchSize,
			Workers:        config.DefaultMatchWorkers,
			BaselineScore:  config.DefaultMatchBaselineScore,
			CategoryWeight: config.DefaultCategoryWeight,
			KeywordWeight:  config.DefaultKeywordWeight,
			BioWeight:      config.DefaultBioWeight,
		},
	}

	scorer, ok := NewTagScorer(cfg).(*TagScorer)
	if !ok {
		panic("NewTagScorer did not return *TagScorer")
	}

	return scorer
}

func TestTagScorer_Deterministic(t *testing.T) {
	scorer := newTestScorer()
	profile := &entity.Profile{
		Interests: []string{"environment", "wildlife"},
		Bio:       "Hiker and environment volunteer.",
	}
	ngo := &entity.NGO{
		Name:        "Green Horizon",
		Description: "Protecting wildlife habitats and the environment.",
		Category:    entity.CategoryEnvironment,
	}

	first := scorer.Score(profile, ngo)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, scorer.Score(profile, ngo))
	}
}

func TestTagScorer_RangeBounds(t *testing.T) {
	scorer := newTestScorer()

	tests := []struct {
		name    string
		profile *entity.Profile
		ngo     *entity.NGO
	}{
		{
			name:    "no overlap at all",
			profile: &entity.Profile{Interests: []string{"chess"}},
			ngo:     &entity.NGO{Name: "Food Bank", Category: entity.CategoryPoverty},
		},
		{
			name: "full overlap",
			profile: &entity.Profile{
				Interests: []string{"environment"},
				Bio:       "Lifelong environment activist.",
			},
			ngo: &entity.NGO{
				Name:        "Environment First",
				Description: "Environment restoration projects.",
				Category:    entity.CategoryEnvironment,
			},
		},
		{
			name:    "empty interests",
			profile: &entity.Profile{},
			ngo:     &entity.NGO{Name: "Anything", Category: entity.CategoryEducation},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := scorer.Score(tt.profile, tt.ngo)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 100.0)
		})
	}
}

func TestTagScorer_EmptyInterestsGetBaseline(t *testing.T) {
	scorer := newTestScorer()
	profile := &entity.Profile{Interests: nil}

	ngos := []*entity.NGO{
		{Name: "Green Horizon", Category: entity.CategoryEnvironment},
		{Name: "Art For All", Category: entity.CategoryArtsCulture},
	}

	for _, ngo := range ngos {
		assert.InDelta(t, config.DefaultMatchBaselineScore, scorer.Score(profile, ngo), 0.001)
	}
}

func TestTagScorer_CategoryAffinityRanksHigher(t *testing.T) {
	scorer := newTestScorer()
	profile := &entity.Profile{
		Interests: []string{"environment", "climate"},
	}
	environmentNGO := &entity.NGO{
		Name:        "Green Horizon",
		Description: "Climate and environment work.",
		Category:    entity.CategoryEnvironment,
	}
	artsNGO := &entity.NGO{
		Name:        "Art For All",
		Description: "Community theatre and galleries.",
		Category:    entity.CategoryArtsCulture,
	}

	environmentScore := scorer.Score(profile, environmentNGO)
	artsScore := scorer.Score(profile, artsNGO)
	require.Greater(t, environmentScore, artsScore)
}

func TestTagScorer_TagNormalization(t *testing.T) {
	scorer := newTestScorer()
	ngo := &entity.NGO{
		Name:     "Paws and Claws",
		Category: entity.CategoryAnimalWelfare,
	}

	spaced := &entity.Profile{Interests: []string{"Animal Welfare"}}
	hyphenated := &entity.Profile{Interests: []string{"animal-welfare"}}

	assert.Equal(t, scorer.Score(hyphenated, ngo), scorer.Score(spaced, ngo))
	assert.Greater(t, scorer.Score(spaced, ngo), 0.0)
}

func TestTagScorer_BioMention(t *testing.T) {
	scorer := newTestScorer()
	ngo := &entity.NGO{
		Name:     "Teach Forward",
		Category: entity.CategoryEducation,
	}

	withBio := &entity.Profile{
		Interests: []string{"education"},
		Bio:       "Former teacher, passionate about education access.",
	}
	withoutBio := &entity.Profile{
		Interests: []string{"education"},
	}

	assert.Greater(t, scorer.Score(withBio, ngo), scorer.Score(withoutBio, ngo))
}

func TestTagScorer_NilInputs(t *testing.T) {
	scorer := newTestScorer()

	assert.Zero(t, scorer.Score(nil, &entity.NGO{}))
	assert.Zero(t, scorer.Score(&entity.Profile{}, nil))
}
