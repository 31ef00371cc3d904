package impl

import (
	"bytes"
	"context"
	"log/slog"
	"sort"
	"sync"
	"testing"

	"kindred/config"
	"kindred/internal/domain/entity"
	domainerrors "kindred/internal/domain/errors"
	"kindred/internal/domain/repository"
	mockRepo "kindred/internal/mocks/repository"
	mockSvc "kindred/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeMatchStore is an in-memory MatchRepository with real upsert semantics:
// one record per (user, ngo) pair, score overwritten on conflict, is_adopted
// untouched by upserts. It also records every batch it receives so tests can
// assert chunking behavior.
type fakeMatchStore struct {
	mu      sync.Mutex
	records map[[2]uuid.UUID]*entity.NGOMatch
	batches [][]repository.ScoreUpdate
}

func newFakeMatchStore() *fakeMatchStore {
	return &fakeMatchStore{records: make(map[[2]uuid.UUID]*entity.NGOMatch)}
}

func (f *fakeMatchStore) UpsertScores(_ context.Context, batch []repository.ScoreUpdate) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.batches = append(f.batches, batch)
	for _, update := range batch {
		key := [2]uuid.UUID{update.UserID, update.NGOID}
		if existing, ok := f.records[key]; ok {
			existing.MatchScore = update.Score

			continue
		}
		f.records[key] = &entity.NGOMatch{
			UserID:     update.UserID,
			NGOID:      update.NGOID,
			MatchScore: update.Score,
			IsAdopted:  false,
		}
	}

	return int64(len(batch)), nil
}

func (f *fakeMatchStore) FindRankedMatchesByUser(_ context.Context, userID uuid.UUID, limit int) ([]*entity.RankedMatch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var ranked []*entity.RankedMatch
	for key, match := range f.records {
		if key[0] != userID {
			continue
		}
		copied := *match
		ranked = append(ranked, &entity.RankedMatch{NGOMatch: copied})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].MatchScore != ranked[j].MatchScore {
			return ranked[i].MatchScore > ranked[j].MatchScore
		}

		return bytes.Compare(ranked[i].NGOID[:], ranked[j].NGOID[:]) < 0
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked, nil
}

func (f *fakeMatchStore) FindMatch(_ context.Context, userID, ngoID uuid.UUID) (*entity.NGOMatch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	match, ok := f.records[[2]uuid.UUID{userID, ngoID}]
	if !ok {
		return nil, repository.ErrMatchNotFound
	}
	copied := *match

	return &copied, nil
}

func (f *fakeMatchStore) SetAdopted(_ context.Context, userID, ngoID uuid.UUID, adopted bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	match, ok := f.records[[2]uuid.UUID{userID, ngoID}]
	if !ok {
		return repository.ErrMatchNotFound
	}
	match.IsAdopted = adopted

	return nil
}

func (f *fakeMatchStore) CountByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var count int64
	for key := range f.records {
		if key[0] == userID {
			count++
		}
	}

	return count, nil
}

func (f *fakeMatchStore) size() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.records)
}

// --- test fixtures ---

func testMatchConfig(batchSize int) *config.Config {
	return &config.Config{
		Matching: &config.MatchingConfig{
			BatchSize:      batchSize,
			Workers:        2,
			BaselineScore:  config.DefaultMatchBaselineScore,
			CategoryWeight: config.DefaultCategoryWeight,
			KeywordWeight:  config.DefaultKeywordWeight,
			BioWeight:      config.DefaultBioWeight,
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// interestScorer scores 100 when the NGO category matches any interest tag,
// 10 otherwise. Deterministic and order-independent.
func interestScorer(t *testing.T) *mockSvc.MockMatchScorer {
	t.Helper()

	scorer := mockSvc.NewMockMatchScorer(t)
	scorer.EXPECT().
		Score(mock.Anything, mock.Anything).
		RunAndReturn(func(profile *entity.Profile, ngo *entity.NGO) float64 {
			for _, tag := range profile.Interests {
				if tag == string(ngo.Category) {
					return 100
				}
			}

			return 10
		}).
		Maybe()

	return scorer
}

func makeProfiles(n int) []*entity.Profile {
	profiles := make([]*entity.Profile, 0, n)
	for i := 0; i < n; i++ {
		profiles = append(profiles, &entity.Profile{
			ID:        uuid.New(),
			Username:  "donor",
			Interests: []string{"environment"},
		})
	}

	return profiles
}

func makeNGOs(n int) []*entity.NGO {
	ngos := make([]*entity.NGO, 0, n)
	categories := entity.KnownCategories()
	for i := 0; i < n; i++ {
		ngos = append(ngos, &entity.NGO{
			ID:       uuid.New(),
			Name:     "NGO",
			Category: categories[i%len(categories)],
		})
	}

	return ngos
}

func TestMatchService_RecomputeForUser_ProfileNotFound(t *testing.T) {
	store := newFakeMatchStore()
	profileRepo := mockRepo.NewMockProfileRepository(t)
	ngoRepo := mockRepo.NewMockNGORepository(t)
	userID := uuid.New()

	profileRepo.EXPECT().
		FindByID(mock.Anything, userID).
		Return(nil, repository.ErrProfileNotFound)

	svc := NewMatchService(MatchServiceParams{
		MatchRepo:   store,
		ProfileRepo: profileRepo,
		NGORepo:     ngoRepo,
		Scorer:      interestScorer(t),
		Config:      testMatchConfig(100),
		Logger:      testLogger(),
	})

	scored, err := svc.RecomputeForUser(context.Background(), userID)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	assert.Zero(t, scored)
	assert.Zero(t, store.size())
}

func TestMatchService_RecomputeForUser_ScoresWholeCatalog(t *testing.T) {
	store := newFakeMatchStore()
	profileRepo := mockRepo.NewMockProfileRepository(t)
	ngoRepo := mockRepo.NewMockNGORepository(t)

	profile := makeProfiles(1)[0]
	ngos := makeNGOs(5)

	profileRepo.EXPECT().FindByID(mock.Anything, profile.ID).Return(profile, nil)
	ngoRepo.EXPECT().List(mock.Anything).Return(ngos, nil)

	svc := NewMatchService(MatchServiceParams{
		MatchRepo:   store,
		ProfileRepo: profileRepo,
		NGORepo:     ngoRepo,
		Scorer:      interestScorer(t),
		Config:      testMatchConfig(100),
		Logger:      testLogger(),
	})

	scored, err := svc.RecomputeForUser(context.Background(), profile.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, scored)
	assert.Equal(t, 5, store.size())

	// Fresh records are never adopted.
	matches, err := store.FindRankedMatchesByUser(context.Background(), profile.ID, 0)
	require.NoError(t, err)
	for _, match := range matches {
		assert.False(t, match.IsAdopted)
	}
}

func TestMatchService_Recompute_Idempotent(t *testing.T) {
	store := newFakeMatchStore()
	profileRepo := mockRepo.NewMockProfileRepository(t)
	ngoRepo := mockRepo.NewMockNGORepository(t)

	profile := makeProfiles(1)[0]
	ngos := makeNGOs(5)

	profileRepo.EXPECT().FindByID(mock.Anything, profile.ID).Return(profile, nil)
	ngoRepo.EXPECT().List(mock.Anything).Return(ngos, nil)

	svc := NewMatchService(MatchServiceParams{
		MatchRepo:   store,
		ProfileRepo: profileRepo,
		NGORepo:     ngoRepo,
		Scorer:      interestScorer(t),
		Config:      testMatchConfig(100),
		Logger:      testLogger(),
	})

	_, err := svc.RecomputeForUser(context.Background(), profile.ID)
	require.NoError(t, err)
	first, err := store.FindRankedMatchesByUser(context.Background(), profile.ID, 0)
	require.NoError(t, err)

	_, err = svc.RecomputeForUser(context.Background(), profile.ID)
	require.NoError(t, err)
	second, err := store.FindRankedMatchesByUser(context.Background(), profile.ID, 0)
	require.NoError(t, err)

	// Same pair count and same scores: re-running with unchanged inputs is a
	// no-op apart from timestamps.
	assert.Equal(t, 5, store.size())
	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].NGOID, second[i].NGOID)
		assert.Equal(t, first[i].MatchScore, second[i].MatchScore)
	}
}

func TestMatchService_AdoptionSurvivesRescoring(t *testing.T) {
	store := newFakeMatchStore()
	profileRepo := mockRepo.NewMockProfileRepository(t)
	ngoRepo := mockRepo.NewMockNGORepository(t)

	profile := makeProfiles(1)[0]
	ngos := makeNGOs(3)

	profileRepo.EXPECT().FindByID(mock.Anything, profile.ID).Return(profile, nil)
	ngoRepo.EXPECT().List(mock.Anything).Return(ngos, nil)

	svc := NewMatchService(MatchServiceParams{
		MatchRepo:   store,
		ProfileRepo: profileRepo,
		NGORepo:     ngoRepo,
		Scorer:      interestScorer(t),
		Config:      testMatchConfig(100),
		Logger:      testLogger(),
	})

	_, err := svc.RecomputeForUser(context.Background(), profile.ID)
	require.NoError(t, err)

	adopted, err := svc.SetAdopted(context.Background(), profile.ID, ngos[0].ID, true)
	require.NoError(t, err)
	assert.True(t, adopted.IsAdopted)

	// Rescoring must not clear the adoption flag.
	_, err = svc.RecomputeForUser(context.Background(), profile.ID)
	require.NoError(t, err)

	match, err := store.FindMatch(context.Background(), profile.ID, ngos[0].ID)
	require.NoError(t, err)
	assert.True(t, match.IsAdopted)
}

func TestMatchService_RecomputeAll_CrossProduct(t *testing.T) {
	store := newFakeMatchStore()
	profileRepo := mockRepo.NewMockProfileRepository(t)
	ngoRepo := mockRepo.NewMockNGORepository(t)

	profiles := makeProfiles(3)
	ngos := makeNGOs(5)

	profileRepo.EXPECT().List(mock.Anything).Return(profiles, nil)
	ngoRepo.EXPECT().List(mock.Anything).Return(ngos, nil)

	svc := NewMatchService(MatchServiceParams{
		MatchRepo:   store,
		ProfileRepo: profileRepo,
		NGORepo:     ngoRepo,
		Scorer:      interestScorer(t),
		Config:      testMatchConfig(100),
		Logger:      testLogger(),
	})

	scored, err := svc.RecomputeAll(context.Background())
	require.NoError(t, err)

	// 3 profiles x 5 NGOs: exactly 15 records, all unadopted.
	assert.Equal(t, 15, scored)
	assert.Equal(t, 15, store.size())
	for _, profile := range profiles {
		count, err := store.CountByUser(context.Background(), profile.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 5, count)
	}
}

func TestMatchService_RecomputeAll_EmptyInputs(t *testing.T) {
	store := newFakeMatchStore()
	profileRepo := mockRepo.NewMockProfileRepository(t)
	ngoRepo := mockRepo.NewMockNGORepository(t)

	profileRepo.EXPECT().List(mock.Anything).Return(nil, nil)
	ngoRepo.EXPECT().List(mock.Anything).Return(makeNGOs(2), nil)

	svc := NewMatchService(MatchServiceParams{
		MatchRepo:   store,
		ProfileRepo: profileRepo,
		NGORepo:     ngoRepo,
		Scorer:      interestScorer(t),
		Config:      testMatchConfig(100),
		Logger:      testLogger(),
	})

	scored, err := svc.RecomputeAll(context.Background())
	require.NoError(t, err)
	assert.Zero(t, scored)
	assert.Zero(t, store.size())
}

func TestMatchService_RecomputeAll_Cancelled(t *testing.T) {
	store := newFakeMatchStore()
	profileRepo := mockRepo.NewMockProfileRepository(t)
	ngoRepo := mockRepo.NewMockNGORepository(t)

	profileRepo.EXPECT().List(mock.Anything).Return(makeProfiles(2), nil)
	ngoRepo.EXPECT().List(mock.Anything).Return(makeNGOs(2), nil)

	svc := NewMatchService(MatchServiceParams{
		MatchRepo:   store,
		ProfileRepo: profileRepo,
		NGORepo:     ngoRepo,
		Scorer:      interestScorer(t),
		Config:      testMatchConfig(1),
		Logger:      testLogger(),
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.RecomputeAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMatchService_RecomputeForUser_Chunking(t *testing.T) {
	store := newFakeMatchStore()
	profileRepo := mockRepo.NewMockProfileRepository(t)
	ngoRepo := mockRepo.NewMockNGORepository(t)

	profile := makeProfiles(1)[0]
	ngos := makeNGOs(5)

	profileRepo.EXPECT().FindByID(mock.Anything, profile.ID).Return(profile, nil)
	ngoRepo.EXPECT().List(mock.Anything).Return(ngos, nil)

	svc := NewMatchService(MatchServiceParams{
		MatchRepo:   store,
		ProfileRepo: profileRepo,
		NGORepo:     ngoRepo,
		Scorer:      interestScorer(t),
		Config:      testMatchConfig(2),
		Logger:      testLogger(),
	})

	scored, err := svc.RecomputeForUser(context.Background(), profile.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, scored)

	// 5 pairs with batchSize=2 arrive as chunks of 2, 2, 1.
	require.Len(t, store.batches, 3)
	assert.Len(t, store.batches[0], 2)
	assert.Len(t, store.batches[1], 2)
	assert.Len(t, store.batches[2], 1)
}

func TestMatchService_RecomputeForUser_ZeroBatchSize(t *testing.T) {
	store := newFakeMatchStore()
	profileRepo := mockRepo.NewMockProfileRepository(t)
	ngoRepo := mockRepo.NewMockNGORepository(t)

	profile := makeProfiles(1)[0]

	profileRepo.EXPECT().FindByID(mock.Anything, profile.ID).Return(profile, nil)
	ngoRepo.EXPECT().List(mock.Anything).Return(makeNGOs(5), nil)

	// A zero batch size falls back to the default instead of stalling.
	svc := NewMatchService(MatchServiceParams{
		MatchRepo:   store,
		ProfileRepo: profileRepo,
		NGORepo:     ngoRepo,
		Scorer:      interestScorer(t),
		Config:      testMatchConfig(0),
		Logger:      testLogger(),
	})

	scored, err := svc.RecomputeForUser(context.Background(), profile.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, scored)
	assert.Equal(t, 5, store.size())
	require.Len(t, store.batches, 1)
}

func TestMatchService_RecomputeForUser_UpsertErrorPropagates(t *testing.T) {
	matchRepo := mockRepo.NewMockMatchRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	ngoRepo := mockRepo.NewMockNGORepository(t)

	profile := makeProfiles(1)[0]
	storeErr := errors.New("connection refused")

	profileRepo.EXPECT().FindByID(mock.Anything, profile.ID).Return(profile, nil)
	ngoRepo.EXPECT().List(mock.Anything).Return(makeNGOs(2), nil)
	matchRepo.EXPECT().UpsertScores(mock.Anything, mock.Anything).Return(0, storeErr)

	svc := NewMatchService(MatchServiceParams{
		MatchRepo:   matchRepo,
		ProfileRepo: profileRepo,
		NGORepo:     ngoRepo,
		Scorer:      interestScorer(t),
		Config:      testMatchConfig(100),
		Logger:      testLogger(),
	})

	_, err := svc.RecomputeForUser(context.Background(), profile.ID)
	assert.ErrorIs(t, err, storeErr)
}

func TestMatchService_GetRankedMatches_Ordering(t *testing.T) {
	store := newFakeMatchStore()
	userID := uuid.New()

	// Two NGOs share a score; the tie breaks on ngo_id ascending.
	lowID := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	highID := uuid.MustParse("00000000-0000-0000-0000-000000000002")
	topID := uuid.MustParse("00000000-0000-0000-0000-000000000003")

	_, err := store.UpsertScores(context.Background(), []repository.ScoreUpdate{
		{UserID: userID, NGOID: highID, Score: 40},
		{UserID: userID, NGOID: topID, Score: 90},
		{UserID: userID, NGOID: lowID, Score: 40},
	})
	require.NoError(t, err)

	svc := NewMatchService(MatchServiceParams{
		MatchRepo:   store,
		ProfileRepo: mockRepo.NewMockProfileRepository(t),
		NGORepo:     mockRepo.NewMockNGORepository(t),
		Scorer:      interestScorer(t),
		Config:      testMatchConfig(100),
		Logger:      testLogger(),
	})

	ranked, err := svc.GetRankedMatches(context.Background(), userID, 0)
	require.NoError(t, err)
	require.Len(t, ranked, 3)
	assert.Equal(t, topID, ranked[0].NGOID)
	assert.Equal(t, lowID, ranked[1].NGOID)
	assert.Equal(t, highID, ranked[2].NGOID)
}

func TestMatchService_SetAdopted_UnscoredPair(t *testing.T) {
	store := newFakeMatchStore()

	svc := NewMatchService(MatchServiceParams{
		MatchRepo:   store,
		ProfileRepo: mockRepo.NewMockProfileRepository(t),
		NGORepo:     mockRepo.NewMockNGORepository(t),
		Scorer:      interestScorer(t),
		Config:      testMatchConfig(100),
		Logger:      testLogger(),
	})

	match, err := svc.SetAdopted(context.Background(), uuid.New(), uuid.New(), true)
	assert.ErrorIs(t, err, domainerrors.ErrMatchNotFound)
	assert.Nil(t, match)

	// Adopting never creates a record.
	assert.Zero(t, store.size())
}
