// Package impl contains the concrete implementations of the usecase interfaces.
package impl

import (
	"context"
	"log/slog"
	"sync"

	"kindred/config"
	"kindred/internal/domain/entity"
	domainerrors "kindred/internal/domain/errors"
	"kindred/internal/domain/repository"
	"kindred/internal/domain/service"
	"kindred/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type matchService struct {
	matchRepo   repository.MatchRepository
	profileRepo repository.ProfileRepository
	ngoRepo     repository.NGORepository
	scorer      service.MatchScorer
	config      *config.Config
	logger      *slog.Logger
}

// MatchServiceParams holds dependencies for MatchService, injected by Fx.
type MatchServiceParams struct {
	fx.In

	MatchRepo   repository.MatchRepository
	ProfileRepo repository.ProfileRepository
	NGORepo     repository.NGORepository
	Scorer      service.MatchScorer
	Config      *config.Config
	Logger      *slog.Logger
}

// NewMatchService creates a new match service instance
func NewMatchService(params MatchServiceParams) usecase.MatchUsecase {
	return &matchService{
		matchRepo:   params.MatchRepo,
		profileRepo: params.ProfileRepo,
		ngoRepo:     params.NGORepo,
		scorer:      params.Scorer,
		config:      params.Config,
		logger:      params.Logger,
	}
}

// RecomputeForUser rescores a single user against the whole catalog.
func (s *matchService) RecomputeForUser(ctx context.Context, userID uuid.UUID) (int, error) {
	profile, err := s.profileRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return 0, domainerrors.ErrProfileNotFound
		}

		return 0, errors.Wrap(err, "failed to load profile for recompute")
	}

	ngos, err := s.ngoRepo.List(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to load ngo catalog for recompute")
	}

	scored, err := s.upsertInChunks(ctx, s.scorePairs(profile, ngos))
	if err != nil {
		return scored, err
	}

	s.logger.Info("match recompute finished for user",
		slog.String("user_id", userID.String()),
		slog.Int("pairs_scored", scored),
	)

	return scored, nil
}

// RecomputeAll rescores every profile against every NGO. Scoring fans out over
// a bounded worker pool; the upserts themselves stay on the calling goroutine
// so chunk ordering and error handling remain simple. Cancellation is observed
// between chunks, and already-persisted chunks survive.
func (s *matchService) RecomputeAll(ctx context.Context) (int, error) {
	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list profiles for recompute")
	}

	ngos, err := s.ngoRepo.List(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to load ngo catalog for recompute")
	}

	if len(profiles) == 0 || len(ngos) == 0 {
		return 0, nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	workers := s.config.Matching.Workers
	if workers > len(profiles) {
		workers = len(profiles)
	}

	jobs := make(chan *entity.Profile)
	batches := make(chan []repository.ScoreUpdate, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for profile := range jobs {
				select {
				case batches <- s.scorePairs(profile, ngos):
				case <-runCtx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, profile := range profiles {
			select {
			case jobs <- profile:
			case <-runCtx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(batches)
	}()

	total := 0
	for batch := range batches {
		scored, err := s.upsertInChunks(runCtx, batch)
		total += scored
		if err != nil {
			cancel()
			// Drain so the scoring goroutines can exit.
			for range batches {
			}

			return total, err
		}
	}

	if err := ctx.Err(); err != nil {
		return total, errors.Wrap(err, "recompute cancelled")
	}

	s.logger.Info("full match recompute finished",
		slog.Int("profiles", len(profiles)),
		slog.Int("ngos", len(ngos)),
		slog.Int("pairs_scored", total),
	)

	return total, nil
}

// GetRankedMatches returns the user's recommendation list, highest score first.
func (s *matchService) GetRankedMatches(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.RankedMatch, error) {
	matches, err := s.matchRepo.FindRankedMatchesByUser(ctx, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load ranked matches")
	}

	return matches, nil
}

// SetAdopted flips the adoption flag on an already-scored pair.
func (s *matchService) SetAdopted(ctx context.Context, userID, ngoID uuid.UUID, adopted bool) (*entity.NGOMatch, error) {
	if err := s.matchRepo.SetAdopted(ctx, userID, ngoID, adopted); err != nil {
		if errors.Is(err, repository.ErrMatchNotFound) {
			return nil, domainerrors.ErrMatchNotFound
		}

		return nil, errors.Wrap(err, "failed to set adoption flag")
	}

	match, err := s.matchRepo.FindMatch(ctx, userID, ngoID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload match after adoption change")
	}

	return match, nil
}

// scorePairs scores one profile against the catalog.
func (s *matchService) scorePairs(profile *entity.Profile, ngos []*entity.NGO) []repository.ScoreUpdate {
	batch := make([]repository.ScoreUpdate, 0, len(ngos))
	for _, ngo := range ngos {
		batch = append(batch, repository.ScoreUpdate{
			UserID: profile.ID,
			NGOID:  ngo.ID,
			Score:  s.scorer.Score(profile, ngo),
		})
	}

	return batch
}

// upsertInChunks writes a scoring batch in fixed-size chunks, checking for
// cancellation between chunks. Returns the number of updates handed to the
// store before any failure.
func (s *matchService) upsertInChunks(ctx context.Context, batch []repository.ScoreUpdate) (int, error) {
	chunkSize := s.config.Matching.BatchSize
	if chunkSize <= 0 {
		// Config loading applies this default too, but a zero chunk size
		// here would loop forever.
		chunkSize = config.DefaultMatchBatchSize
	}
	total := 0

	for start := 0; start < len(batch); start += chunkSize {
		if err := ctx.Err(); err != nil {
			return total, errors.Wrap(err, "recompute cancelled")
		}

		end := start + chunkSize
		if end > len(batch) {
			end = len(batch)
		}

		if _, err := s.matchRepo.UpsertScores(ctx, batch[start:end]); err != nil {
			return total, errors.Wrap(err, "failed to upsert score chunk")
		}
		total += end - start
	}

	return total, nil
}
