package postgres

import (
	"context"
	"time"

	"kindred/internal/domain/entity"
	domainerrors "kindred/internal/domain/errors"
	"kindred/internal/domain/repository"
	"kindred/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// matchRepository implements the repository.MatchRepository interface using GORM.
// The (user_id, ngo_id) uniqueness invariant is enforced by the database, not
// application code: the upsert resolves conflicts inside PostgreSQL.
type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository is the constructor for matchRepository.
func NewMatchRepository(db *gorm.DB) repository.MatchRepository {
	return &matchRepository{
		db: db,
	}
}

// UpsertScores writes a scoring batch with ON CONFLICT (user_id, ngo_id)
// DO UPDATE SET match_score, updated_at. is_adopted is deliberately absent
// from the update column list so concurrent recomputes can never clobber a
// user's adoption choice.
func (repo *matchRepository) UpsertScores(ctx context.Context, batch []repository.ScoreUpdate) (int64, error) {
	if len(batch) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	rows := make([]*model.NGOMatchModel, 0, len(batch))
	for _, update := range batch {
		rows = append(rows, &model.NGOMatchModel{
			UserID:     update.UserID,
			NGOID:      update.NGOID,
			MatchScore: update.Score,
			IsAdopted:  false,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "ngo_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"match_score", "updated_at"}),
		}).
		Create(&rows)

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return 0, domainerrors.ErrValidationFailed.WrapMessage("scoring batch references an unknown profile or NGO")
		}

		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to upsert match scores")
	}

	return result.RowsAffected, nil
}

// FindRankedMatchesByUser returns the user's matches with the NGO rows joined
// in, ordered by score descending and ngo_id ascending for a stable ranking.
// It pins the read to the primary so a recompute that just committed is
// visible to the request that triggered it.
func (repo *matchRepository) FindRankedMatchesByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.RankedMatch, error) {
	var matchModels []*model.NGOMatchModel

	query := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Preload("NGO").
		Where("user_id = ?", userID).
		Order("match_score DESC, ngo_id ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&matchModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find ranked matches")
	}

	ranked := make([]*entity.RankedMatch, 0, len(matchModels))
	for _, matchM := range matchModels {
		ranked = append(ranked, &entity.RankedMatch{
			NGOMatch: *toMatchDomain(matchM),
			NGO:      toNGODomain(matchM.NGO),
		})
	}

	return ranked, nil
}

// FindMatch retrieves the unique record for a (user, NGO) pair.
func (repo *matchRepository) FindMatch(ctx context.Context, userID, ngoID uuid.UUID) (*entity.NGOMatch, error) {
	var matchM model.NGOMatchModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND ngo_id = ?", userID, ngoID).
		First(&matchM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMatchNotFound
		}

		return nil, errors.Wrap(err, "failed to find match")
	}

	return toMatchDomain(&matchM), nil
}

// SetAdopted flips is_adopted on an existing record. It never inserts: a pair
// the scorer has not produced yet cannot be adopted.
func (repo *matchRepository) SetAdopted(ctx context.Context, userID, ngoID uuid.UUID, adopted bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NGOMatchModel{}).
		Where("user_id = ? AND ngo_id = ?", userID, ngoID).
		Update("is_adopted", adopted)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set adoption flag")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMatchNotFound
	}

	return nil
}

// CountByUser returns the number of affinity records for one user.
func (repo *matchRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NGOMatchModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count matches")
	}

	return count, nil
}

// --- Mapper Functions ---

// toMatchDomain converts a GORM NGOMatchModel to a domain NGOMatch entity.
func toMatchDomain(data *model.NGOMatchModel) *entity.NGOMatch {
	if data == nil {
		return nil
	}

	return &entity.NGOMatch{
		UserID:     data.UserID,
		NGOID:      data.NGOID,
		MatchScore: data.MatchScore,
		IsAdopted:  data.IsAdopted,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
