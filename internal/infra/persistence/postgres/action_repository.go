package postgres

import (
	"context"

	"kindred/internal/domain/entity"
	domainerrors "kindred/internal/domain/errors"
	"kindred/internal/domain/repository"
	"kindred/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// actionRepository implements the repository.ActionRepository interface using GORM.
type actionRepository struct {
	db *gorm.DB
}

// NewActionRepository is the constructor for actionRepository.
func NewActionRepository(db *gorm.DB) repository.ActionRepository {
	return &actionRepository{
		db: db,
	}
}

// Create persists a new user action. The database assigns the UUID.
func (repo *actionRepository) Create(ctx context.Context, action *entity.UserAction) error {
	actionM := fromActionDomain(action)

	if err := repo.db.WithContext(ctx).Create(actionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPostNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required action information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user action")
	}

	action.ID = actionM.ID
	action.CreatedAt = actionM.CreatedAt

	return nil
}

// FindByUser retrieves a user's actions with posts and NGOs preloaded, newest first.
func (repo *actionRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserAction, error) {
	var actionModels []*model.UserActionModel

	if err := repo.db.WithContext(ctx).
		Preload("Post").
		Preload("Post.NGO").
		Where("user_id = ?", userID).
		Order("created_at DESC, id ASC").
		Find(&actionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find actions by user")
	}

	actions := make([]*entity.UserAction, 0, len(actionModels))
	for _, actionM := range actionModels {
		actions = append(actions, toActionDomain(actionM))
	}

	return actions, nil
}

// --- Mapper Functions ---

// toActionDomain converts a GORM UserActionModel to a domain UserAction entity.
func toActionDomain(data *model.UserActionModel) *entity.UserAction {
	if data == nil {
		return nil
	}

	return &entity.UserAction{
		ID:            data.ID,
		UserID:        data.UserID,
		PostID:        data.PostID,
		ActionType:    entity.PostType(data.ActionType),
		ActionDetails: data.ActionDetails,
		TransactionID: data.TransactionID,
		CreatedAt:     data.CreatedAt,
		Post:          toPostDomain(data.Post),
	}
}

// fromActionDomain converts a domain UserAction entity to a GORM UserActionModel for persistence.
func fromActionDomain(data *entity.UserAction) *model.UserActionModel {
	if data == nil {
		return nil
	}

	return &model.UserActionModel{
		ID:            data.ID,
		UserID:        data.UserID,
		PostID:        data.PostID,
		ActionType:    string(data.ActionType),
		ActionDetails: data.ActionDetails,
		TransactionID: data.TransactionID,
	}
}
