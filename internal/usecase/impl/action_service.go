package impl

import (
	"context"
	"log/slog"

	"kindred/internal/domain/entity"
	domainerrors "kindred/internal/domain/errors"
	"kindred/internal/domain/repository"
	"kindred/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Impact score awarded per action type.
var impactPoints = map[entity.PostType]int{
	entity.PostTypeDonation:  10,
	entity.PostTypeVolunteer: 20,
	entity.PostTypePetition:  5,
}

type actionService struct {
	actionRepo repository.ActionRepository
	postRepo   repository.PostRepository
	txManager  repository.TransactionManager
	logger     *slog.Logger
}

// ActionServiceParams holds dependencies for ActionService, injected by Fx.
type ActionServiceParams struct {
	fx.In

	ActionRepo repository.ActionRepository
	PostRepo   repository.PostRepository
	TxManager  repository.TransactionManager
	Logger     *slog.Logger
}

// NewActionService creates a new action service instance
func NewActionService(params ActionServiceParams) usecase.ActionUsecase {
	return &actionService{
		actionRepo: params.ActionRepo,
		postRepo:   params.PostRepo,
		txManager:  params.TxManager,
		logger:     params.Logger,
	}
}

// RecordAction persists the action and bumps the user's impact score in one
// transaction, so a donor never loses credit for a recorded action.
func (s *actionService) RecordAction(ctx context.Context, userID uuid.UUID, input *usecase.RecordActionInput) (*entity.UserAction, error) {
	actionType := entity.PostType(input.ActionType)
	if !actionType.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown action type")
	}

	if _, err := s.postRepo.FindByID(ctx, input.PostID); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to verify post for action")
	}

	action := &entity.UserAction{
		UserID:        userID,
		PostID:        input.PostID,
		ActionType:    actionType,
		ActionDetails: input.ActionDetails,
		TransactionID: input.TransactionID,
	}

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewActionRepository().Create(ctx, action); err != nil {
			return errors.Wrap(err, "failed to record action")
		}

		if err := factory.NewProfileRepository().IncrementImpactScore(ctx, userID, impactPoints[actionType]); err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrProfileNotFound
			}

			return errors.Wrap(err, "failed to increment impact score")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user action recorded",
		slog.String("user_id", userID.String()),
		slog.String("post_id", input.PostID.String()),
		slog.String("action_type", string(actionType)),
	)

	return action, nil
}

// ListUserActions returns a user's actions with posts and NGOs joined in.
func (s *actionService) ListUserActions(ctx context.Context, userID uuid.UUID) ([]*entity.UserAction, error) {
	actions, err := s.actionRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user actions")
	}

	return actions, nil
}
