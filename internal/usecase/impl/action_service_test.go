package impl

import (
	"context"
	"testing"

	"kindred/internal/domain/entity"
	domainerrors "kindred/internal/domain/errors"
	"kindred/internal/domain/repository"
	mockRepo "kindred/internal/mocks/repository"
	"kindred/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActionService_RecordAction(t *testing.T) {
	actionRepo := mockRepo.NewMockActionRepository(t)
	postRepo := mockRepo.NewMockPostRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	userID := uuid.New()
	postID := uuid.New()

	postRepo.EXPECT().
		FindByID(mock.Anything, postID).
		Return(&entity.Post{ID: postID, PostType: entity.PostTypeDonation}, nil)

	// Run the transactional callback against tx-bound repos, like the real
	// manager would.
	txActionRepo := mockRepo.NewMockActionRepository(t)
	txProfileRepo := mockRepo.NewMockProfileRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewActionRepository().Return(txActionRepo)
	factory.EXPECT().NewProfileRepository().Return(txProfileRepo)

	txActionRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	txProfileRepo.EXPECT().IncrementImpactScore(mock.Anything, userID, impactPoints[entity.PostTypeDonation]).Return(nil)

	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	svc := NewActionService(ActionServiceParams{
		ActionRepo: actionRepo,
		PostRepo:   postRepo,
		TxManager:  txManager,
		Logger:     testLogger(),
	})

	got, err := svc.RecordAction(context.Background(), userID, &usecase.RecordActionInput{
		PostID:        postID,
		ActionType:    "donation",
		TransactionID: "txn_1042",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, entity.PostTypeDonation, got.ActionType)
	assert.Equal(t, "txn_1042", got.TransactionID)
}

func TestActionService_RecordAction_UnknownType(t *testing.T) {
	svc := NewActionService(ActionServiceParams{
		ActionRepo: mockRepo.NewMockActionRepository(t),
		PostRepo:   mockRepo.NewMockPostRepository(t),
		TxManager:  mockRepo.NewMockTransactionManager(t),
		Logger:     testLogger(),
	})

	got, err := svc.RecordAction(context.Background(), uuid.New(), &usecase.RecordActionInput{
		PostID:     uuid.New(),
		ActionType: "teleport",
	})
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestActionService_RecordAction_PostMissing(t *testing.T) {
	postRepo := mockRepo.NewMockPostRepository(t)
	postID := uuid.New()

	postRepo.EXPECT().FindByID(mock.Anything, postID).Return(nil, repository.ErrPostNotFound)

	svc := NewActionService(ActionServiceParams{
		ActionRepo: mockRepo.NewMockActionRepository(t),
		PostRepo:   postRepo,
		TxManager:  mockRepo.NewMockTransactionManager(t),
		Logger:     testLogger(),
	})

	got, err := svc.RecordAction(context.Background(), uuid.New(), &usecase.RecordActionInput{
		PostID:     postID,
		ActionType: "donation",
	})
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
	assert.Nil(t, got)
}

func TestActionService_RecordAction_TxRollsBack(t *testing.T) {
	postRepo := mockRepo.NewMockPostRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	postID := uuid.New()
	txErr := errors.New("deadlock detected")

	postRepo.EXPECT().
		FindByID(mock.Anything, postID).
		Return(&entity.Post{ID: postID, PostType: entity.PostTypeVolunteer}, nil)
	txManager.EXPECT().Execute(mock.Anything, mock.Anything).Return(txErr)

	svc := NewActionService(ActionServiceParams{
		ActionRepo: mockRepo.NewMockActionRepository(t),
		PostRepo:   postRepo,
		TxManager:  txManager,
		Logger:     testLogger(),
	})

	got, err := svc.RecordAction(context.Background(), uuid.New(), &usecase.RecordActionInput{
		PostID:     postID,
		ActionType: "volunteer",
	})
	assert.ErrorIs(t, err, txErr)
	assert.Nil(t, got)
}

func TestActionService_ListUserActions(t *testing.T) {
	actionRepo := mockRepo.NewMockActionRepository(t)
	userID := uuid.New()
	history := []*entity.UserAction{{ID: uuid.New(), UserID: userID}}

	actionRepo.EXPECT().FindByUser(mock.Anything, userID).Return(history, nil)

	svc := NewActionService(ActionServiceParams{
		ActionRepo: actionRepo,
		PostRepo:   mockRepo.NewMockPostRepository(t),
		TxManager:  mockRepo.NewMockTransactionManager(t),
		Logger:     testLogger(),
	})

	got, err := svc.ListUserActions(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, history, got)
}
