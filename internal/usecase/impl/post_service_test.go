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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPostService_ListFeed_DefaultLimit(t *testing.T) {
	postRepo := mockRepo.NewMockPostRepository(t)
	feed := []*entity.Post{{ID: uuid.New(), Title: "Winter shelter drive"}}

	postRepo.EXPECT().ListFeed(mock.Anything, defaultFeedLimit).Return(feed, nil)

	svc := NewPostService(PostServiceParams{
		PostRepo: postRepo,
		NGORepo:  mockRepo.NewMockNGORepository(t),
	})

	got, err := svc.ListFeed(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, feed, got)
}

func TestPostService_ListFeed_ExplicitLimit(t *testing.T) {
	postRepo := mockRepo.NewMockPostRepository(t)

	postRepo.EXPECT().ListFeed(mock.Anything, 5).Return(nil, nil)

	svc := NewPostService(PostServiceParams{
		PostRepo: postRepo,
		NGORepo:  mockRepo.NewMockNGORepository(t),
	})

	got, err := svc.ListFeed(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPostService_GetPost_NotFound(t *testing.T) {
	postRepo := mockRepo.NewMockPostRepository(t)
	id := uuid.New()

	postRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrPostNotFound)

	svc := NewPostService(PostServiceParams{
		PostRepo: postRepo,
		NGORepo:  mockRepo.NewMockNGORepository(t),
	})

	got, err := svc.GetPost(context.Background(), id)
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
	assert.Nil(t, got)
}

func TestPostService_CreatePost(t *testing.T) {
	postRepo := mockRepo.NewMockPostRepository(t)
	ngoRepo := mockRepo.NewMockNGORepository(t)
	ngoID := uuid.New()

	ngoRepo.EXPECT().FindByID(mock.Anything, ngoID).Return(&entity.NGO{ID: ngoID}, nil)
	postRepo.EXPECT().
		Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, post *entity.Post) {
			assert.Equal(t, ngoID, post.NGOID)
			assert.Equal(t, entity.PostTypePetition, post.PostType)
		}).
		Return(nil)

	svc := NewPostService(PostServiceParams{
		PostRepo: postRepo,
		NGORepo:  ngoRepo,
	})

	got, err := svc.CreatePost(context.Background(), &usecase.CreatePostInput{
		NGOID:    ngoID,
		Title:    "Sign for cleaner rivers",
		PostType: "petition",
	})
	require.NoError(t, err)
	assert.Equal(t, "Sign for cleaner rivers", got.Title)
}

func TestPostService_CreatePost_Invalid(t *testing.T) {
	svc := NewPostService(PostServiceParams{
		PostRepo: mockRepo.NewMockPostRepository(t),
		NGORepo:  mockRepo.NewMockNGORepository(t),
	})

	tests := []struct {
		name  string
		input *usecase.CreatePostInput
	}{
		{"missing title", &usecase.CreatePostInput{NGOID: uuid.New(), PostType: "donation"}},
		{"unknown type", &usecase.CreatePostInput{NGOID: uuid.New(), Title: "X", PostType: "raffle"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.CreatePost(context.Background(), tt.input)
			assert.Error(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestPostService_CreatePost_UnknownNGO(t *testing.T) {
	ngoRepo := mockRepo.NewMockNGORepository(t)
	ngoID := uuid.New()

	ngoRepo.EXPECT().FindByID(mock.Anything, ngoID).Return(nil, repository.ErrNGONotFound)

	svc := NewPostService(PostServiceParams{
		PostRepo: mockRepo.NewMockPostRepository(t),
		NGORepo:  ngoRepo,
	})

	got, err := svc.CreatePost(context.Background(), &usecase.CreatePostInput{
		NGOID:    ngoID,
		Title:    "Winter shelter drive",
		PostType: "donation",
	})
	assert.ErrorIs(t, err, domainerrors.ErrNGONotFound)
	assert.Nil(t, got)
}
