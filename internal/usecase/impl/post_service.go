package impl

import (
	"context"

	"kindred/internal/domain/entity"
	domainerrors "kindred/internal/domain/errors"
	"kindred/internal/domain/repository"
	"kindred/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultFeedLimit bounds the public feed when the caller asks for everything.
const defaultFeedLimit = 50

type postService struct {
	postRepo repository.PostRepository
	ngoRepo  repository.NGORepository
}

// PostServiceParams holds dependencies for PostService, injected by Fx.
type PostServiceParams struct {
	fx.In

	PostRepo repository.PostRepository
	NGORepo  repository.NGORepository
}

// NewPostService creates a new feed service instance
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		postRepo: params.PostRepo,
		ngoRepo:  params.NGORepo,
	}
}

// GetPost retrieves a single post with its NGO.
func (s *postService) GetPost(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to get post")
	}

	return post, nil
}

// ListFeed returns the most recent posts across all NGOs.
func (s *postService) ListFeed(ctx context.Context, limit int) ([]*entity.Post, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}

	posts, err := s.postRepo.ListFeed(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list feed")
	}

	return posts, nil
}

// ListByNGO returns every post published for one NGO.
func (s *postService) ListByNGO(ctx context.Context, ngoID uuid.UUID) ([]*entity.Post, error) {
	posts, err := s.postRepo.ListByNGO(ctx, ngoID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts by ngo")
	}

	return posts, nil
}

// CreatePost publishes a feed post on behalf of an NGO.
func (s *postService) CreatePost(ctx context.Context, input *usecase.CreatePostInput) (*entity.Post, error) {
	if input.Title == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("post title is required")
	}

	postType := entity.PostType(input.PostType)
	if !postType.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown post type")
	}

	// The NGO must exist before anything is published under its name.
	if _, err := s.ngoRepo.FindByID(ctx, input.NGOID); err != nil {
		if errors.Is(err, repository.ErrNGONotFound) {
			return nil, domainerrors.ErrNGONotFound
		}

		return nil, errors.Wrap(err, "failed to verify ngo for post")
	}

	post := &entity.Post{
		NGOID:       input.NGOID,
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		PostType:    postType,
		ActionData:  input.ActionData,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		if errors.Is(err, repository.ErrNGONotFound) {
			return nil, domainerrors.ErrNGONotFound
		}

		return nil, errors.Wrap(err, "failed to create post")
	}

	return post, nil
}
