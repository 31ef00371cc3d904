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

// postRepository implements the repository.PostRepository interface using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{
		db: db,
	}
}

// FindByID retrieves a single post with its NGO preloaded.
func (repo *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	var postM model.PostModel

	if err := repo.db.WithContext(ctx).
		Preload("NGO").
		Where("id = ?", id).
		First(&postM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by id")
	}

	return toPostDomain(&postM), nil
}

// ListFeed retrieves the most recent posts with NGOs preloaded, newest first.
func (repo *postRepository) ListFeed(ctx context.Context, limit int) ([]*entity.Post, error) {
	var postModels []*model.PostModel

	query := repo.db.WithContext(ctx).
		Preload("NGO").
		Order("created_at DESC, id ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&postModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list feed posts")
	}

	return toPostDomainList(postModels), nil
}

// ListByNGO retrieves every post published for one NGO, newest first.
func (repo *postRepository) ListByNGO(ctx context.Context, ngoID uuid.UUID) ([]*entity.Post, error) {
	var postModels []*model.PostModel

	if err := repo.db.WithContext(ctx).
		Where("ngo_id = ?", ngoID).
		Order("created_at DESC, id ASC").
		Find(&postModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list posts by ngo")
	}

	return toPostDomainList(postModels), nil
}

// Create persists a new post. The database assigns the UUID.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrNGONotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required post information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt
	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toPostDomain converts a GORM PostModel to a domain Post entity.
func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	return &entity.Post{
		ID:          data.ID,
		NGOID:       data.NGOID,
		Title:       data.Title,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		PostType:    entity.PostType(data.PostType),
		ActionData:  data.ActionData,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		NGO:         toNGODomain(data.NGO),
	}
}

func toPostDomainList(data []*model.PostModel) []*entity.Post {
	posts := make([]*entity.Post, 0, len(data))
	for _, postM := range data {
		posts = append(posts, toPostDomain(postM))
	}

	return posts
}

// fromPostDomain converts a domain Post entity to a GORM PostModel for persistence.
func fromPostDomain(data *entity.Post) *model.PostModel {
	if data == nil {
		return nil
	}

	return &model.PostModel{
		ID:          data.ID,
		NGOID:       data.NGOID,
		Title:       data.Title,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		PostType:    string(data.PostType),
		ActionData:  data.ActionData,
	}
}
