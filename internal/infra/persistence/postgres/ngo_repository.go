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

// ngoRepository implements the repository.NGORepository interface using GORM.
type ngoRepository struct {
	db *gorm.DB
}

// NewNGORepository is the constructor for ngoRepository.
func NewNGORepository(db *gorm.DB) repository.NGORepository {
	return &ngoRepository{
		db: db,
	}
}

// FindByID retrieves a single NGO by its identifier.
func (repo *ngoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.NGO, error) {
	var ngoM model.NGOModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ngoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNGONotFound
		}

		return nil, errors.Wrap(err, "failed to find ngo by id")
	}

	return toNGODomain(&ngoM), nil
}

// List retrieves the whole catalog ordered by name ascending.
func (repo *ngoRepository) List(ctx context.Context) ([]*entity.NGO, error) {
	var ngoModels []*model.NGOModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&ngoModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list ngos")
	}

	return toNGODomainList(ngoModels), nil
}

// ListByCategory retrieves NGOs in one category, ordered by name ascending.
func (repo *ngoRepository) ListByCategory(ctx context.Context, category entity.NGOCategory) ([]*entity.NGO, error) {
	var ngoModels []*model.NGOModel

	if err := repo.db.WithContext(ctx).
		Where("category = ?", string(category)).
		Order("name ASC").
		Find(&ngoModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list ngos by category")
	}

	return toNGODomainList(ngoModels), nil
}

// Create persists a new NGO record. The database assigns the UUID.
func (repo *ngoRepository) Create(ctx context.Context, ngo *entity.NGO) error {
	ngoM := fromNGODomain(ngo)

	if err := repo.db.WithContext(ctx).Create(ngoM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required ngo information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create ngo")
	}

	ngo.ID = ngoM.ID
	ngo.CreatedAt = ngoM.CreatedAt
	ngo.UpdatedAt = ngoM.UpdatedAt

	return nil
}

// Update overwrites the mutable fields of an existing NGO record.
func (repo *ngoRepository) Update(ctx context.Context, ngo *entity.NGO) error {
	ngoM := fromNGODomain(ngo)

	result := repo.db.WithContext(ctx).
		Model(&model.NGOModel{}).
		Where("id = ?", ngo.ID).
		Updates(map[string]any{
			"name":            ngoM.Name,
			"description":     ngoM.Description,
			"logo_url":        ngoM.LogoURL,
			"cover_image_url": ngoM.CoverImageURL,
			"category":        ngoM.Category,
			"location":        ngoM.Location,
			"impact_metrics":  ngoM.ImpactMetrics,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update ngo")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNGONotFound
	}

	return nil
}

// --- Mapper Functions ---

// toNGODomain converts a GORM NGOModel to a domain NGO entity.
func toNGODomain(data *model.NGOModel) *entity.NGO {
	if data == nil {
		return nil
	}

	return &entity.NGO{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		LogoURL:       data.LogoURL,
		CoverImageURL: data.CoverImageURL,
		Category:      entity.NGOCategory(data.Category),
		Location:      data.Location,
		ImpactMetrics: data.ImpactMetrics,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toNGODomainList(data []*model.NGOModel) []*entity.NGO {
	ngos := make([]*entity.NGO, 0, len(data))
	for _, ngoM := range data {
		ngos = append(ngos, toNGODomain(ngoM))
	}

	return ngos
}

// fromNGODomain converts a domain NGO entity to a GORM NGOModel for persistence.
func fromNGODomain(data *entity.NGO) *model.NGOModel {
	if data == nil {
		return nil
	}

	return &model.NGOModel{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		LogoURL:       data.LogoURL,
		CoverImageURL: data.CoverImageURL,
		Category:      string(data.Category),
		Location:      data.Location,
		ImpactMetrics: data.ImpactMetrics,
	}
}
