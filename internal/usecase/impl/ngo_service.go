package impl

import (
	"context"

	"kindred/internal/domain/entity"
	domainerrors "kindred/internal/domain/errors"
	"kindred/internal/domain/repository"
	"kindred/internal/domain/service"
	"kindred/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type ngoService struct {
	ngoRepo       repository.NGORepository
	qrcodeService service.QRCodeService
}

// NGOServiceParams holds dependencies for NGOService, injected by Fx.
type NGOServiceParams struct {
	fx.In

	NGORepo       repository.NGORepository
	QRCodeService service.QRCodeService
}

// NewNGOService creates a new NGO catalog service instance
func NewNGOService(params NGOServiceParams) usecase.NGOUsecase {
	return &ngoService{
		ngoRepo:       params.NGORepo,
		qrcodeService: params.QRCodeService,
	}
}

// GetNGO retrieves a single NGO listing.
func (s *ngoService) GetNGO(ctx context.Context, id uuid.UUID) (*entity.NGO, error) {
	ngo, err := s.ngoRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNGONotFound) {
			return nil, domainerrors.ErrNGONotFound
		}

		return nil, errors.Wrap(err, "failed to get ngo")
	}

	return ngo, nil
}

// ListNGOs returns the catalog, optionally filtered by category.
func (s *ngoService) ListNGOs(ctx context.Context, category entity.NGOCategory) ([]*entity.NGO, error) {
	if !category.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown ngo category")
	}

	if category == entity.CategoryUnset {
		ngos, err := s.ngoRepo.List(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list ngos")
		}

		return ngos, nil
	}

	ngos, err := s.ngoRepo.ListByCategory(ctx, category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ngos by category")
	}

	return ngos, nil
}

// CreateNGO adds an organization to the catalog.
func (s *ngoService) CreateNGO(ctx context.Context, input *usecase.NGOInput) (*entity.NGO, error) {
	ngo, err := ngoFromInput(input)
	if err != nil {
		return nil, err
	}

	if err := s.ngoRepo.Create(ctx, ngo); err != nil {
		return nil, errors.Wrap(err, "failed to create ngo")
	}

	return ngo, nil
}

// UpdateNGO overwrites an existing catalog listing.
func (s *ngoService) UpdateNGO(ctx context.Context, id uuid.UUID, input *usecase.NGOInput) (*entity.NGO, error) {
	ngo, err := ngoFromInput(input)
	if err != nil {
		return nil, err
	}
	ngo.ID = id

	if err := s.ngoRepo.Update(ctx, ngo); err != nil {
		if errors.Is(err, repository.ErrNGONotFound) {
			return nil, domainerrors.ErrNGONotFound
		}

		return nil, errors.Wrap(err, "failed to update ngo")
	}

	return s.GetNGO(ctx, id)
}

// GenerateDonationQR renders the donation QR code for an existing NGO.
func (s *ngoService) GenerateDonationQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	// Only render codes for listings that actually exist.
	if _, err := s.GetNGO(ctx, id); err != nil {
		return nil, err
	}

	png, err := s.qrcodeService.GenerateDonationQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate donation qr code")
	}

	return png, nil
}

func ngoFromInput(input *usecase.NGOInput) (*entity.NGO, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("ngo name is required")
	}

	category := entity.NGOCategory(input.Category)
	if !category.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown ngo category")
	}

	return &entity.NGO{
		Name:          input.Name,
		Description:   input.Description,
		LogoURL:       input.LogoURL,
		CoverImageURL: input.CoverImageURL,
		Category:      category,
		Location:      input.Location,
		ImpactMetrics: input.ImpactMetrics,
	}, nil
}
