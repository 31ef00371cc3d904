package usecase

import (
	"context"

	"kindred/internal/domain/entity"

	"github.com/google/uuid"
)

// NGOUsecase defines the interface for NGO catalog management use cases.
// Mutations are restricted to administrative users at the delivery layer.
type NGOUsecase interface {
	GetNGO(ctx context.Context, id uuid.UUID) (*entity.NGO, error)

	// ListNGOs returns the catalog, optionally filtered by category.
	// CategoryUnset means no filter.
	ListNGOs(ctx context.Context, category entity.NGOCategory) ([]*entity.NGO, error)

	CreateNGO(ctx context.Context, input *NGOInput) (*entity.NGO, error)
	UpdateNGO(ctx context.Context, id uuid.UUID, input *NGOInput) (*entity.NGO, error)

	// GenerateDonationQR renders a PNG QR code pointing at the NGO's public
	// donation page.
	GenerateDonationQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}

// --- Input DTOs ---

// NGOInput defines the data required to create or update an NGO listing.
type NGOInput struct {
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	LogoURL       string         `json:"logo_url"`
	CoverImageURL string         `json:"cover_image_url"`
	Category      string         `json:"category"`
	Location      string         `json:"location"`
	ImpactMetrics map[string]any `json:"impact_metrics"`
}
