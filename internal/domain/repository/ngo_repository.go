package repository

import (
	"context"

	"kindred/internal/domain/entity"
	"kindred/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for NGO persistence.
var (
	// ErrNGONotFound is returned when an NGO is not found.
	ErrNGONotFound = errors.New("ngo not found")
)

// NGORepository defines the interface for NGO catalog database operations.
// The matcher only ever reads through this interface.
type NGORepository interface {
	// FindByID retrieves a single NGO by its identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.NGO, error)

	// List retrieves the whole catalog ordered by name ascending.
	List(ctx context.Context) ([]*entity.NGO, error)

	// ListByCategory retrieves NGOs in one category, ordered by name ascending.
	ListByCategory(ctx context.Context, category entity.NGOCategory) ([]*entity.NGO, error)

	// Create persists a new NGO record.
	Create(ctx context.Context, ngo *entity.NGO) error

	// Update overwrites the mutable fields of an existing NGO record.
	Update(ctx context.Context, ngo *entity.NGO) error
}
