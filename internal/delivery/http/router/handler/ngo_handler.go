package handler

import (
	"log/slog"
	"net/http"

	"kindred/internal/delivery/http/response"
	"kindred/internal/domain/entity"
	"kindred/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NGOHandler holds dependencies for catalog-related handlers.
type NGOHandler struct {
	uc     usecase.NGOUsecase
	logger *slog.Logger
}

// NewNGOHandler is the constructor for NGOHandler, injected by Fx.
func NewNGOHandler(uc usecase.NGOUsecase, logger *slog.Logger) *NGOHandler {
	return &NGOHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListNGOs returns the catalog, optionally filtered by the "category" query
// parameter.
func (h *NGOHandler) ListNGOs(c echo.Context) error {
	category := entity.NGOCategory(c.QueryParam("category"))
	if !category.Valid() {
		return response.BadRequest(c, "INVALID_INPUT", "Unknown NGO category")
	}

	ngos, err := h.uc.ListNGOs(c.Request().Context(), category)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ngos, "NGOs retrieved successfully")
}

// GetNGO returns a single NGO listing.
func (h *NGOHandler) GetNGO(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid NGO ID")
	}

	ngo, err := h.uc.GetNGO(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ngo, "NGO retrieved successfully")
}

// GetDonationQR renders the NGO's donation page QR code as a PNG image.
func (h *NGOHandler) GetDonationQR(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid NGO ID")
	}

	png, err := h.uc.GenerateDonationQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// CreateNGO adds a new NGO to the catalog. Admin only.
func (h *NGOHandler) CreateNGO(c echo.Context) error {
	var input *usecase.NGOInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid NGO input")
	}

	ngo, err := h.uc.CreateNGO(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, ngo, "NGO created successfully")
}

// UpdateNGO replaces an NGO listing. Admin only.
func (h *NGOHandler) UpdateNGO(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid NGO ID")
	}

	var input *usecase.NGOInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid NGO input")
	}

	ngo, err := h.uc.UpdateNGO(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ngo, "NGO updated successfully")
}
