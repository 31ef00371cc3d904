package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"kindred/internal/delivery/http/response"
	"kindred/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MatchHandler holds dependencies for recommendation-related handlers.
type MatchHandler struct {
	uc     usecase.MatchUsecase
	logger *slog.Logger
}

// NewMatchHandler is the constructor for MatchHandler, injected by Fx.
func NewMatchHandler(uc usecase.MatchUsecase, logger *slog.Logger) *MatchHandler {
	return &MatchHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetMatches returns the current user's ranked NGO recommendations.
// An optional "limit" query parameter caps the list length.
func (h *MatchHandler) GetMatches(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "INVALID_INPUT", "limit must be a non-negative integer")
		}
		limit = parsed
	}

	matches, err := h.uc.GetRankedMatches(c.Request().Context(), userID, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, matches, "Matches retrieved successfully")
}

// SetAdopted flips the adoption flag on an already-scored NGO match.
func (h *MatchHandler) SetAdopted(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	ngoID, err := uuid.Parse(c.Param("ngoID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid NGO ID")
	}

	var input struct {
		Adopted bool `json:"adopted"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid adoption input")
	}

	match, err := h.uc.SetAdopted(c.Request().Context(), userID, ngoID, input.Adopted)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, match, "Adoption updated successfully")
}
