package handler

import (
	"log/slog"
	"net/http"

	"kindred/internal/delivery/http/response"
	"kindred/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ActionHandler holds dependencies for donor action handlers.
type ActionHandler struct {
	uc     usecase.ActionUsecase
	logger *slog.Logger
}

// NewActionHandler is the constructor for ActionHandler, injected by Fx.
func NewActionHandler(uc usecase.ActionUsecase, logger *slog.Logger) *ActionHandler {
	return &ActionHandler{
		uc:     uc,
		logger: logger,
	}
}

// RecordAction records a donation, volunteer sign-up or petition signature
// for the current user and credits their impact score.
func (h *ActionHandler) RecordAction(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.RecordActionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid action input")
	}

	action, err := h.uc.RecordAction(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, action, "Action recorded successfully")
}

// ListActions returns the current user's action history, newest first.
func (h *ActionHandler) ListActions(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	actions, err := h.uc.ListUserActions(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, actions, "Actions retrieved successfully")
}
