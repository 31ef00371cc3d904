package handler

import (
	"log/slog"
	"net/http"

	deliveryctx "kindred/internal/delivery/context"
	"kindred/internal/delivery/http/response"
	"kindred/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for session lifecycle handlers.
type SessionHandler struct {
	uc     usecase.SessionUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		uc:     uc,
		logger: logger,
	}
}

// RecordSignIn reports that the current user signed in, which queues a
// recompute of their recommendations. The response does not wait for the
// recompute itself.
func (h *SessionHandler) RecordSignIn(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	requestID := deliveryctx.GetRequestID(c)
	if err := h.uc.RecordSignIn(c.Request().Context(), userID, requestID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{
		"request_id": requestID,
	}, "Sign-in recorded, recommendations refresh queued")
}
