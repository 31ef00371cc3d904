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

// PostHandler holds dependencies for action feed handlers.
type PostHandler struct {
	uc     usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler, injected by Fx.
func NewPostHandler(uc usecase.PostUsecase, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListFeed returns the most recent posts across all NGOs.
func (h *PostHandler) ListFeed(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "INVALID_INPUT", "limit must be a non-negative integer")
		}
		limit = parsed
	}

	posts, err := h.uc.ListFeed(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, posts, "Feed retrieved successfully")
}

// GetPost returns a single post with its NGO joined in.
func (h *PostHandler) GetPost(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid post ID")
	}

	post, err := h.uc.GetPost(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post, "Post retrieved successfully")
}

// ListByNGO returns every post published by one NGO.
func (h *PostHandler) ListByNGO(c echo.Context) error {
	ngoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid NGO ID")
	}

	posts, err := h.uc.ListByNGO(c.Request().Context(), ngoID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, posts, "Posts retrieved successfully")
}

// CreatePost publishes a new feed post. Admin only.
func (h *PostHandler) CreatePost(c echo.Context) error {
	var input *usecase.CreatePostInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}

	post, err := h.uc.CreatePost(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, post, "Post created successfully")
}
