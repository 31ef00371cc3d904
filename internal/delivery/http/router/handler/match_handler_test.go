package handler

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"kindred/internal/domain/entity"
	mockusecase "kindred/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func authedContext(req *http.Request, rec *httptest.ResponseRecorder, userID uuid.UUID) echo.Context {
	c := echo.New().NewContext(req, rec)
	c.Set("userID", userID)
	c.Set("roles", []string{"user"})

	return c
}

func TestMatchHandler_GetMatches(t *testing.T) {
	matchUsecase := mockusecase.NewMockMatchUsecase(t)
	handler := NewMatchHandler(matchUsecase, slog.New(slog.DiscardHandler))

	userID := uuid.New()
	ngo := &entity.NGO{ID: uuid.New(), Name: "Riverkeepers", Category: entity.CategoryEnvironment}
	matchUsecase.EXPECT().
		GetRankedMatches(mock.Anything, userID, 10).
		Return([]*entity.RankedMatch{
			{NGOMatch: entity.NGOMatch{UserID: userID, NGOID: ngo.ID, MatchScore: 85}, NGO: ngo},
		}, nil).
		Once()

	req := httptest.NewRequest(http.MethodGet, "/me/matches?limit=10", nil)
	rec := httptest.NewRecorder()
	c := authedContext(req, rec, userID)

	require.NoError(t, handler.GetMatches(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Riverkeepers")
	assert.Contains(t, rec.Body.String(), `"match_score":85`)
}

func TestMatchHandler_GetMatches_InvalidLimit(t *testing.T) {
	matchUsecase := mockusecase.NewMockMatchUsecase(t)
	handler := NewMatchHandler(matchUsecase, slog.New(slog.DiscardHandler))

	req := httptest.NewRequest(http.MethodGet, "/me/matches?limit=ten", nil)
	rec := httptest.NewRecorder()
	c := authedContext(req, rec, uuid.New())

	require.NoError(t, handler.GetMatches(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMatchHandler_GetMatches_MissingAuth(t *testing.T) {
	matchUsecase := mockusecase.NewMockMatchUsecase(t)
	handler := NewMatchHandler(matchUsecase, slog.New(slog.DiscardHandler))

	req := httptest.NewRequest(http.MethodGet, "/me/matches", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, handler.GetMatches(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMatchHandler_SetAdopted(t *testing.T) {
	matchUsecase := mockusecase.NewMockMatchUsecase(t)
	handler := NewMatchHandler(matchUsecase, slog.New(slog.DiscardHandler))

	userID := uuid.New()
	ngoID := uuid.New()
	matchUsecase.EXPECT().
		SetAdopted(mock.Anything, userID, ngoID, true).
		Return(&entity.NGOMatch{UserID: userID, NGOID: ngoID, MatchScore: 60, IsAdopted: true}, nil).
		Once()

	req := httptest.NewRequest(http.MethodPut, "/me/matches/"+ngoID.String()+"/adoption",
		bytes.NewReader([]byte(`{"adopted":true}`)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(req, rec, userID)
	c.SetParamNames("ngoID")
	c.SetParamValues(ngoID.String())

	require.NoError(t, handler.SetAdopted(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"is_adopted":true`)
}

func TestMatchHandler_SetAdopted_InvalidNGOID(t *testing.T) {
	matchUsecase := mockusecase.NewMockMatchUsecase(t)
	handler := NewMatchHandler(matchUsecase, slog.New(slog.DiscardHandler))

	req := httptest.NewRequest(http.MethodPut, "/me/matches/abc/adoption",
		bytes.NewReader([]byte(`{"adopted":true}`)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(req, rec, uuid.New())
	c.SetParamNames("ngoID")
	c.SetParamValues("abc")

	require.NoError(t, handler.SetAdopted(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
