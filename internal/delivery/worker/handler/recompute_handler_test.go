package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"kindred/config"
	deliverycontext "kindred/internal/delivery/context"
	domainerrors "kindred/internal/domain/errors"
	"kindred/internal/domain/service"
	mockusecase "kindred/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*RecomputeHandler, *mockusecase.MockMatchUsecase) {
	t.Helper()

	matchUsecase := mockusecase.NewMockMatchUsecase(t)
	handler := NewRecomputeHandler(RecomputeHandlerParams{
		Config:       &config.Config{},
		Logger:       slog.New(slog.DiscardHandler),
		MatchUsecase: matchUsecase,
	})

	return handler, matchUsecase
}

func pushRequest(t *testing.T, event *service.MatchEvent, attributes map[string]string) *http.Request {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var envelope PubSubMessage
	envelope.Message.Data = base64.StdEncoding.EncodeToString(payload)
	envelope.Message.Attributes = attributes
	envelope.Message.MessageID = uuid.NewString()
	envelope.Subscription = "projects/local/subscriptions/match-sub"

	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestRecomputeHandler_UserScope(t *testing.T) {
	handler, matchUsecase := newTestHandler(t)
	userID := uuid.New()

	matchUsecase.EXPECT().
		RecomputeForUser(mock.Anything, userID).
		Return(42, nil).
		Once()

	req := pushRequest(t, &service.MatchEvent{
		Scope:  service.MatchScopeUser,
		UserID: userID.String(),
		Reason: "sign-in",
	}, nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecomputeHandler_AllScope(t *testing.T) {
	handler, matchUsecase := newTestHandler(t)

	matchUsecase.EXPECT().
		RecomputeAll(mock.Anything).
		Return(1500, nil).
		Once()

	req := pushRequest(t, &service.MatchEvent{
		Scope:  service.MatchScopeAll,
		Reason: "scheduled",
	}, nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecomputeHandler_RequestIDFromAttributes(t *testing.T) {
	handler, matchUsecase := newTestHandler(t)
	userID := uuid.New()

	var seenRequestID string
	matchUsecase.EXPECT().
		RecomputeForUser(mock.Anything, userID).
		Run(func(ctx context.Context, _ uuid.UUID) {
			seenRequestID = deliverycontext.GetRequestIDFromContext(ctx)
		}).
		Return(1, nil).
		Once()

	req := pushRequest(t, &service.MatchEvent{
		Scope:  service.MatchScopeUser,
		UserID: userID.String(),
	}, map[string]string{"request_id": "req-123"})
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, "req-123", seenRequestID)
}

func TestRecomputeHandler_InvalidBase64(t *testing.T) {
	handler, _ := newTestHandler(t)

	body := `{"message":{"data":"%%% not base64 %%%"},"subscription":"s"}`
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader([]byte(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecomputeHandler_UnknownScope_NotRetried(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := pushRequest(t, &service.MatchEvent{Scope: "tags"}, nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	// Permanent failures ack the message so Pub/Sub stops redelivering it.
	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecomputeHandler_MalformedUserID_NotRetried(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := pushRequest(t, &service.MatchEvent{
		Scope:  service.MatchScopeUser,
		UserID: "not-a-uuid",
	}, nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecomputeHandler_UnknownProfile_NotRetried(t *testing.T) {
	handler, matchUsecase := newTestHandler(t)
	userID := uuid.New()

	matchUsecase.EXPECT().
		RecomputeForUser(mock.Anything, userID).
		Return(0, domainerrors.ErrProfileNotFound).
		Once()

	req := pushRequest(t, &service.MatchEvent{
		Scope:  service.MatchScopeUser,
		UserID: userID.String(),
	}, nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecomputeHandler_StoreFailure_Retried(t *testing.T) {
	handler, matchUsecase := newTestHandler(t)
	userID := uuid.New()

	matchUsecase.EXPECT().
		RecomputeForUser(mock.Anything, userID).
		Return(0, errors.New("connection refused")).
		Once()

	req := pushRequest(t, &service.MatchEvent{
		Scope:  service.MatchScopeUser,
		UserID: userID.String(),
	}, nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
