// Package handler contains the Pub/Sub push handlers for the match worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"kindred/config"
	deliverycontext "kindred/internal/delivery/context"
	"kindred/internal/domain/constants"
	domainerrors "kindred/internal/domain/errors"
	"kindred/internal/domain/service"
	"kindred/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// RecomputeHandler handles Pub/Sub push messages that trigger affinity score
// recomputes.
type RecomputeHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	matchUsecase   usecase.MatchUsecase
}

// RecomputeHandlerParams holds dependencies for the RecomputeHandler
type RecomputeHandlerParams struct {
	fx.In

	Config       *config.Config
	Logger       *slog.Logger
	MatchUsecase usecase.MatchUsecase
}

// NewRecomputeHandler creates a new Pub/Sub push handler
func NewRecomputeHandler(params RecomputeHandlerParams) *RecomputeHandler {
	// Push requests are only signed when they come from Google Pub/Sub,
	// and local development skips verification entirely.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &RecomputeHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		matchUsecase:   params.MatchUsecase,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *RecomputeHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.MatchEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse match event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(c, &pushMsg, &event)

	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing match event",
		slog.String("scope", event.Scope),
		slog.String("user_id", event.UserID),
		slog.String("reason", event.Reason),
	)

	scored, err := h.processEvent(ctx, &event)
	if err != nil {
		reqLogger.Error("[Worker] Failed to process match event",
			slog.String("scope", event.Scope),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Match event processed successfully",
		slog.String("scope", event.Scope),
		slog.Int("pairs_scored", scored),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *RecomputeHandler) extractRequestID(c echo.Context, pushMsg *PubSubMessage, event *service.MatchEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(c.Request().Context()); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// processEvent dispatches the event to the matching engine based on scope.
// A malformed event is permanent and must not be retried; a failing store is
// transient and retryable. Recomputes are idempotent, so a retry after
// partial progress is safe.
func (h *RecomputeHandler) processEvent(ctx context.Context, event *service.MatchEvent) (int, error) {
	switch event.Scope {
	case service.MatchScopeUser:
		userID, err := uuid.Parse(event.UserID)
		if err != nil {
			return 0, errors.Wrap(err, "invalid user_id in match event")
		}

		scored, err := h.matchUsecase.RecomputeForUser(ctx, userID)
		if err != nil {
			// A user without a profile yields nothing to score; redelivering
			// the same event cannot change that, so ack it.
			if errors.Is(err, domainerrors.ErrProfileNotFound) {
				return 0, err
			}

			return 0, newRetryableError(err)
		}

		return scored, nil

	case service.MatchScopeAll:
		scored, err := h.matchUsecase.RecomputeAll(ctx)
		if err != nil {
			return scored, newRetryableError(err)
		}

		return scored, nil

	default:
		return 0, errors.Errorf("unknown match event scope: %q", event.Scope)
	}
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience must match the URL of this push endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
