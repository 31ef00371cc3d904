package impl

import (
	"context"
	"log/slog"

	domainerrors "kindred/internal/domain/errors"
	"kindred/internal/domain/service"
	"kindred/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type sessionService struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewSessionService creates a new session service instance
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// RecordSignIn publishes a user-scoped recompute event. The recompute itself
// runs in the worker; the sign-in flow only waits on the publish.
func (s *sessionService) RecordSignIn(ctx context.Context, userID uuid.UUID, requestID string) error {
	event := &service.MatchEvent{
		RequestID: requestID,
		Scope:     service.MatchScopeUser,
		UserID:    userID.String(),
		Reason:    "sign-in",
	}

	if err := s.publisher.PublishMatchEvent(ctx, event); err != nil {
		s.logger.Error("failed to publish match event",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)

		return domainerrors.ErrEventPublishFailed
	}

	s.logger.Info("sign-in match event published",
		slog.String("user_id", userID.String()),
	)

	return nil
}
