package impl

import (
	"context"
	"testing"

	domainerrors "kindred/internal/domain/errors"
	"kindred/internal/domain/service"
	mockSvc "kindred/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionService_RecordSignIn(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	userID := uuid.New()

	publisher.EXPECT().
		PublishMatchEvent(mock.Anything, mock.Anything).
		Run(func(_ context.Context, event *service.MatchEvent) {
			assert.Equal(t, service.MatchScopeUser, event.Scope)
			assert.Equal(t, userID.String(), event.UserID)
			assert.Equal(t, "req-42", event.RequestID)
			assert.Equal(t, "sign-in", event.Reason)
		}).
		Return(nil)

	svc := NewSessionService(SessionServiceParams{
		Publisher: publisher,
		Logger:    testLogger(),
	})

	err := svc.RecordSignIn(context.Background(), userID, "req-42")
	require.NoError(t, err)
}

func TestSessionService_RecordSignIn_PublishFails(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)

	publisher.EXPECT().
		PublishMatchEvent(mock.Anything, mock.Anything).
		Return(errors.New("broker unreachable"))

	svc := NewSessionService(SessionServiceParams{
		Publisher: publisher,
		Logger:    testLogger(),
	})

	err := svc.RecordSignIn(context.Background(), uuid.New(), "")
	assert.ErrorIs(t, err, domainerrors.ErrEventPublishFailed)
}
