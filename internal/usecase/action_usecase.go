package usecase

import (
	"context"

	"kindred/internal/domain/entity"

	"github.com/google/uuid"
)

// ActionUsecase defines the interface for recording and reading donor actions.
type ActionUsecase interface {
	// RecordAction persists the action and increments the acting user's
	// impact score in one database transaction.
	RecordAction(ctx context.Context, userID uuid.UUID, input *RecordActionInput) (*entity.UserAction, error)

	// ListUserActions returns a user's actions with posts and NGOs joined in,
	// newest first.
	ListUserActions(ctx context.Context, userID uuid.UUID) ([]*entity.UserAction, error)
}

// --- Input DTOs ---

// RecordActionInput defines the data required to record a donor action.
// TransactionID is an opaque reference from the external payment flow.
type RecordActionInput struct {
	PostID        uuid.UUID      `json:"post_id"`
	ActionType    string         `json:"action_type"`
	ActionDetails map[string]any `json:"action_details"`
	TransactionID string         `json:"transaction_id"`
}
