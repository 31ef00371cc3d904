package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserAction records that a donor acted on a feed post. Payment settlement
// happens elsewhere; TransactionID is an opaque reference supplied by the
// caller once the external flow completes.
type UserAction struct {
	ID            uuid.UUID      `json:"id"`
	UserID        uuid.UUID      `json:"user_id"`
	PostID        uuid.UUID      `json:"post_id"`
	ActionType    PostType       `json:"action_type"`
	ActionDetails map[string]any `json:"action_details"`
	TransactionID string         `json:"transaction_id,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`

	Post *Post `json:"post,omitempty"` // Populated on history reads.
}
