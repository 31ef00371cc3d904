package model

import (
	"time"

	"github.com/google/uuid"
)

// UserActionModel mirrors the 'user_actions' table.
type UserActionModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index"`
	PostID        uuid.UUID      `gorm:"type:uuid;not null;index"`
	ActionType    string         `gorm:"type:varchar(20);not null"`
	ActionDetails map[string]any `gorm:"type:jsonb;serializer:json"`
	TransactionID string         `gorm:"type:varchar(255)"`
	CreatedAt     time.Time

	Post *PostModel `gorm:"foreignKey:PostID"`
}

// TableName explicitly sets the table name for GORM.
func (UserActionModel) TableName() string {
	return "user_actions"
}
