package model

import (
	"time"

	"github.com/google/uuid"
)

// PostModel mirrors the 'posts' table.
type PostModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	NGOID       uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title       string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text"`
	ImageURL    string         `gorm:"type:text"`
	PostType    string         `gorm:"type:varchar(20);not null"`
	ActionData  map[string]any `gorm:"type:jsonb;serializer:json"`
	CreatedAt   time.Time      `gorm:"index:idx_posts_created,sort:desc"`
	UpdatedAt   time.Time

	NGO *NGOModel `gorm:"foreignKey:NGOID"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}
