package model

import (
	"time"

	"github.com/google/uuid"
)

// NGOModel mirrors the 'ngos' table. PostgreSQL generates UUIDs via gen_random_uuid().
type NGOModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name          string         `gorm:"type:varchar(255);not null"`
	Description   string         `gorm:"type:text"`
	LogoURL       string         `gorm:"type:text"`
	CoverImageURL string         `gorm:"type:text"`
	Category      string         `gorm:"type:varchar(50);index"`
	Location      string         `gorm:"type:varchar(255)"`
	ImpactMetrics map[string]any `gorm:"type:jsonb;serializer:json"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (NGOModel) TableName() string {
	return "ngos"
}
