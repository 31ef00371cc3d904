// Package model contains the GORM-specific structs mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. The primary key is the subject
// issued by the external identity service, so there is no DB-side default.
type ProfileModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Username    string    `gorm:"type:varchar(100);uniqueIndex"`
	FullName    string    `gorm:"type:varchar(255)"`
	AvatarURL   string    `gorm:"type:text"`
	Bio         string    `gorm:"type:text"`
	Interests   []string  `gorm:"type:jsonb;serializer:json"`
	ImpactScore int       `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
