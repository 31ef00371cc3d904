package model

import (
	"time"

	"github.com/google/uuid"
)

// NGOMatchModel mirrors the 'user_ngo_matches' table. The composite primary
// key on (user_id, ngo_id) backs the affinity store's uniqueness invariant
// and is the conflict target of the score upsert.
type NGOMatchModel struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey;index:idx_user_score,priority:1"`
	NGOID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	MatchScore float64   `gorm:"type:decimal(5,2);not null;index:idx_user_score,priority:2,sort:desc"`
	IsAdopted  bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	NGO *NGOModel `gorm:"foreignKey:NGOID"`
}

// TableName explicitly sets the table name for GORM.
func (NGOMatchModel) TableName() string {
	return "user_ngo_matches"
}
