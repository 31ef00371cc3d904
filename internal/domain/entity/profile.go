// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents a donor profile. The identifier is issued by the
// external identity service; a profile row is created on the first
// authenticated request for that subject.
type Profile struct {
	ID          uuid.UUID `json:"id"`           // Stable identifier, equals the identity provider's subject.
	Username    string    `json:"username"`     // Public handle, may be empty.
	FullName    string    `json:"full_name"`    // Display name, may be empty.
	AvatarURL   string    `json:"avatar_url"`   // Optional avatar image URL.
	Bio         string    `json:"bio"`          // Free-text bio, may be empty.
	Interests   []string  `json:"interests"`    // Unordered interest tags, may be empty.
	ImpactScore int       `json:"impact_score"` // Monotonically non-decreasing, bumped by recorded actions.
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
