package entity

import (
	"time"

	"github.com/google/uuid"
)

// PostType distinguishes the kinds of calls-to-action an NGO can publish.
type PostType string

const (
	PostTypeDonation  PostType = "donation"
	PostTypeVolunteer PostType = "volunteer"
	PostTypePetition  PostType = "petition"
)

// Valid reports whether the post type is one of the known values.
func (t PostType) Valid() bool {
	switch t {
	case PostTypeDonation, PostTypeVolunteer, PostTypePetition:
		return true
	default:
		return false
	}
}

// Post is one entry in the action feed, published on behalf of an NGO.
type Post struct {
	ID          uuid.UUID      `json:"id"`
	NGOID       uuid.UUID      `json:"ngo_id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	ImageURL    string         `json:"image_url"`
	PostType    PostType       `json:"post_type"`
	ActionData  map[string]any `json:"action_data"` // Type-specific payload (goal amount, petition link, ...).
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`

	NGO *NGO `json:"ngo,omitempty"` // Populated on feed reads.
}
