package entity

import (
	"time"

	"github.com/google/uuid"
)

// Guide is a user-authored multi-step document. It has exactly one owner; only
// the owner may read, update, or delete it. An update wholesale-replaces the
// title, description, and step sequence.
type Guide struct {
	ID          uuid.UUID `json:"id"`          // The unique identifier for the guide.
	Title       string    `json:"title"`       // Required, non-empty.
	Description string    `json:"description"` // Optional free text.
	Steps       []Step    `json:"steps"`       // Ordered step sequence. Order is caller-supplied and significant.
	OwnerID     uuid.UUID `json:"ownerId"`     // The owning account. Immutable after creation.
	CreatedAt   time.Time `json:"createdAt"`   // Server-assigned at creation. Immutable.
	UpdatedAt   time.Time `json:"updatedAt"`   // Timestamp of the last modification.
}

// Step is one ordered entry within a guide. It is a value object owned
// exclusively by its parent guide and has no identity or lifecycle of its own.
// Step contents are permissive: titles, descriptions, and images may be empty.
type Step struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Order       int    `json:"order"`
}
