package repository

import (
	"context"
	"errors"

	"guideflow/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrGuideNotFound is a domain-specific error returned when a guide is not found.
var ErrGuideNotFound = errors.New("guide not found")

// GuideRepository defines the standard operations for guide persistence.
// Ownership checks live in the use case layer; the repository only moves data.
type GuideRepository interface {
	// Create persists a new guide and fills in the generated ID and timestamps.
	Create(ctx context.Context, guide *entity.Guide) error

	// FindByID retrieves a single guide by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Guide, error)

	// ListByOwner retrieves all guides owned by the given account,
	// most recently created first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Guide, error)

	// Update wholesale-replaces the guide's title, description, and steps.
	// Owner and creation timestamp are never touched.
	Update(ctx context.Context, guide *entity.Guide) error

	// Delete permanently removes the guide. Feedback referencing it is left
	// in place; see the feedback repository for the orphan policy.
	Delete(ctx context.Context, id uuid.UUID) error
}
