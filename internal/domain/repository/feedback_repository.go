package repository

import (
	"context"

	"guideflow/internal/domain/entity"

	"github.com/google/uuid"
)

// FeedbackRepository defines the standard operations for feedback persistence.
// Feedback is append-only: there is no update or delete. The guide reference
// is weak on purpose; deleting a guide leaves its feedback rows behind.
type FeedbackRepository interface {
	// Create persists a new feedback record and fills in the generated ID and
	// creation timestamp. It does not verify that the referenced guide exists.
	Create(ctx context.Context, feedback *entity.Feedback) error

	// ListByGuide retrieves all feedback for a guide, each record enriched
	// with the author's display name, ordered by creation time ascending.
	ListByGuide(ctx context.Context, guideID uuid.UUID) ([]*entity.FeedbackWithAuthor, error)
}
