package usecase

import (
	"context"

	"guideflow/internal/domain/entity"

	"github.com/google/uuid"
)

// StepInput is one step in a create or update request. Array order is the
// step order; contents are deliberately permissive.
type StepInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Order       int    `json:"order"`
}

// CreateGuideInput defines the data required to create a guide.
type CreateGuideInput struct {
	Title       string      `json:"title" validate:"required"`
	Description string      `json:"description"`
	Steps       []StepInput `json:"steps"`
}

// UpdateGuideInput defines the data for a full-replace update. The step
// sequence is replaced wholesale, never merged.
type UpdateGuideInput struct {
	Title       string      `json:"title" validate:"required"`
	Description string      `json:"description"`
	Steps       []StepInput `json:"steps"`
}

// SummaryOutput carries the derived guide summary.
type SummaryOutput struct {
	Summary string `json:"summary"`
}

// GuideUsecase defines the interface for guide-related business operations.
// Ownership is enforced here: reads and mutations of a guide are restricted
// to its owner, while summarize only requires the guide to exist.
type GuideUsecase interface {
	// Create authors a new guide owned by ownerID. Steps default to an empty
	// sequence when absent.
	Create(ctx context.Context, ownerID uuid.UUID, input *CreateGuideInput) (*entity.Guide, error)

	// ListOwned returns the caller's guides, most recently created first.
	ListOwned(ctx context.Context, ownerID uuid.UUID) ([]*entity.Guide, error)

	// Get returns the guide when the requester owns it.
	Get(ctx context.Context, id, requesterID uuid.UUID) (*entity.Guide, error)

	// Update fully replaces title, description, and steps when the requester
	// owns the guide. Owner and creation timestamp are immutable.
	Update(ctx context.Context, id, requesterID uuid.UUID, input *UpdateGuideInput) (*entity.Guide, error)

	// Delete permanently removes the guide when the requester owns it.
	// Feedback referencing the guide is not cascade-deleted.
	Delete(ctx context.Context, id, requesterID uuid.UUID) error

	// Summarize derives the mocked AI summary for the guide.
	Summarize(ctx context.Context, id uuid.UUID) (*SummaryOutput, error)
}
