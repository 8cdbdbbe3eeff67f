package usecase

import (
	"context"
	"time"

	"guideflow/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateFeedbackInput defines the data required to leave feedback on a guide.
// The guide reference is accepted as-is; existence is not verified at write
// time, matching the source behavior.
type CreateFeedbackInput struct {
	GuideID uuid.UUID `json:"guideId" validate:"required"`
	Rating  int       `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string    `json:"comment"`
}

// FeedbackEntry is one feedback record in a listing, with the author's
// display name joined in.
type FeedbackEntry struct {
	ID         uuid.UUID `json:"id"`
	GuideID    uuid.UUID `json:"guideId"`
	AuthorID   uuid.UUID `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewFeedbackEntry maps an enriched feedback entity to its listing shape.
func NewFeedbackEntry(fb *entity.FeedbackWithAuthor) *FeedbackEntry {
	if fb == nil {
		return nil
	}

	return &FeedbackEntry{
		ID:         fb.ID,
		GuideID:    fb.GuideID,
		AuthorID:   fb.AuthorID,
		AuthorName: fb.AuthorName,
		Rating:     fb.Rating,
		Comment:    fb.Comment,
		CreatedAt:  fb.CreatedAt,
	}
}

// FeedbackUsecase defines the interface for feedback-related business
// operations. Feedback is append-only and not ownership-scoped: any
// authenticated account may rate any guide.
type FeedbackUsecase interface {
	// Create records a rating with an optional comment. Ratings outside
	// [1,5] are rejected before touching storage.
	Create(ctx context.Context, authorID uuid.UUID, input *CreateFeedbackInput) (*entity.Feedback, error)

	// ListByGuide returns all feedback for a guide, creation time ascending,
	// each entry carrying the author's display name.
	ListByGuide(ctx context.Context, guideID uuid.UUID) ([]*FeedbackEntry, error)
}
