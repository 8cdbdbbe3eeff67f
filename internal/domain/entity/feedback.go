package entity

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is a star rating with an optional comment left by any
// authenticated user against a guide. Records are append-only: there is no
// update or delete, and retrieval is always scoped to one guide.
type Feedback struct {
	ID        uuid.UUID `json:"id"`        // The unique identifier for the feedback record.
	GuideID   uuid.UUID `json:"guideId"`   // The guide this feedback refers to. Weak reference, no cascade.
	AuthorID  uuid.UUID `json:"authorId"`  // The account that left the feedback.
	Rating    int       `json:"rating"`    // Integer in [1,5].
	Comment   string    `json:"comment"`   // Optional free text.
	CreatedAt time.Time `json:"createdAt"` // Server-assigned at creation.
}

// FeedbackWithAuthor is a feedback record enriched with the author's display
// name for listings. The join is read-only.
type FeedbackWithAuthor struct {
	Feedback
	AuthorName string
}
