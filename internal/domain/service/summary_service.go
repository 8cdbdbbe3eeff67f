package service

import (
	"context"

	"guideflow/internal/domain/entity"
)

// SummaryService produces a human-readable summary of a guide. The current
// implementation is a deterministic string template standing in for a model
// call; the interface keeps the use case layer unaware of that.
type SummaryService interface {
	// Summarize derives a summary from the guide's title and step titles.
	// Implementations may suspend for a configured delay; they must honor
	// context cancellation while doing so.
	Summarize(ctx context.Context, guide *entity.Guide) (string, error)
}
