// Package summary implements the guide summary service as a deterministic
// string template. No model is called; an artificial delay stands in for
// inference time so clients can exercise their loading states.
package summary

import (
	"context"
	"fmt"
	"strings"
	"time"

	"guideflow/config"
	"guideflow/internal/domain/entity"
	"guideflow/internal/domain/service"

	"github.com/pkg/errors"
)

// maxListedSteps bounds how many step titles appear in the summary text.
// The step count in the text always reflects the full sequence.
const maxListedSteps = 3

// templateService is a concrete implementation of the SummaryService interface.
type templateService struct {
	delay time.Duration
}

// NewTemplateService is the constructor for templateService.
func NewTemplateService(cfg *config.Config) service.SummaryService {
	var delay time.Duration
	if cfg != nil && cfg.Summary != nil {
		delay = cfg.Summary.Delay
	}

	return &templateService{delay: delay}
}

// Summarize derives the summary string from the guide's title and up to the
// first three step titles, then waits out the configured delay. The wait is
// cancellable through the request context.
func (s *templateService) Summarize(ctx context.Context, guide *entity.Guide) (string, error) {
	titles := make([]string, 0, maxListedSteps)
	for i, step := range guide.Steps {
		if i == maxListedSteps {
			break
		}
		titles = append(titles, step.Title)
	}

	// The title is interpolated raw between literal quotes; quotes inside the
	// title must pass through unescaped.
	text := fmt.Sprintf(
		"This guide titled \"%s\" consists of %d steps. It covers key aspects including: %s... It effectively demonstrates the workflow with clear instructions.",
		guide.Title,
		len(guide.Steps),
		strings.Join(titles, ", "),
	)

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return "", errors.Wrap(ctx.Err(), "summary cancelled")
		case <-timer.C:
		}
	}

	return text, nil
}
