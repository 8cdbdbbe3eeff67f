package summary

import (
	"context"
	"testing"
	"time"

	"guideflow/config"
	"guideflow/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newZeroDelayService() *templateService {
	cfg := &config.Config{Summary: &config.SummaryConfig{Delay: 0}}

	return NewTemplateService(cfg).(*templateService)
}

func steps(titles ...string) []entity.Step {
	out := make([]entity.Step, 0, len(titles))
	for i, title := range titles {
		out = append(out, entity.Step{Title: title, Order: i})
	}

	return out
}

func TestTemplateService_Summarize(t *testing.T) {
	svc := newZeroDelayService()

	guide := &entity.Guide{
		Title: "Deploy App",
		Steps: steps("Setup", "Build", "Deploy"),
	}

	text, err := svc.Summarize(context.Background(), guide)
	require.NoError(t, err)

	assert.Contains(t, text, `This guide titled "Deploy App" consists of 3 steps.`)
	assert.Contains(t, text, "Setup, Build, Deploy")
	assert.Contains(t, text, "It effectively demonstrates the workflow with clear instructions.")
}

func TestTemplateService_SummarizeListsOnlyFirstThreeTitles(t *testing.T) {
	svc := newZeroDelayService()

	guide := &entity.Guide{
		Title: "Long Guide",
		Steps: steps("One", "Two", "Three", "Four", "Five"),
	}

	text, err := svc.Summarize(context.Background(), guide)
	require.NoError(t, err)

	// The count reflects the full sequence, the listing is clipped to three.
	assert.Contains(t, text, "consists of 5 steps")
	assert.Contains(t, text, "including: One, Two, Three...")
	assert.NotContains(t, text, "Four")
}

func TestTemplateService_SummarizeKeepsQuotesInTitleRaw(t *testing.T) {
	svc := newZeroDelayService()

	guide := &entity.Guide{
		Title: `Deploy "fast" now`,
		Steps: steps("Setup", "Ship"),
	}

	text, err := svc.Summarize(context.Background(), guide)
	require.NoError(t, err)

	assert.Equal(t,
		`This guide titled "Deploy "fast" now" consists of 2 steps. It covers key aspects including: Setup, Ship... It effectively demonstrates the workflow with clear instructions.`,
		text,
	)
	assert.NotContains(t, text, `\"`)
}

func TestTemplateService_SummarizeEmptyGuide(t *testing.T) {
	svc := newZeroDelayService()

	guide := &entity.Guide{Title: "Empty"}

	text, err := svc.Summarize(context.Background(), guide)
	require.NoError(t, err)

	assert.Contains(t, text, "consists of 0 steps")
	assert.Contains(t, text, "including: ...")
}

func TestTemplateService_SummarizeHonorsCancellation(t *testing.T) {
	cfg := &config.Config{Summary: &config.SummaryConfig{Delay: time.Minute}}
	svc := NewTemplateService(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Summarize(ctx, &entity.Guide{Title: "Slow"})
	assert.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
