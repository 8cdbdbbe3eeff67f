package impl

import (
	"context"
	"log/slog"

	deliverycontext "guideflow/internal/delivery/context"
	"guideflow/internal/domain/entity"
	domainerrors "guideflow/internal/domain/errors"
	"guideflow/internal/domain/repository"
	"guideflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// feedbackService implements the FeedbackUsecase interface.
type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	logger       *slog.Logger
}

// FeedbackServiceParams holds dependencies for feedbackService, injected by Fx.
type FeedbackServiceParams struct {
	fx.In

	FeedbackRepo repository.FeedbackRepository
	Logger       *slog.Logger
}

// NewFeedbackService is the constructor for feedbackService.
func NewFeedbackService(params FeedbackServiceParams) usecase.FeedbackUsecase {
	return &feedbackService{
		feedbackRepo: params.FeedbackRepo,
		logger:       params.Logger,
	}
}

func (srv *feedbackService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create records a rating with an optional comment. The rating range is
// enforced here; the guide reference is accepted unverified on purpose.
func (srv *feedbackService) Create(ctx context.Context, authorID uuid.UUID, input *usecase.CreateFeedbackInput) (*entity.Feedback, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrRatingOutOfRange.WrapMessage("rating outside [1,5]")
	}

	feedback := &entity.Feedback{
		GuideID:  input.GuideID,
		AuthorID: authorID,
		Rating:   input.Rating,
		Comment:  input.Comment,
	}

	if err := srv.feedbackRepo.Create(ctx, feedback); err != nil {
		srv.log(ctx).Error("Failed to create feedback",
			slog.Any("guideID", input.GuideID),
			slog.Any("authorID", authorID),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Debug("Feedback created", slog.Any("feedbackID", feedback.ID), slog.Any("guideID", feedback.GuideID))

	return feedback, nil
}

// ListByGuide returns all feedback for a guide with author names joined.
func (srv *feedbackService) ListByGuide(ctx context.Context, guideID uuid.UUID) ([]*usecase.FeedbackEntry, error) {
	records, err := srv.feedbackRepo.ListByGuide(ctx, guideID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list feedback")
	}

	entries := make([]*usecase.FeedbackEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, usecase.NewFeedbackEntry(record))
	}

	return entries, nil
}
