package impl

import (
	"context"
	"log/slog"

	deliverycontext "guideflow/internal/delivery/context"
	"guideflow/internal/domain/entity"
	domainerrors "guideflow/internal/domain/errors"
	"guideflow/internal/domain/repository"
	"guideflow/internal/domain/service"
	"guideflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// guideService implements the GuideUsecase interface.
type guideService struct {
	guideRepo      repository.GuideRepository
	summaryService service.SummaryService
	logger         *slog.Logger
}

// GuideServiceParams holds dependencies for guideService, injected by Fx.
type GuideServiceParams struct {
	fx.In

	GuideRepo      repository.GuideRepository
	SummaryService service.SummaryService
	Logger         *slog.Logger
}

// NewGuideService is the constructor for guideService.
func NewGuideService(params GuideServiceParams) usecase.GuideUsecase {
	return &guideService{
		guideRepo:      params.GuideRepo,
		summaryService: params.SummaryService,
		logger:         params.Logger,
	}
}

func (srv *guideService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create authors a new guide owned by ownerID.
func (srv *guideService) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateGuideInput) (*entity.Guide, error) {
	if input.Title == "" {
		return nil, domainerrors.ErrGuideTitleRequired.WrapMessage("missing title on create")
	}

	guide := &entity.Guide{
		Title:       input.Title,
		Description: input.Description,
		Steps:       stepsFromInput(input.Steps),
		OwnerID:     ownerID,
	}

	if err := srv.guideRepo.Create(ctx, guide); err != nil {
		srv.log(ctx).Error("Failed to create guide", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Guide created", slog.Any("guideID", guide.ID), slog.Any("ownerID", ownerID))

	return guide, nil
}

// ListOwned returns the caller's guides, newest first.
func (srv *guideService) ListOwned(ctx context.Context, ownerID uuid.UUID) ([]*entity.Guide, error) {
	guides, err := srv.guideRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owned guides")
	}

	return guides, nil
}

// Get returns the guide when the requester owns it. Non-owners receive a
// forbidden error, distinct from the unauthenticated case.
func (srv *guideService) Get(ctx context.Context, id, requesterID uuid.UUID) (*entity.Guide, error) {
	guide, err := srv.loadOwned(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}

	return guide, nil
}

// Update fully replaces title, description, and steps. Owner and creation
// timestamp are immutable.
func (srv *guideService) Update(ctx context.Context, id, requesterID uuid.UUID, input *usecase.UpdateGuideInput) (*entity.Guide, error) {
	if input.Title == "" {
		return nil, domainerrors.ErrGuideTitleRequired.WrapMessage("missing title on update")
	}

	guide, err := srv.loadOwned(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}

	guide.Title = input.Title
	guide.Description = input.Description
	guide.Steps = stepsFromInput(input.Steps)

	if err := srv.guideRepo.Update(ctx, guide); err != nil {
		if errors.Is(err, repository.ErrGuideNotFound) {
			// Deleted between the ownership check and the write.
			return nil, domainerrors.ErrGuideNotFound.WrapMessage("guide vanished during update")
		}

		srv.log(ctx).Error("Failed to update guide", slog.Any("guideID", id), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Guide updated", slog.Any("guideID", id))

	return guide, nil
}

// Delete permanently removes the guide. Feedback referencing it stays behind
// as orphaned records; there is no cascade.
func (srv *guideService) Delete(ctx context.Context, id, requesterID uuid.UUID) error {
	if _, err := srv.loadOwned(ctx, id, requesterID); err != nil {
		return err
	}

	if err := srv.guideRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrGuideNotFound) {
			return domainerrors.ErrGuideNotFound.WrapMessage("guide vanished during delete")
		}

		srv.log(ctx).Error("Failed to delete guide", slog.Any("guideID", id), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Debug("Guide deleted", slog.Any("guideID", id))

	return nil
}

// Summarize derives the mocked AI summary. Only existence is required; the
// endpoint is not ownership-scoped.
func (srv *guideService) Summarize(ctx context.Context, id uuid.UUID) (*usecase.SummaryOutput, error) {
	guide, err := srv.guideRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrGuideNotFound) {
			return nil, domainerrors.ErrGuideNotFound.WrapMessage("cannot summarize missing guide")
		}

		return nil, errors.Wrap(err, "failed to load guide for summary")
	}

	text, err := srv.summaryService.Summarize(ctx, guide)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive summary")
	}

	return &usecase.SummaryOutput{Summary: text}, nil
}

// loadOwned fetches a guide and enforces that requesterID owns it.
func (srv *guideService) loadOwned(ctx context.Context, id, requesterID uuid.UUID) (*entity.Guide, error) {
	guide, err := srv.guideRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrGuideNotFound) {
			return nil, domainerrors.ErrGuideNotFound.WrapMessage("no such guide")
		}

		return nil, errors.Wrap(err, "failed to load guide")
	}

	if guide.OwnerID != requesterID {
		srv.log(ctx).Warn("Ownership check failed",
			slog.Any("guideID", id),
			slog.Any("requesterID", requesterID),
		)

		return nil, domainerrors.ErrNotGuideOwner.WrapMessage("requester does not own this guide")
	}

	return guide, nil
}

func stepsFromInput(inputs []usecase.StepInput) []entity.Step {
	steps := make([]entity.Step, 0, len(inputs))
	for _, in := range inputs {
		steps = append(steps, entity.Step{
			Title:       in.Title,
			Description: in.Description,
			ImageURL:    in.ImageURL,
			Order:       in.Order,
		})
	}

	return steps
}
