package impl

import (
	"context"
	"testing"

	"guideflow/internal/domain/entity"
	domainerrors "guideflow/internal/domain/errors"
	"guideflow/internal/domain/repository"
	mockRepo "guideflow/internal/mocks/repository"
	mockSvc "guideflow/internal/mocks/service"
	"guideflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// guideServiceFixtures holds all test dependencies for guide service tests.
type guideServiceFixtures struct {
	service        usecase.GuideUsecase
	guideRepo      *mockRepo.MockGuideRepository
	summaryService *mockSvc.MockSummaryService
}

func createTestGuideService(t *testing.T) guideServiceFixtures {
	t.Helper()

	guideRepo := &mockRepo.MockGuideRepository{}
	summaryService := &mockSvc.MockSummaryService{}

	service := NewGuideService(GuideServiceParams{
		GuideRepo:      guideRepo,
		SummaryService: summaryService,
		Logger:         testLogger(),
	})

	return guideServiceFixtures{
		service:        service,
		guideRepo:      guideRepo,
		summaryService: summaryService,
	}
}

func TestGuideService_Create_Success(t *testing.T) {
	fx := createTestGuideService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := &usecase.CreateGuideInput{
		Title:       "Deploying with Docker",
		Description: "From image to running container",
		Steps: []usecase.StepInput{
			{Title: "Build the image", Order: 0},
			{Title: "Run the container", Order: 1},
		},
	}

	fx.guideRepo.On("Create", ctx, mock.AnythingOfType("*entity.Guide")).
		Run(func(args mock.Arguments) {
			guide := args.Get(1).(*entity.Guide)
			guide.ID = uuid.New()
		}).
		Return(nil)

	guide, err := fx.service.Create(ctx, ownerID, input)

	require.NoError(t, err)
	assert.Equal(t, ownerID, guide.OwnerID)
	assert.Equal(t, input.Title, guide.Title)
	require.Len(t, guide.Steps, 2)
	assert.Equal(t, "Build the image", guide.Steps[0].Title)
}

func TestGuideService_Create_EmptyTitle(t *testing.T) {
	fx := createTestGuideService(t)

	guide, err := fx.service.Create(context.Background(), uuid.New(), &usecase.CreateGuideInput{})

	require.Error(t, err)
	assert.Nil(t, guide)
	assert.True(t, errors.Is(err, domainerrors.ErrGuideTitleRequired))
	fx.guideRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGuideService_Create_NoSteps(t *testing.T) {
	fx := createTestGuideService(t)

	ctx := context.Background()
	fx.guideRepo.On("Create", ctx, mock.AnythingOfType("*entity.Guide")).Return(nil)

	guide, err := fx.service.Create(ctx, uuid.New(), &usecase.CreateGuideInput{Title: "Bare guide"})

	require.NoError(t, err)
	assert.NotNil(t, guide.Steps)
	assert.Empty(t, guide.Steps)
}

func TestGuideService_Get_Success(t *testing.T) {
	fx := createTestGuideService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	guideID := uuid.New()

	fx.guideRepo.On("FindByID", ctx, guideID).
		Return(&entity.Guide{ID: guideID, Title: "Mine", OwnerID: ownerID}, nil)

	guide, err := fx.service.Get(ctx, guideID, ownerID)

	require.NoError(t, err)
	assert.Equal(t, guideID, guide.ID)
}

func TestGuideService_Get_NotOwner(t *testing.T) {
	fx := createTestGuideService(t)

	ctx := context.Background()
	guideID := uuid.New()

	fx.guideRepo.On("FindByID", ctx, guideID).
		Return(&entity.Guide{ID: guideID, Title: "Someone else's", OwnerID: uuid.New()}, nil)

	guide, err := fx.service.Get(ctx, guideID, uuid.New())

	require.Error(t, err)
	assert.Nil(t, guide)
	assert.True(t, errors.Is(err, domainerrors.ErrNotGuideOwner))
}

func TestGuideService_Get_NotFound(t *testing.T) {
	fx := createTestGuideService(t)

	ctx := context.Background()
	guideID := uuid.New()

	fx.guideRepo.On("FindByID", ctx, guideID).Return(nil, repository.ErrGuideNotFound)

	guide, err := fx.service.Get(ctx, guideID, uuid.New())

	require.Error(t, err)
	assert.Nil(t, guide)
	assert.True(t, errors.Is(err, domainerrors.ErrGuideNotFound))
}

func TestGuideService_Update_Success(t *testing.T) {
	fx := createTestGuideService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	guideID := uuid.New()
	input := &usecase.UpdateGuideInput{
		Title:       "New title",
		Description: "New description",
		Steps:       []usecase.StepInput{{Title: "Only step", Order: 0}},
	}

	fx.guideRepo.On("FindByID", ctx, guideID).
		Return(&entity.Guide{
			ID:      guideID,
			Title:   "Old title",
			OwnerID: ownerID,
			Steps:   []entity.Step{{Title: "A"}, {Title: "B"}},
		}, nil)
	fx.guideRepo.On("Update", ctx, mock.AnythingOfType("*entity.Guide")).Return(nil)

	guide, err := fx.service.Update(ctx, guideID, ownerID, input)

	require.NoError(t, err)
	assert.Equal(t, "New title", guide.Title)
	assert.Equal(t, ownerID, guide.OwnerID)
	require.Len(t, guide.Steps, 1)
	assert.Equal(t, "Only step", guide.Steps[0].Title)
}

func TestGuideService_Update_NotOwner(t *testing.T) {
	fx := createTestGuideService(t)

	ctx := context.Background()
	guideID := uuid.New()
	input := &usecase.UpdateGuideInput{Title: "New title"}

	fx.guideRepo.On("FindByID", ctx, guideID).
		Return(&entity.Guide{ID: guideID, Title: "Old", OwnerID: uuid.New()}, nil)

	guide, err := fx.service.Update(ctx, guideID, uuid.New(), input)

	require.Error(t, err)
	assert.Nil(t, guide)
	assert.True(t, errors.Is(err, domainerrors.ErrNotGuideOwner))
	fx.guideRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestGuideService_Update_EmptyTitle(t *testing.T) {
	fx := createTestGuideService(t)

	guide, err := fx.service.Update(context.Background(), uuid.New(), uuid.New(), &usecase.UpdateGuideInput{})

	require.Error(t, err)
	assert.Nil(t, guide)
	assert.True(t, errors.Is(err, domainerrors.ErrGuideTitleRequired))
	fx.guideRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestGuideService_Delete_Success(t *testing.T) {
	fx := createTestGuideService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	guideID := uuid.New()

	fx.guideRepo.On("FindByID", ctx, guideID).
		Return(&entity.Guide{ID: guideID, Title: "Doomed", OwnerID: ownerID}, nil)
	fx.guideRepo.On("Delete", ctx, guideID).Return(nil)

	err := fx.service.Delete(ctx, guideID, ownerID)

	require.NoError(t, err)
	fx.guideRepo.AssertExpectations(t)
}

func TestGuideService_Delete_NotOwner(t *testing.T) {
	fx := createTestGuideService(t)

	ctx := context.Background()
	guideID := uuid.New()

	fx.guideRepo.On("FindByID", ctx, guideID).
		Return(&entity.Guide{ID: guideID, Title: "Protected", OwnerID: uuid.New()}, nil)

	err := fx.service.Delete(ctx, guideID, uuid.New())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotGuideOwner))
	fx.guideRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestGuideService_ListOwned(t *testing.T) {
	fx := createTestGuideService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.guideRepo.On("ListByOwner", ctx, ownerID).
		Return([]*entity.Guide{
			{ID: uuid.New(), Title: "Newest", OwnerID: ownerID},
			{ID: uuid.New(), Title: "Oldest", OwnerID: ownerID},
		}, nil)

	guides, err := fx.service.ListOwned(ctx, ownerID)

	require.NoError(t, err)
	require.Len(t, guides, 2)
	assert.Equal(t, "Newest", guides[0].Title)
}

func TestGuideService_Summarize_Success(t *testing.T) {
	fx := createTestGuideService(t)

	ctx := context.Background()
	guideID := uuid.New()
	guide := &entity.Guide{ID: guideID, Title: "Any guide", OwnerID: uuid.New()}

	// Summaries are not ownership-scoped; existence is enough.
	fx.guideRepo.On("FindByID", ctx, guideID).Return(guide, nil)
	fx.summaryService.On("Summarize", ctx, guide).Return("a summary", nil)

	output, err := fx.service.Summarize(ctx, guideID)

	require.NoError(t, err)
	assert.Equal(t, "a summary", output.Summary)
}

func TestGuideService_Summarize_NotFound(t *testing.T) {
	fx := createTestGuideService(t)

	ctx := context.Background()
	guideID := uuid.New()

	fx.guideRepo.On("FindByID", ctx, guideID).Return(nil, repository.ErrGuideNotFound)

	output, err := fx.service.Summarize(ctx, guideID)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrGuideNotFound))
	fx.summaryService.AssertNotCalled(t, "Summarize", mock.Anything, mock.Anything)
}
