// Package usecase provides hand-rolled testify mocks for the usecase
// interfaces, used by the HTTP handler tests.
package usecase

import (
	"context"

	"guideflow/internal/domain/entity"
	"guideflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserUsecase is a testify mock for usecase.UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.AuthOutput), args.Error(1)
}

func (m *MockUserUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.AuthOutput), args.Error(1)
}

func (m *MockUserUsecase) GetMe(ctx context.Context, userID uuid.UUID) (*usecase.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.UserProfile), args.Error(1)
}

// MockGuideUsecase is a testify mock for usecase.GuideUsecase.
type MockGuideUsecase struct {
	mock.Mock
}

func (m *MockGuideUsecase) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateGuideInput) (*entity.Guide, error) {
	args := m.Called(ctx, ownerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Guide), args.Error(1)
}

func (m *MockGuideUsecase) ListOwned(ctx context.Context, ownerID uuid.UUID) ([]*entity.Guide, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Guide), args.Error(1)
}

func (m *MockGuideUsecase) Get(ctx context.Context, id, requesterID uuid.UUID) (*entity.Guide, error) {
	args := m.Called(ctx, id, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Guide), args.Error(1)
}

func (m *MockGuideUsecase) Update(ctx context.Context, id, requesterID uuid.UUID, input *usecase.UpdateGuideInput) (*entity.Guide, error) {
	args := m.Called(ctx, id, requesterID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Guide), args.Error(1)
}

func (m *MockGuideUsecase) Delete(ctx context.Context, id, requesterID uuid.UUID) error {
	args := m.Called(ctx, id, requesterID)

	return args.Error(0)
}

func (m *MockGuideUsecase) Summarize(ctx context.Context, id uuid.UUID) (*usecase.SummaryOutput, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.SummaryOutput), args.Error(1)
}

// MockFeedbackUsecase is a testify mock for usecase.FeedbackUsecase.
type MockFeedbackUsecase struct {
	mock.Mock
}

func (m *MockFeedbackUsecase) Create(ctx context.Context, authorID uuid.UUID, input *usecase.CreateFeedbackInput) (*entity.Feedback, error) {
	args := m.Called(ctx, authorID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Feedback), args.Error(1)
}

func (m *MockFeedbackUsecase) ListByGuide(ctx context.Context, guideID uuid.UUID) ([]*usecase.FeedbackEntry, error) {
	args := m.Called(ctx, guideID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*usecase.FeedbackEntry), args.Error(1)
}
