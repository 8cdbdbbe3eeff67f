package repository

import (
	"context"

	"guideflow/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockFeedbackRepository is a testify mock for repository.FeedbackRepository.
type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	args := m.Called(ctx, feedback)

	return args.Error(0)
}

func (m *MockFeedbackRepository) ListByGuide(ctx context.Context, guideID uuid.UUID) ([]*entity.FeedbackWithAuthor, error) {
	args := m.Called(ctx, guideID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.FeedbackWithAuthor), args.Error(1)
}
