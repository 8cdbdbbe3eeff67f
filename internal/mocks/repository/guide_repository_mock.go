package repository

import (
	"context"

	"guideflow/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockGuideRepository is a testify mock for repository.GuideRepository.
type MockGuideRepository struct {
	mock.Mock
}

func (m *MockGuideRepository) Create(ctx context.Context, guide *entity.Guide) error {
	args := m.Called(ctx, guide)

	return args.Error(0)
}

func (m *MockGuideRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Guide, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Guide), args.Error(1)
}

func (m *MockGuideRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Guide, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Guide), args.Error(1)
}

func (m *MockGuideRepository) Update(ctx context.Context, guide *entity.Guide) error {
	args := m.Called(ctx, guide)

	return args.Error(0)
}

func (m *MockGuideRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
