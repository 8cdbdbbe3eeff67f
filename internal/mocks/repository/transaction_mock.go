package repository

import (
	"context"

	"guideflow/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockRepositoryFactory hands out the mock repositories inside a fake
// transaction.
type MockRepositoryFactory struct {
	UserRepository     *MockUserRepository
	GuideRepository    *MockGuideRepository
	FeedbackRepository *MockFeedbackRepository
}

func (f *MockRepositoryFactory) UserRepo() repository.UserRepository {
	return f.UserRepository
}

func (f *MockRepositoryFactory) GuideRepo() repository.GuideRepository {
	return f.GuideRepository
}

func (f *MockRepositoryFactory) FeedbackRepo() repository.FeedbackRepository {
	return f.FeedbackRepository
}

// MockTransactionManager is a testify mock for repository.TransactionManager.
// Execute runs the given function against the attached factory, so tests
// exercise the real transactional body without a database.
type MockTransactionManager struct {
	mock.Mock

	Factory *MockRepositoryFactory
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}

	return fn(m.Factory)
}
