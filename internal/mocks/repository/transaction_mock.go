package repository

import (
	"context"

	"tracker/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager mocks repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)

	return args.Error(0)
}

// PassthroughTransactionManager runs the transactional function against a
// fixed factory with no real transaction, which is what most service tests
// want.
type PassthroughTransactionManager struct {
	Factory repository.RepositoryFactory
}

func (m *PassthroughTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.Factory)
}

// MockRepositoryFactory mocks repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

func (m *MockRepositoryFactory) GuildCommanderRepo() repository.GuildCommandersRepository {
	args := m.Called()

	return args.Get(0).(repository.GuildCommandersRepository)
}

func (m *MockRepositoryFactory) AdventurerRepo() repository.AdventurersRepository {
	args := m.Called()

	return args.Get(0).(repository.AdventurersRepository)
}

func (m *MockRepositoryFactory) QuestRepo() repository.QuestsRepository {
	args := m.Called()

	return args.Get(0).(repository.QuestsRepository)
}
