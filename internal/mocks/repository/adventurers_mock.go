package repository

import (
	"context"

	"tracker/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockAdventurersRepository mocks repository.AdventurersRepository.
type MockAdventurersRepository struct {
	mock.Mock
}

func (m *MockAdventurersRepository) Register(ctx context.Context, reg *entity.RegisterAdventurer) (int32, error) {
	args := m.Called(ctx, reg)

	return args.Get(0).(int32), args.Error(1)
}

func (m *MockAdventurersRepository) FindByUsername(ctx context.Context, username string) (*entity.Adventurer, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Adventurer), args.Error(1)
}

func (m *MockAdventurersRepository) FindByID(ctx context.Context, id int32) (*entity.Adventurer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Adventurer), args.Error(1)
}
