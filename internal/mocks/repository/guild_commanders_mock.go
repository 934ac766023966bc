// Package repository provides hand-written testify mocks for the domain
// repository interfaces.
package repository

import (
	"context"

	"tracker/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockGuildCommandersRepository mocks repository.GuildCommandersRepository.
type MockGuildCommandersRepository struct {
	mock.Mock
}

func (m *MockGuildCommandersRepository) Register(ctx context.Context, reg *entity.RegisterGuildCommander) (int32, error) {
	args := m.Called(ctx, reg)

	return args.Get(0).(int32), args.Error(1)
}

func (m *MockGuildCommandersRepository) FindByUsername(ctx context.Context, username string) (*entity.GuildCommander, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.GuildCommander), args.Error(1)
}

func (m *MockGuildCommandersRepository) FindByID(ctx context.Context, id int32) (*entity.GuildCommander, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.GuildCommander), args.Error(1)
}
