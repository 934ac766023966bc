package repository

import (
	"context"

	"tracker/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockQuestsRepository mocks repository.QuestsRepository.
type MockQuestsRepository struct {
	mock.Mock
}

func (m *MockQuestsRepository) Create(ctx context.Context, draft *entity.QuestDraft) (int32, error) {
	args := m.Called(ctx, draft)

	return args.Get(0).(int32), args.Error(1)
}

func (m *MockQuestsRepository) FindByID(ctx context.Context, id int32) (*entity.Quest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Quest), args.Error(1)
}

func (m *MockQuestsRepository) Update(ctx context.Context, id int32, patch *entity.QuestPatch) error {
	args := m.Called(ctx, id, patch)

	return args.Error(0)
}

func (m *MockQuestsRepository) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockQuestsRepository) ListByGuildCommander(ctx context.Context, commanderID int32) ([]*entity.Quest, error) {
	args := m.Called(ctx, commanderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Quest), args.Error(1)
}

func (m *MockQuestsRepository) List(ctx context.Context, filter *entity.QuestFilter) ([]*entity.Quest, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Quest), args.Error(1)
}
