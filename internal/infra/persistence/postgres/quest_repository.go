package postgres

import (
	"context"
	"time"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/infra/persistence/model"
	"tracker/internal/errors"

	"gorm.io/gorm"
)

// questRepository implements repository.QuestsRepository using GORM.
type questRepository struct {
	db *gorm.DB
}

// NewQuestRepository is the constructor for questRepository.
func NewQuestRepository(db *gorm.DB) repository.QuestsRepository {
	return &questRepository{db: db}
}

// Create persists a new quest. Status is fixed to Open here so no caller
// input can ever smuggle a different initial state past the use case.
func (repo *questRepository) Create(ctx context.Context, draft *entity.QuestDraft) (int32, error) {
	m := &model.QuestModel{
		Name:             draft.Name,
		Description:      draft.Description,
		Status:           entity.QuestStatusOpen.String(),
		GuildCommanderID: draft.GuildCommanderID,
	}

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return 0, domainerrors.ErrCommanderReference.WrapMessage("guild commander does not exist")
		}

		return 0, storeError(err, "failed to create quest")
	}

	return m.ID, nil
}

// FindByID retrieves a single quest.
func (repo *questRepository) FindByID(ctx context.Context, id int32) (*entity.Quest, error) {
	var m model.QuestModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQuestNotFound
		}

		return nil, storeError(err, "failed to find quest by id")
	}

	return m.ToDomain(), nil
}

// Update applies a partial update: only non-nil patch fields are written and
// updated_at always advances. Runs as a single UPDATE statement.
func (repo *questRepository) Update(ctx context.Context, id int32, patch *entity.QuestPatch) error {
	updates := map[string]any{
		"updated_at": time.Now(),
	}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Status != nil {
		updates["status"] = patch.Status.String()
	}

	result := repo.db.WithContext(ctx).Model(&model.QuestModel{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return storeError(result.Error, "failed to update quest")
	}
	if result.RowsAffected == 0 {
		return repository.ErrQuestNotFound
	}

	return nil
}

// Delete removes a quest.
func (repo *questRepository) Delete(ctx context.Context, id int32) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.QuestModel{})
	if result.Error != nil {
		return storeError(result.Error, "failed to delete quest")
	}
	if result.RowsAffected == 0 {
		return repository.ErrQuestNotFound
	}

	return nil
}

// ListByGuildCommander returns the quests owned by one commander, oldest
// first.
func (repo *questRepository) ListByGuildCommander(ctx context.Context, commanderID int32) ([]*entity.Quest, error) {
	var ms []model.QuestModel
	if err := repo.db.WithContext(ctx).
		Where("guild_commander_id = ?", commanderID).
		Order("id").
		Find(&ms).Error; err != nil {
		return nil, storeError(err, "failed to list quests by guild commander")
	}

	return toQuestDomainList(ms), nil
}

// List returns quests matching the filter, oldest first.
func (repo *questRepository) List(ctx context.Context, filter *entity.QuestFilter) ([]*entity.Quest, error) {
	query := repo.db.WithContext(ctx).Model(&model.QuestModel{})
	if filter != nil {
		if filter.Name != nil {
			query = query.Where("name ILIKE ?", "%"+*filter.Name+"%")
		}
		if filter.Status != nil {
			query = query.Where("status = ?", filter.Status.String())
		}
	}

	var ms []model.QuestModel
	if err := query.Order("id").Find(&ms).Error; err != nil {
		return nil, storeError(err, "failed to list quests")
	}

	return toQuestDomainList(ms), nil
}

func toQuestDomainList(ms []model.QuestModel) []*entity.Quest {
	quests := make([]*entity.Quest, 0, len(ms))
	for i := range ms {
		quests = append(quests, ms[i].ToDomain())
	}

	return quests
}
