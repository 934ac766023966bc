package postgres

import (
	"context"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/infra/persistence/model"
	"tracker/internal/errors"

	"gorm.io/gorm"
)

// adventurerRepository implements repository.AdventurersRepository using GORM.
type adventurerRepository struct {
	db *gorm.DB
}

// NewAdventurerRepository is the constructor for adventurerRepository.
func NewAdventurerRepository(db *gorm.DB) repository.AdventurersRepository {
	return &adventurerRepository{db: db}
}

// Register persists a new adventurer, relying on the unique index for the
// username conflict check.
func (repo *adventurerRepository) Register(ctx context.Context, reg *entity.RegisterAdventurer) (int32, error) {
	m := &model.AdventurerModel{
		Username:     reg.Username,
		PasswordHash: reg.PasswordHash,
	}

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return 0, domainerrors.ErrUsernameTaken.WrapMessage("adventurer username already registered")
		}

		return 0, storeError(err, "failed to register adventurer")
	}

	return m.ID, nil
}

// FindByUsername retrieves an adventurer by login name.
func (repo *adventurerRepository) FindByUsername(ctx context.Context, username string) (*entity.Adventurer, error) {
	var m model.AdventurerModel
	if err := repo.db.WithContext(ctx).Where("username = ?", username).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdventurerNotFound
		}

		return nil, storeError(err, "failed to find adventurer by username")
	}

	return m.ToDomain(), nil
}

// FindByID retrieves an adventurer by id.
func (repo *adventurerRepository) FindByID(ctx context.Context, id int32) (*entity.Adventurer, error) {
	var m model.AdventurerModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdventurerNotFound
		}

		return nil, storeError(err, "failed to find adventurer by id")
	}

	return m.ToDomain(), nil
}
