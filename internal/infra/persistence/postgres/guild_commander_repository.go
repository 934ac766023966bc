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

// guildCommanderRepository implements repository.GuildCommandersRepository
// using GORM.
type guildCommanderRepository struct {
	db *gorm.DB
}

// NewGuildCommanderRepository is the constructor for guildCommanderRepository.
func NewGuildCommanderRepository(db *gorm.DB) repository.GuildCommandersRepository {
	return &guildCommanderRepository{db: db}
}

// Register persists a new commander. Username uniqueness relies on the
// store's unique index, so two concurrent registrations of the same name
// cannot both succeed.
func (repo *guildCommanderRepository) Register(ctx context.Context, reg *entity.RegisterGuildCommander) (int32, error) {
	m := &model.GuildCommanderModel{
		Username:     reg.Username,
		PasswordHash: reg.PasswordHash,
	}

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return 0, domainerrors.ErrUsernameTaken.WrapMessage("guild commander username already registered")
		}

		return 0, storeError(err, "failed to register guild commander")
	}

	return m.ID, nil
}

// FindByUsername retrieves a commander by login name.
func (repo *guildCommanderRepository) FindByUsername(ctx context.Context, username string) (*entity.GuildCommander, error) {
	var m model.GuildCommanderModel
	if err := repo.db.WithContext(ctx).Where("username = ?", username).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGuildCommanderNotFound
		}

		return nil, storeError(err, "failed to find guild commander by username")
	}

	return m.ToDomain(), nil
}

// FindByID retrieves a commander by id.
func (repo *guildCommanderRepository) FindByID(ctx context.Context, id int32) (*entity.GuildCommander, error) {
	var m model.GuildCommanderModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGuildCommanderNotFound
		}

		return nil, storeError(err, "failed to find guild commander by id")
	}

	return m.ToDomain(), nil
}
