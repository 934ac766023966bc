package postgres

import (
	"context"

	"tracker/internal/domain/repository"
	"tracker/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager
// interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds one GORM transaction and hands out repository instances bound to
// it, so every operation inside Execute shares the same connection.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

// GuildCommanderRepo returns a commander repository bound to the transaction.
func (f *gormRepositoryFactory) GuildCommanderRepo() repository.GuildCommandersRepository {
	return NewGuildCommanderRepository(f.tx)
}

// AdventurerRepo returns an adventurer repository bound to the transaction.
func (f *gormRepositoryFactory) AdventurerRepo() repository.AdventurersRepository {
	return NewAdventurerRepository(f.tx)
}

// QuestRepo returns a quest repository bound to the transaction.
func (f *gormRepositoryFactory) QuestRepo() repository.QuestsRepository {
	return NewQuestRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return storeError(tx.Error, "failed to begin transaction")
	}

	// Roll back on panic so a connection is never leaked mid-transaction.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v (original error follows)", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return storeError(err, "failed to commit transaction")
	}

	return nil
}
