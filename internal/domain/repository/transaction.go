package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// It lets the use-case layer run read-check-write sequences atomically
// without depending on a specific DB driver.
type TransactionManager interface {
	// Execute runs a function within a database transaction. If the function
	// returns an error, the transaction is rolled back; otherwise it is
	// committed. All repository instances obtained from the factory share the
	// same transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction.
type RepositoryFactory interface {
	// GuildCommanderRepo returns a GuildCommandersRepository bound to the current transaction.
	GuildCommanderRepo() GuildCommandersRepository

	// AdventurerRepo returns an AdventurersRepository bound to the current transaction.
	AdventurerRepo() AdventurersRepository

	// QuestRepo returns a QuestsRepository bound to the current transaction.
	QuestRepo() QuestsRepository
}
