package postgres

import (
	"context"

	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Constraint checks inspect the pgx driver error first (precise SQLSTATE
// codes) and fall back to GORM's translated sentinels.

func isUniqueConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.ForeignKeyViolation
	}

	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

// isPoolExhausted reports whether the error came from waiting on a pool
// checkout rather than from the statement itself. database/sql surfaces the
// checkout timeout as the context deadline error.
func isPoolExhausted(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}

// storeError maps an unclassified driver failure to the infrastructure side
// of the error taxonomy. The driver detail stays in the wrapped chain for
// logging and never reaches the caller-facing message.
func storeError(err error, message string) error {
	if isPoolExhausted(err) {
		return domainerrors.ErrPoolExhausted.WrapMessage(message)
	}

	return domainerrors.NewStoreError(err, message)
}
