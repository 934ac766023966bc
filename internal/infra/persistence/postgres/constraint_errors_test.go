package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "guild_commanders_username_key"}
	assert.True(t, isUniqueConstraintViolation(pgErr))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(pgErr, "insert failed")))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))

	assert.False(t, isUniqueConstraintViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
	assert.False(t, isUniqueConstraintViolation(errors.New("boom")))
	assert.False(t, isUniqueConstraintViolation(gorm.ErrRecordNotFound))
}

func TestIsForeignKeyConstraintViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "quests_guild_commander_id_fkey"}
	assert.True(t, isForeignKeyConstraintViolation(pgErr))
	assert.True(t, isForeignKeyConstraintViolation(errors.Wrap(pgErr, "insert failed")))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))

	assert.False(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.False(t, isForeignKeyConstraintViolation(errors.New("boom")))
}

func TestIsPoolExhausted(t *testing.T) {
	assert.True(t, isPoolExhausted(context.DeadlineExceeded))
	assert.True(t, isPoolExhausted(errors.Wrap(context.DeadlineExceeded, "checkout")))

	assert.False(t, isPoolExhausted(context.Canceled))
	assert.False(t, isPoolExhausted(errors.New("boom")))
}
