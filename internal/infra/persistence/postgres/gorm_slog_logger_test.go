package postgres

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"tracker/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// recordingHandler captures emitted slog records for assertions.
type recordingHandler struct {
	records *[]slog.Record
}

func (h recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h recordingHandler) Handle(_ context.Context, r slog.Record) error {
	*h.records = append(*h.records, r)

	return nil
}

func (h recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h recordingHandler) WithGroup(string) slog.Handler { return h }

func newRecordingLogger() (*slog.Logger, *[]slog.Record) {
	records := &[]slog.Record{}

	return slog.New(recordingHandler{records: records}), records
}

func sqlAndRows(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestGormSlogLogger_LevelFollowsDebugConfig(t *testing.T) {
	base, _ := newRecordingLogger()

	debugCfg := &config.Config{}
	debugCfg.Env.Debug = true
	l := newGormSlogLogger(base, debugCfg).(*gormSlogLogger)
	assert.Equal(t, logger.Info, l.level)

	l = newGormSlogLogger(base, &config.Config{}).(*gormSlogLogger)
	assert.Equal(t, logger.Warn, l.level)
}

func TestGormSlogLogger_TraceLogsFailedQuery(t *testing.T) {
	base, records := newRecordingLogger()
	l := newGormSlogLogger(base, &config.Config{})

	l.Trace(context.Background(), time.Now(), sqlAndRows("SELECT * FROM quests", 0), assert.AnError)

	require.Len(t, *records, 1)
	assert.Equal(t, slog.LevelError, (*records)[0].Level)
	assert.Equal(t, "GORM query failed", (*records)[0].Message)
}

func TestGormSlogLogger_TraceIgnoresRecordNotFound(t *testing.T) {
	base, records := newRecordingLogger()
	l := newGormSlogLogger(base, &config.Config{})

	l.Trace(context.Background(), time.Now(), sqlAndRows("SELECT * FROM quests WHERE id = 404", 0), gorm.ErrRecordNotFound)

	assert.Empty(t, *records)
}

func TestGormSlogLogger_TraceWarnsOnSlowQuery(t *testing.T) {
	base, records := newRecordingLogger()
	l := newGormSlogLogger(base, &config.Config{})

	begin := time.Now().Add(-2 * defaultGormSlowThreshold)
	l.Trace(context.Background(), begin, sqlAndRows("SELECT * FROM quests", 10), nil)

	require.Len(t, *records, 1)
	assert.Equal(t, slog.LevelWarn, (*records)[0].Level)
	assert.Equal(t, "GORM slow query", (*records)[0].Message)
}

func TestGormSlogLogger_FastQuerySilentBelowInfo(t *testing.T) {
	base, records := newRecordingLogger()
	l := newGormSlogLogger(base, &config.Config{})

	l.Trace(context.Background(), time.Now(), sqlAndRows("SELECT 1", 1), nil)

	assert.Empty(t, *records)
}

func TestGormSlogLogger_LogModeReturnsClone(t *testing.T) {
	base, records := newRecordingLogger()
	l := newGormSlogLogger(base, &config.Config{})

	silent := l.LogMode(logger.Silent)
	silent.Trace(context.Background(), time.Now(), sqlAndRows("SELECT 1", 1), assert.AnError)
	assert.Empty(t, *records)

	// The original keeps its level.
	l.Trace(context.Background(), time.Now(), sqlAndRows("SELECT 1", 1), assert.AnError)
	assert.Len(t, *records, 1)
}
