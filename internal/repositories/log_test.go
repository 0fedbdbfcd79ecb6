package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sbilibin2017/gw-book-library/internal/logger"
)

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	original := logger.Log
	logger.Log = zap.New(core).Sugar()
	t.Cleanup(func() { logger.Log = original })
	return logs
}

func TestLogQuery_Fields(t *testing.T) {
	logs := observeLogs(t)

	db, mock := newMockDB(t)
	now := time.Now()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "hash", false).
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(3, "alice", "hash", false, now, now))

	_, err := NewUserWriteRepository(db, nil).Create(context.Background(), "alice", "hash", false)
	require.NoError(t, err)

	require.Len(t, logs.All(), 1)
	entry := logs.All()[0]
	assert.Equal(t, "sql", entry.Message)
	assert.Equal(t, zapcore.InfoLevel, entry.Level)

	fields := entry.ContextMap()
	assert.Contains(t, fields["query"], "INSERT INTO users")
	assert.Equal(t, []any{"alice", redacted, false}, fields["args"])
	assert.EqualValues(t, 3, fields["result"])
}
