package logger

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T, level zapcore.Level) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(level)
	prev := L()
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(prev) })
	return logs
}

func TestLogger_ContextAndScopedFields(t *testing.T) {
	logs := observe(t, zapcore.DebugLevel)

	ctx := WithFields(context.Background(), String("session", "s-1"))
	With(Int("part_id", 7)).Warn(ctx, "rejected", String("field", "price"))
	Info(context.Background(), "plain")

	entries := logs.All()
	require.Len(t, entries, 2)

	fields := entries[0].ContextMap()
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "s-1", fields["session"])
	assert.Equal(t, int64(7), fields["part_id"])
	assert.Equal(t, "price", fields["field"])

	assert.Equal(t, "plain", entries[1].Message)
	assert.Empty(t, entries[1].Context)
}

func TestLogger_LevelFiltering(t *testing.T) {
	logs := observe(t, zapcore.InfoLevel)

	Debug(context.Background(), "hidden")
	Error(context.Background(), "shown")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "shown", logs.All()[0].Message)
}

func TestInit(t *testing.T) {
	prev := L()
	t.Cleanup(func() { SetLogger(prev) })

	require.NoError(t, Init(Config{Level: "debug", AsJSON: true, File: filepath.Join(t.TempDir(), "catalog.log")}))
	assert.NotNil(t, L())

	assert.Error(t, Init(Config{Level: "loud"}))
}
