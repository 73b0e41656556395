package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wichananm65/user-registry/pkg/logger"
)

func TestNewLogger(t *testing.T) {
	t.Run("development with explicit level", func(t *testing.T) {
		l, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)
		assert.NotNil(t, l)
	})

	t.Run("production with default level", func(t *testing.T) {
		l, err := logger.NewLogger(logger.Production, "")
		require.NoError(t, err)
		assert.NotNil(t, l)
	})

	t.Run("invalid level", func(t *testing.T) {
		l, err := logger.NewLogger(logger.Production, "loud")
		require.Error(t, err)
		assert.Nil(t, l)
	})
}

func TestFromContext(t *testing.T) {
	t.Run("success when logger exists in context", func(t *testing.T) {
		testLogger := logger.Nop()
		ctx := logger.NewContext(context.Background(), testLogger)

		retrieved, err := logger.FromContext(ctx)
		require.NoError(t, err)
		assert.Same(t, testLogger, retrieved)
	})

	t.Run("error when no logger in context", func(t *testing.T) {
		retrieved, err := logger.FromContext(context.Background())
		require.Error(t, err)
		assert.Nil(t, retrieved)
		assert.ErrorIs(t, err, logger.ErrLoggerNotFound)
	})
}

func TestLog(t *testing.T) {
	logger.SetGlobalLogger(nil)
	defer logger.SetGlobalLogger(nil)

	t.Run("context logger wins over global", func(t *testing.T) {
		global := logger.Nop()
		logger.SetGlobalLogger(global)
		local := logger.Nop()

		result := logger.Log(logger.NewContext(context.Background(), local))
		assert.Same(t, local, result)
	})

	t.Run("global logger when context has none", func(t *testing.T) {
		global := logger.Nop()
		logger.SetGlobalLogger(global)

		assert.Same(t, global, logger.Log(context.Background()))
	})

	t.Run("fallback is a singleton", func(t *testing.T) {
		logger.SetGlobalLogger(nil)

		first := logger.Log(context.Background())
		second := logger.Log(context.Background())
		require.NotNil(t, first)
		assert.Same(t, first, second)
	})
}

func TestInitGlobalLogger(t *testing.T) {
	logger.SetGlobalLogger(nil)
	defer logger.SetGlobalLogger(nil)

	require.NoError(t, logger.InitGlobalLogger(logger.Production, "info"))
	first := logger.Log(context.Background())

	require.NoError(t, logger.InitGlobalLogger(logger.Development, "debug"))
	assert.Same(t, first, logger.Log(context.Background()))

	logger.SetGlobalLogger(nil)
	err := logger.InitGlobalLogger(logger.Production, "nope")
	assert.ErrorIs(t, err, logger.ErrInitGlobalLogger)
}

func TestRequestIDField(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := logger.New(zap.New(core))

	ctx := logger.NewRequestIDContext(context.Background(), "req-123")
	log.Info(ctx, "with id", zap.String("k", "v"))
	log.Info(context.Background(), "without id")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "req-123", entries[0].ContextMap()[logger.RequestID])
	assert.Equal(t, "v", entries[0].ContextMap()["k"])
	assert.NotContains(t, entries[1].ContextMap(), logger.RequestID)
}

func TestNewRequestIDContextGeneratesID(t *testing.T) {
	ctx := logger.NewRequestIDContext(context.Background(), "")

	id, ok := logger.GetRequestID(ctx)
	require.True(t, ok)
	assert.Len(t, id, 36)

	_, ok = logger.GetRequestID(context.Background())
	assert.False(t, ok)
}

func TestWithRequestID(t *testing.T) {
	base := logger.Nop()

	assert.Same(t, base, base.WithRequestID(context.Background()))

	ctx := logger.NewRequestIDContext(context.Background(), "abc")
	assert.NotSame(t, base, base.WithRequestID(ctx))
}
