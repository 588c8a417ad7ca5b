package sdk

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerFrom(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core).Sugar()

	ctx := WithLogger(context.Background(), logger)
	LoggerFrom(ctx).Infow("lottery deployed", "address", "0x01")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "lottery deployed", entry.Message)
	assert.Equal(t, "0x01", entry.ContextMap()["address"])
}

func TestLoggerFrom_Default(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, LoggerFrom(context.Background()))
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	logger, err := NewLogger("debug")
	require.NoError(t, err)
	assert.True(t, logger.Desugar().Core().Enabled(zap.DebugLevel))

	logger, err = NewLogger("warn")
	require.NoError(t, err)
	assert.False(t, logger.Desugar().Core().Enabled(zap.InfoLevel))

	_, err = NewLogger("loud")
	require.ErrorContains(t, err, `invalid log level "loud"`)
}
