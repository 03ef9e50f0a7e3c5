package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger(t *testing.T) {
	log, err := NewLogger("debug", "json", false)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zap.DebugLevel))

	_, err = NewLogger("loud", "", true)
	assert.Error(t, err)
}

func TestLogEvent(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	LogEvent(zap.New(core), " req-1 ", "Inventory", "adjust", "stock adjusted", zap.Int("delta", 3))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "stock adjusted", entry.Message)
	ctx := entry.ContextMap()
	assert.Equal(t, "inventory", ctx["module"])
	assert.Equal(t, "adjust", ctx["action"])
	assert.Equal(t, "req-1", ctx["request_id"])
	assert.EqualValues(t, 3, ctx["delta"])

	LogEvent(nil, "", "x", "y", "dropped")
}
