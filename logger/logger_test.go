package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"error", zapcore.ErrorLevel},
		{"loud", zapcore.WarnLevel},
	}
	for _, tt := range tests {
		log, err := New(LogConfig{Level: tt.level, Environment: "production", ServiceName: "pms"})
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(tt.want), "level %q should enable %v", tt.level, tt.want)
		if tt.want > zapcore.DebugLevel {
			assert.False(t, log.Core().Enabled(tt.want-1), "level %q should not enable %v", tt.level, tt.want-1)
		}
	}
}

func TestFromContext(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(core)

	ctx := WithContext(context.Background(), log)
	FromContext(ctx).Info("loaded", zap.Int("properties", 3))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "loaded", entry.Message)
	assert.Equal(t, int64(3), entry.ContextMap()["properties"])

	assert.Equal(t, GetLogger(), FromContext(context.Background()))
}
