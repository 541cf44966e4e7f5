package log_test

import (
	"testing"

	"github.com/on-the-ground/lazy_ive_go/log"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestEmit_Levels(t *testing.T) {
	logger, logs := log.NewTest()

	log.Emit(logger, log.LogDebug, "debug msg", nil)
	log.Emit(logger, log.LogInfo, "info msg", map[string]interface{}{"k": 1})
	log.Emit(logger, log.LogWarn, "warn msg", nil)
	log.Emit(logger, log.LogError, "error msg", nil)
	log.Emit(logger, log.LogLevel("bogus"), "fallback msg", nil)

	entries := logs.AllUntimed()
	if assert.Len(t, entries, 5) {
		assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
		assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
		assert.Equal(t, int64(1), entries[1].ContextMap()["k"])
		assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
		assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
		assert.Equal(t, zapcore.InfoLevel, entries[4].Level)
	}
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, log.OrNop(nil))

	logger := zap.NewExample()
	assert.Same(t, logger, log.OrNop(logger))
}

func TestNewProduction_DropsDebug(t *testing.T) {
	logger := log.NewProduction()
	if assert.NotNil(t, logger) {
		assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
		assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	}
}
