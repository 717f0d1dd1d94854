package logging

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger_Defaults(t *testing.T) {
	log, err := NewLogger(Config{})
	require.NoError(t, err)
	require.NotNil(t, log)
}

func TestZapLogger_FieldsAndNaming(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	log := NewLoggerFromCore(core)

	log.Named("ingest").With(String("dataset", "print")).Info("rows decoded",
		Int("kept", 42),
		Int64("bytes", 1024),
		Float64("elapsed", 0.25),
		Bool("cached", false),
		Duration("took", 250*time.Millisecond),
		Err(errors.New("partial")),
	)

	entries := observed.All()
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "ingest", e.LoggerName)
	assert.Equal(t, "rows decoded", e.Message)

	ctx := e.ContextMap()
	assert.Equal(t, "print", ctx["dataset"])
	assert.Equal(t, int64(42), ctx["kept"])
	assert.Equal(t, "partial", ctx["error"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
}

func TestNopLogger(t *testing.T) {
	log := NewNopLogger()
	// Must be safe to use in any combination without output or panic.
	log.With(String("k", "v")).Named("sub").Info("ignored")
	log.Error("ignored", Err(nil))
}
