package logger

import (
	"bytes"
	"encoding/json"
	"log"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("text", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		logger := New(Options{Subsystem: "numsort", MinLevel: slog.LevelInfo, Output: &buf})
		logger.Debug("hidden")
		logger.Info("sorted", "count", 3)

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "msg=sorted")
		assert.Contains(t, out, "count=3")
		assert.Contains(t, out, "subsystem=numsort")
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		logger := New(Options{JSON: true, MinLevel: slog.LevelDebug, Output: &buf})
		logger.Debug("visible", "field", "Month")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "visible", entry["msg"])
		assert.Equal(t, "Month", entry["field"])
		assert.NotContains(t, entry, "subsystem")
	})
}

func TestConfigureLoggingWithOptions(t *testing.T) { //nolint:paralleltest
	previous := slog.Default()
	previousLog := *log.Default()

	t.Cleanup(func() {
		slog.SetDefault(previous)
		*log.Default() = previousLog //nolint:govet
	})

	var buf bytes.Buffer

	logger := ConfigureLoggingWithOptions(Options{MinLevel: slog.LevelInfo, Output: &buf})
	assert.Same(t, logger, slog.Default())

	log.Print("legacy message")
	assert.Contains(t, buf.String(), "legacy message")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected slog.Level
		wantErr  bool
	}{
		{input: "debug", expected: slog.LevelDebug},
		{input: "INFO", expected: slog.LevelInfo},
		{input: " warn ", expected: slog.LevelWarn},
		{input: "error", expected: slog.LevelError},
		{input: "info+2", expected: slog.LevelInfo + 2},
		{input: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			level, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidLogLevel)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}
