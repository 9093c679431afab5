package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Disabled(t *testing.T) {
	require.NoError(t, Init(Options{Enabled: false}))
	for _, lvl := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		assert.False(t, L.Enabled(t.Context(), lvl), "level %s should be disabled", lvl)
	}
}

func TestInit_DisabledAfterEnabled(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Options{Enabled: true, Output: &buf}))
	require.NoError(t, Init(Options{}))

	Error("dropped")
	assert.Empty(t, buf.String())
	assert.False(t, L.Enabled(t.Context(), slog.LevelError))
}

func TestInit_JSON(t *testing.T) {
	t.Cleanup(func() { _ = Init(Options{}) })

	var buf bytes.Buffer
	require.NoError(t, Init(Options{Enabled: true, Format: "json", Level: slog.LevelDebug, Output: &buf}))

	Debug("allocated", "process", "P1")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "allocated", rec["msg"])
	assert.Equal(t, "P1", rec["process"])
}

func TestInit_LevelFilters(t *testing.T) {
	t.Cleanup(func() { _ = Init(Options{}) })

	var buf bytes.Buffer
	require.NoError(t, Init(Options{Enabled: true, Level: slog.LevelWarn, Output: &buf}))

	Info("hidden")
	Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestInit_UnknownFormat(t *testing.T) {
	err := Init(Options{Enabled: true, Format: "xml"})
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
		err  bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "loud", err: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
