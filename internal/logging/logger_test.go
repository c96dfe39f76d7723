package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "ParseLevel(%q)", in)
	}
}

func TestNewWithFile_WritesToRotatedFile(t *testing.T) {
	dir := t.TempDir()

	logger, cleanup, err := NewWithFile(
		Config{Level: zerolog.DebugLevel, Format: "json"},
		FileConfig{Enabled: true, LogDir: dir, Rotate: RotateOptions{MaxSizeMB: 1, MaxBackups: 2}},
	)
	require.NoError(t, err)

	logger.Info().Str("window_id", "window4").Msg("window added")
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"window_id":"window4"`)
	assert.Contains(t, string(data), `"message":"window added"`)
}

func TestNewWithFile_DisabledDiscards(t *testing.T) {
	logger, cleanup, err := NewWithFile(DefaultConfig(), FileConfig{})
	require.NoError(t, err)
	defer cleanup()

	// Must not panic or write anywhere.
	logger.Info().Msg("discarded")
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	ctx := WithContext(context.Background(), logger)
	ctx = WithComponent(ctx, "layout")
	ctx = WithWindowID(ctx, "window2")
	ctx = With(ctx, map[string]any{"revision": 3})

	FromContext(ctx).Info().Msg("split")

	out := buf.String()
	assert.Contains(t, out, `"component":"layout"`)
	assert.Contains(t, out, `"window_id":"window2"`)
	assert.Contains(t, out, `"revision":3`)
}

func TestFromContext_NoLoggerIsNoop(t *testing.T) {
	log := FromContext(context.Background())
	require.NotNil(t, log)
	log.Info().Msg("nobody hears this")
}
