package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleHandler_Format(t *testing.T) {
	var buf bytes.Buffer
	handler := NewConsoleHandler(&buf, nil)
	logger := slog.New(handler).With("system", "api")

	logger.Info("snapshot saved", "items", 3)

	out := buf.String()
	assert.Contains(t, out, "[INFO]")
	assert.Contains(t, out, "[api]")
	assert.Contains(t, out, "snapshot saved")
	assert.Contains(t, out, "items=3")
	// No ANSI escapes when the writer is not a terminal
	assert.NotContains(t, out, "\033[")
}

func TestConsoleHandler_Levels(t *testing.T) {
	var buf bytes.Buffer
	handler := NewConsoleHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})

	assert.False(t, handler.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, handler.Enabled(context.Background(), slog.LevelError))

	rec := slog.NewRecord(time.Now(), slog.LevelError, "boom", 0)
	require.NoError(t, handler.Handle(context.Background(), rec))
	assert.Contains(t, buf.String(), "[ERROR]")
}
