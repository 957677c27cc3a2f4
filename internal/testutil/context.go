package testutil

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/specialistvlad/dyegen/internal/ctxlog"
)

// LogsEnv makes test helpers dump captured logs when set to "true".
const LogsEnv = "DYEGEN_TEST_LOGS"

// NewLogger returns a debug-level text logger writing into a SafeBuffer.
// The buffer is printed through t.Logf on cleanup when LogsEnv is set.
func NewLogger(t *testing.T) (*slog.Logger, *SafeBuffer) {
	t.Helper()

	buf := &SafeBuffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	t.Cleanup(func() {
		if os.Getenv(LogsEnv) == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), buf.String())
		}
	})
	return logger, buf
}

// Context returns a context carrying a test logger.
func Context(t *testing.T) context.Context {
	t.Helper()
	logger, _ := NewLogger(t)
	return ctxlog.WithLogger(context.Background(), logger)
}

// ContextWithLogs is Context plus the buffer the logger writes to.
func ContextWithLogs(t *testing.T) (context.Context, *SafeBuffer) {
	t.Helper()
	logger, buf := NewLogger(t)
	return ctxlog.WithLogger(context.Background(), logger), buf
}
