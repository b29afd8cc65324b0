package logger

import (
	"io"
	"log/slog"
	"os"
)

// New creates a JSON-formatted logger at info level with optional context
// extractors. Per-key lookup diagnostics are logged at debug level and will
// be suppressed; use NewDev to see them.
func New(extractors ...ContextExtractor) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(newExtractorHandler(h, extractors...))
}

// NewDev creates a text-formatted logger at debug level, surfacing the full
// diagnostic stream including per-key "translation not found" messages.
func NewDev(extractors ...ContextExtractor) *slog.Logger {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	return slog.New(newExtractorHandler(h, extractors...))
}

// NewNope creates a no-op logger that discards all output. It backs the
// diagnostics-off mode of the store.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
