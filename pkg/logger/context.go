package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor pulls a slog attribute out of a context. Extraction runs
// per log call so request-scoped values are always fresh.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// LocaleExtractor returns an extractor that reads the active locale stored
// in the context under key and attaches it as a "locale" attribute. Pair it
// with middleware that places the resolved locale into the request context.
func LocaleExtractor(key any) ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if locale, ok := ctx.Value(key).(string); ok && locale != "" {
			return slog.String("locale", locale), true
		}
		return slog.Attr{}, false
	}
}

// extractorHandler wraps a slog.Handler and injects context-extracted
// attributes into every record.
type extractorHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
}

// newExtractorHandler wraps next with the given extractors. Nil extractors
// are filtered out.
func newExtractorHandler(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	clean := make([]ContextExtractor, 0, len(extractors))
	for _, ex := range extractors {
		if ex != nil {
			clean = append(clean, ex)
		}
	}
	if len(clean) == 0 {
		return next
	}
	return &extractorHandler{next: next, extractors: clean}
}

func (h *extractorHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *extractorHandler) Handle(ctx context.Context, rec slog.Record) error {
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			rec.AddAttrs(attr)
		}
	}
	return h.next.Handle(ctx, rec)
}

func (h *extractorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &extractorHandler{next: h.next.WithAttrs(attrs), extractors: h.extractors}
}

func (h *extractorHandler) WithGroup(name string) slog.Handler {
	return &extractorHandler{next: h.next.WithGroup(name), extractors: h.extractors}
}
