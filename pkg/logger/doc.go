// Package logger builds slog loggers for translation diagnostics.
//
// The store's diagnostic stream (missing keys, rejected locales, merge
// summaries) is plain slog output, so any handler works. This package adds
// the pieces an application typically wants around it: context extractors
// that stamp request-scoped values (such as the active locale) onto every
// record, an optional Sentry destination, and a no-op logger that backs the
// diagnostics-off mode.
//
// # Basic Usage
//
//	log := logger.New(logger.LocaleExtractor(localeCtxKey{}))
//
//	store, err := langstore.New(
//		langstore.WithLogger(log),
//		// ...
//	)
//
// During development, NewDev emits human-readable output at debug level so
// per-key "translation not found" diagnostics are visible:
//
//	store, err := langstore.New(langstore.WithLogger(logger.NewDev()))
//
// # Sentry
//
// NewWithSentry mirrors New but also forwards warnings and errors to Sentry,
// falling back to stdout-only logging when no DSN is configured:
//
//	log := logger.NewWithSentry(logger.SentryConfig{DSN: os.Getenv("SENTRY_DSN")})
package logger
