package langstore

import (
	"io/fs"
	"log/slog"
)

// Option configures a Store during construction.
type Option func(*Store) error

// WithSupportedLocales sets the ordered set of locale codes the store serves.
// Duplicates are harmless. When omitted, the supported set is just the
// default locale.
func WithSupportedLocales(locales ...string) Option {
	return func(s *Store) error {
		for _, locale := range locales {
			if locale == "" {
				return ErrEmptyLocale
			}
		}
		s.supported = append(s.supported, locales...)
		return nil
	}
}

// WithDefaultLocale sets the fallback locale. It must be a member of the
// supported set; New fails otherwise.
func WithDefaultLocale(locale string) Option {
	return func(s *Store) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		s.defaultLoc = locale
		return nil
	}
}

// WithStorageKey sets the key under which the active locale is persisted.
func WithStorageKey(key string) Option {
	return func(s *Store) error {
		if key == "" {
			return ErrEmptyStorageKey
		}
		s.storageKey = key
		return nil
	}
}

// WithTranslations appends initial translation batches, consumed once at
// construction. Batches are applied in order with last-write-wins semantics.
func WithTranslations(batches ...Batch) Option {
	return func(s *Store) error {
		s.batches = append(s.batches, batches...)
		return nil
	}
}

// WithStorage sets the persistence service for the active locale. Without a
// storage the store runs headless: resolution returns the default locale
// immediately and writes are never persisted.
func WithStorage(storage Storage) Option {
	return func(s *Store) error {
		s.storage = storage
		return nil
	}
}

// WithLocaleSource sets the environment locale source consulted during
// initial resolution when no valid persisted value exists.
func WithLocaleSource(source LocaleSource) Option {
	return func(s *Store) error {
		s.source = source
		return nil
	}
}

// WithLogger sets the diagnostic logger. Diagnostics are advisory only and
// never affect returned values.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) error {
		if log != nil {
			s.log = log
		}
		return nil
	}
}

// WithoutDevLogs disables all diagnostic output. Functional behavior is
// identical with diagnostics on or off.
func WithoutDevLogs() Option {
	return func(s *Store) error {
		s.devLogs = false
		return nil
	}
}

// WithJSONDir loads initial translations from flat {locale}.json files in
// fsys, appended as one batch after any batches configured before it.
func WithJSONDir(fsys fs.FS) Option {
	return func(s *Store) error {
		batch, err := JSONDir(fsys)
		if err != nil {
			return err
		}
		s.batches = append(s.batches, batch)
		return nil
	}
}

// WithYAMLDir loads initial translations from flat {locale}.yaml or
// {locale}.yml files in fsys, appended as one batch.
func WithYAMLDir(fsys fs.FS) Option {
	return func(s *Store) error {
		batch, err := YAMLDir(fsys)
		if err != nil {
			return err
		}
		s.batches = append(s.batches, batch)
		return nil
	}
}
