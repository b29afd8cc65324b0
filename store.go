package langstore

import (
	"log/slog"
	"slices"
	"sort"
	"sync"

	"github.com/dmitrymomot/langstore/pkg/logger"
	"github.com/dmitrymomot/langstore/pkg/observe"
)

// DefaultLocale is used when no default locale is configured.
const DefaultLocale = "en"

// DefaultStorageKey is the persistence key used when none is configured.
const DefaultStorageKey = "lang"

// Store is a reactive translation store. It owns the translation table,
// tracks the active locale in an observable cell, and derives an observable
// translation function that is recomputed whenever the active locale or the
// table data changes.
//
// All recomputation is synchronous: a locale write or an Extend call returns
// only after every subscriber has observed the new state. Reads are safe for
// concurrent use and always see a consistent snapshot. Writes (locale
// changes and extensions) are serialized internally but follow the push
// model's single-writer assumption: two goroutines writing at once may
// publish their translators in either order, so route all writes through one
// goroutine when that ordering matters.
type Store struct {
	log *slog.Logger

	storage Storage
	source  LocaleSource

	locale     *observe.Value[string]
	translator *observe.Value[TranslateFunc]

	// mu guards the table and the current sub-table view.
	mu    sync.Mutex
	table *table
	view  map[string]string

	supported  []string
	defaultLoc string
	storageKey string
	batches    []Batch
	devLogs    bool
}

// New creates a Store from the given options, builds the translation table,
// resolves the initial locale, and wires the reactive chain. The initial
// locale behaves like any other write: the sub-table view is derived from it
// and, unless the store is headless, it is persisted.
func New(opts ...Option) (*Store, error) {
	s := &Store{
		defaultLoc: DefaultLocale,
		storageKey: DefaultStorageKey,
		devLogs:    true,
		log:        slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	if len(s.supported) == 0 {
		s.supported = []string{s.defaultLoc}
	}
	if !slices.Contains(s.supported, s.defaultLoc) {
		return nil, ErrDefaultNotSupported
	}
	if s.storageKey == "" {
		return nil, ErrEmptyStorageKey
	}
	if !s.devLogs {
		s.log = logger.NewNope()
	}

	s.table = newTable(s.supported)
	s.table.merge(s.batches)
	s.batches = nil

	initial := resolveLocale(s.supported, s.defaultLoc, s.storageKey, s.storage, s.source)

	s.translator = observe.NewValue(s.translateFor(nil, initial))
	s.locale = observe.NewValue(initial)
	// Subscribing replays the initial value, which derives the first view and
	// persists the resolved locale.
	s.locale.Subscribe(s.onLocaleWrite)

	return s, nil
}

// onLocaleWrite runs synchronously on every locale cell write. If the written
// value exists as a table key, the current view is re-derived and the
// translator recomputed; otherwise the previous view stays in effect. The
// value is persisted regardless, even when it is not a supported locale.
func (s *Store) onLocaleWrite(locale string) {
	s.mu.Lock()
	snap, ok := s.table.snapshot(locale)
	if ok {
		s.view = snap
	}
	s.mu.Unlock()

	if ok {
		s.translator.Set(s.translateFor(snap, locale))
	}

	if s.storage != nil {
		s.storage.Set(s.storageKey, locale)
	}
}

// SupportedLocales returns a copy of the configured locale set.
func (s *Store) SupportedLocales() []string {
	return slices.Clone(s.supported)
}

// DefaultLocale returns the configured default locale.
func (s *Store) DefaultLocale() string {
	return s.defaultLoc
}

// StorageKey returns the key used for locale persistence.
func (s *Store) StorageKey() string {
	return s.storageKey
}

// Locale returns the raw observable locale cell.
//
// Writes through the cell bypass SetLocale validation: an unsupported value
// becomes the reported active locale and is persisted, but the translator
// keeps serving the previously active locale's data because no matching
// sub-table exists. Prefer SetLocale unless you need exactly that behavior.
func (s *Store) Locale() *observe.Value[string] {
	return s.locale
}

// SetLocale validates lang against the supported set and, on success, writes
// it to the locale cell. Empty or unsupported values are ignored and the
// previously active locale is retained.
func (s *Store) SetLocale(lang string) {
	if lang == "" {
		s.log.Warn("langstore: empty locale ignored")
		return
	}
	if !slices.Contains(s.supported, lang) {
		s.log.Warn("langstore: unsupported locale ignored",
			slog.String("locale", lang),
			slog.Any("supported", s.supported))
		return
	}
	s.locale.Set(lang)
}

// Extend merges additional translation batches into the table and forces a
// recomputation of the current view for the active locale, so subscribers of
// the translator observe the new data even though the locale did not change.
func (s *Store) Extend(batches ...Batch) {
	locale := s.locale.Get()

	s.mu.Lock()
	counts := s.table.merge(batches)
	snap, ok := s.table.snapshot(locale)
	if ok {
		s.view = snap
	}
	s.mu.Unlock()

	if ok {
		s.translator.Set(s.translateFor(snap, locale))
	}

	if len(counts) == 0 {
		s.log.Debug("langstore: extend added no translations")
		return
	}

	locales := make([]string, 0, len(counts))
	for loc := range counts {
		locales = append(locales, loc)
	}
	sort.Strings(locales)

	attrs := make([]any, 0, len(locales))
	for _, loc := range locales {
		attrs = append(attrs, slog.Int(loc, counts[loc]))
	}
	s.log.Info("langstore: translations extended", slog.Group("added", attrs...))
}
