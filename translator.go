package langstore

import (
	"log/slog"

	"github.com/dmitrymomot/langstore/pkg/observe"
)

// TranslateFunc looks up a key in the locale view it was derived from and
// substitutes placeholders. It never fails: a missing key degrades to the key
// itself, and an unmatched placeholder stays in the output verbatim.
type TranslateFunc func(key string, replacements ...Replacements) string

// Translator returns the observable translation function. A new function is
// published whenever the current sub-table view changes, either because the
// active locale changed or because Extend merged new data. Subscribers
// receive the current function immediately and every recomputed one after.
func (s *Store) Translator() *observe.Value[TranslateFunc] {
	return s.translator
}

// T translates key using the current translation function. It is shorthand
// for s.Translator().Get()(key, replacements...).
func (s *Store) T(key string, replacements ...Replacements) string {
	return s.translator.Get()(key, replacements...)
}

// translateFor builds a translation function bound to a fixed view snapshot.
// The locale is carried only for diagnostics.
func (s *Store) translateFor(view map[string]string, locale string) TranslateFunc {
	return func(key string, replacements ...Replacements) string {
		result, ok := view[key]
		if !ok {
			s.log.Debug("langstore: translation not found",
				slog.String("locale", locale),
				slog.String("key", key))
			result = key
		}
		return replaceWithMerge(result, replacements...)
	}
}
