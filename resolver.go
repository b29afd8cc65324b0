package langstore

import (
	"slices"
	"strings"
)

// Storage persists the active locale between sessions. Implementations must
// tolerate failure silently: both methods are best-effort and the store never
// inspects errors. A nil Storage marks the environment as headless.
//
// Ready-made adapters live in [github.com/dmitrymomot/langstore/pkg/persist].
type Storage interface {
	Get(key string) (value string, ok bool)
	Set(key, value string)
}

// LocaleSource reports the environment's language preferences. Either method
// may come back empty; both empty is a valid answer.
//
// Ready-made sources live in [github.com/dmitrymomot/langstore/pkg/localeenv].
type LocaleSource interface {
	// Languages returns preferred language tags in descending preference order.
	Languages() []string
	// Language returns the single preferred language tag, if any.
	Language() string
}

// resolveLocale determines the initial active locale. Priority, first match
// wins: headless short-circuit, persisted value, preferred-tag list (exact
// then base subtag, per tag), single preferred tag (exact then base),
// default.
func resolveLocale(supported []string, defaultLocale, storageKey string, storage Storage, source LocaleSource) string {
	if storage == nil {
		return defaultLocale
	}

	if saved, ok := storage.Get(storageKey); ok && saved != "" && slices.Contains(supported, saved) {
		return saved
	}

	if source != nil {
		if tags := source.Languages(); len(tags) > 0 {
			for _, tag := range tags {
				if locale, ok := matchLocale(supported, tag); ok {
					return locale
				}
			}
		} else if tag := source.Language(); tag != "" {
			if locale, ok := matchLocale(supported, tag); ok {
				return locale
			}
		}
	}

	return defaultLocale
}

// matchLocale matches a candidate tag against the supported set: full match
// first, then the tag's base subtag (text before the first '-'). Comparison
// is case-insensitive because language tags arrive in whatever case the
// environment uses; the supported locale's own spelling is returned.
func matchLocale(supported []string, tag string) (string, bool) {
	for _, locale := range supported {
		if strings.EqualFold(locale, tag) {
			return locale, true
		}
	}
	if base, _, found := strings.Cut(tag, "-"); found {
		for _, locale := range supported {
			if strings.EqualFold(locale, base) {
				return locale, true
			}
		}
	}
	return "", false
}
