package langstore

import "maps"

// Entry is a partial translation record: one key with strings for any subset
// of the supported locales. Locales outside the supported set are dropped
// silently when the entry is merged.
type Entry struct {
	Locales map[string]string
	Key     string
}

// Batch is an ordered sequence of entries. Within a batch, and across
// batches, later writes win for the same (key, locale) pair.
type Batch []Entry

// table is the layered locale -> key -> string mapping. It is owned by the
// Store and never leaves it; callers only reach it through the translator
// (lookup) and Extend (merge).
type table struct {
	locales map[string]map[string]string
}

// newTable creates one empty key->string sub-map per supported locale, even
// for locales that never appear in any input.
func newTable(supported []string) *table {
	t := &table{locales: make(map[string]map[string]string, len(supported))}
	for _, locale := range supported {
		if _, ok := t.locales[locale]; !ok {
			t.locales[locale] = make(map[string]string)
		}
	}
	return t
}

// merge applies batches in order with last-write-wins semantics and returns
// the number of pairs added or updated per locale. The counts feed
// diagnostics only; they have no functional effect.
func (t *table) merge(batches []Batch) map[string]int {
	counts := make(map[string]int)
	for _, batch := range batches {
		for _, entry := range batch {
			for locale, message := range entry.Locales {
				sub, ok := t.locales[locale]
				if !ok {
					continue
				}
				sub[entry.Key] = message
				counts[locale]++
			}
		}
	}
	return counts
}

// snapshot returns a copy of the sub-table for the given locale. The copy
// keeps readers of the current view isolated from later merges.
func (t *table) snapshot(locale string) (map[string]string, bool) {
	sub, ok := t.locales[locale]
	if !ok {
		return nil, false
	}
	return maps.Clone(sub), true
}
