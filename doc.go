// Package langstore is a small reactive translation store: it maps
// translation keys to locale-specific strings, tracks the active locale in
// an observable cell, and derives an observable translation function that is
// recomputed whenever the locale or the translation data changes.
//
// # Basic Usage
//
//	store, err := langstore.New(
//		langstore.WithSupportedLocales("en", "es", "zh-TW"),
//		langstore.WithDefaultLocale("en"),
//		langstore.WithTranslations(langstore.Batch{
//			{Key: "hello", Locales: map[string]string{"en": "Hello", "es": "Hola", "zh-TW": "你好"}},
//			{Key: "bye", Locales: map[string]string{"en": "Goodbye", "es": "Adiós"}},
//		}),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	store.SetLocale("es")
//	fmt.Println(store.T("hello")) // "Hola"
//
// Translation strings may carry {name} placeholders:
//
//	store.T("greeting", langstore.Replacements{"name": "Ann"})
//
// Lookups never fail: a missing key comes back as the key itself and an
// unmatched placeholder stays in the output verbatim.
//
// # Locale Resolution and Persistence
//
// With a storage adapter and a locale source configured, the initial locale
// is resolved in priority order: persisted value, environment-preferred tags
// (exact match, then base subtag), default. Every locale write is persisted
// back through the storage. Without a storage the store is headless and
// always starts at the default locale.
//
//	store, err := langstore.New(
//		langstore.WithSupportedLocales("en", "de"),
//		langstore.WithStorage(persist.NewMemory()),
//		langstore.WithLocaleSource(localeenv.Env{}),
//	)
//
// # Reactivity
//
// Store.Locale and Store.Translator expose observable values. Subscribers
// receive the current value immediately and every subsequent change, in
// subscription order, synchronously on the writer's stack:
//
//	store.Translator().Subscribe(func(t langstore.TranslateFunc) {
//		render(t("title"))
//	})
//
// Runtime data extension re-triggers the translator the same way a locale
// change does:
//
//	store.Extend(langstore.Batch{
//		{Key: "title", Locales: map[string]string{"de": "Titel"}},
//	})
//
// The locale cell itself accepts any string. SetLocale is the validating
// path; writing an unsupported code directly through Store.Locale changes
// the reported locale (and persists it) without touching the translation
// view. See Store.Locale for details.
package langstore
