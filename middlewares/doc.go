// Package middlewares provides net/http middleware that gives every request
// its own translation store: the locale is resolved from the request's
// cookie and Accept-Language header, persisted back as a cookie, and the
// resolved locale plus translation function are placed into the request
// context for handlers to use.
//
//	i18n := middlewares.I18n(
//		middlewares.WithStoreOptions(
//			langstore.WithSupportedLocales("en", "es"),
//			langstore.WithTranslations(batch),
//		),
//	)
//
//	mux.Handle("/", i18n(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//		t := middlewares.GetTranslator(r.Context())
//		fmt.Fprint(w, t("welcome"))
//	})))
package middlewares
