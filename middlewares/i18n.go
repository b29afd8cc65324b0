package middlewares

import (
	"context"
	"net/http"
	"slices"

	"github.com/dmitrymomot/langstore"
	"github.com/dmitrymomot/langstore/pkg/localeenv"
	"github.com/dmitrymomot/langstore/pkg/persist"
)

type (
	localeCtxKey     struct{}
	translatorCtxKey struct{}
	storeCtxKey      struct{}
)

// LocaleCtxKey returns the context key under which the resolved locale is
// stored. Pass it to logger.LocaleExtractor to stamp the locale onto logs.
func LocaleCtxKey() any {
	return localeCtxKey{}
}

// I18nConfig configures the I18n middleware.
type I18nConfig struct {
	storeOpts  []langstore.Option
	cookieOpts []persist.CookieOption
}

// I18nOption configures I18nConfig.
type I18nOption func(*I18nConfig)

// WithStoreOptions sets the store options applied on every request, such as
// the supported locales and the translation data.
func WithStoreOptions(opts ...langstore.Option) I18nOption {
	return func(cfg *I18nConfig) {
		cfg.storeOpts = append(cfg.storeOpts, opts...)
	}
}

// WithCookieOptions configures the locale cookie written on each request.
func WithCookieOptions(opts ...persist.CookieOption) I18nOption {
	return func(cfg *I18nConfig) {
		cfg.cookieOpts = append(cfg.cookieOpts, opts...)
	}
}

// I18n returns middleware that builds a per-request translation store. The
// request's locale cookie acts as the persistence layer and Accept-Language
// as the environment source, so resolution follows the usual priority:
// cookie, header tags, default. The resolved locale, the translation
// function, and the store itself are placed into the request context.
func I18n(opts ...I18nOption) func(http.Handler) http.Handler {
	cfg := &I18nConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			storeOpts := append(slices.Clone(cfg.storeOpts),
				langstore.WithStorage(persist.NewCookie(w, r, cfg.cookieOpts...)),
				langstore.WithLocaleSource(localeenv.Header{Value: r.Header.Get("Accept-Language")}),
			)

			store, err := langstore.New(storeOpts...)
			if err != nil {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, localeCtxKey{}, store.Locale().Get())
			ctx = context.WithValue(ctx, translatorCtxKey{}, store.Translator().Get())
			ctx = context.WithValue(ctx, storeCtxKey{}, store)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetLocale returns the locale resolved for this request, or an empty string
// if the I18n middleware is not in the chain.
func GetLocale(ctx context.Context) string {
	if locale, ok := ctx.Value(localeCtxKey{}).(string); ok {
		return locale
	}
	return ""
}

// GetTranslator returns the request's translation function. Without the I18n
// middleware it returns a pass-through that echoes keys, so callers degrade
// instead of panicking.
func GetTranslator(ctx context.Context) langstore.TranslateFunc {
	if t, ok := ctx.Value(translatorCtxKey{}).(langstore.TranslateFunc); ok {
		return t
	}
	return func(key string, _ ...langstore.Replacements) string {
		return key
	}
}

// GetStore returns the request's translation store, or nil if the I18n
// middleware is not in the chain. Use it to switch locales from a handler:
// Store.SetLocale persists the choice back through the response cookie.
func GetStore(ctx context.Context) *langstore.Store {
	if s, ok := ctx.Value(storeCtxKey{}).(*langstore.Store); ok {
		return s
	}
	return nil
}
