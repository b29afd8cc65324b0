package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langstore"
	"github.com/dmitrymomot/langstore/middlewares"
)

func testMiddleware(t *testing.T) func(http.Handler) http.Handler {
	t.Helper()
	return middlewares.I18n(
		middlewares.WithStoreOptions(
			langstore.WithSupportedLocales("en", "es"),
			langstore.WithDefaultLocale("en"),
			langstore.WithoutDevLogs(),
			langstore.WithTranslations(langstore.Batch{
				{Key: "welcome", Locales: map[string]string{"en": "Welcome", "es": "Bienvenido"}},
			}),
		),
	)
}

func TestI18n(t *testing.T) {
	t.Parallel()

	t.Run("defaults without cookie or header", func(t *testing.T) {
		t.Parallel()
		h := testMiddleware(t)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "en", middlewares.GetLocale(r.Context()))
			_, _ = w.Write([]byte(middlewares.GetTranslator(r.Context())("welcome")))
		}))

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, "Welcome", w.Body.String())
	})

	t.Run("resolves locale from Accept-Language", func(t *testing.T) {
		t.Parallel()
		h := testMiddleware(t)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(middlewares.GetTranslator(r.Context())("welcome")))
		}))

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Accept-Language", "es-MX,es;q=0.9")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		require.Equal(t, "Bienvenido", w.Body.String())
	})

	t.Run("cookie wins over header", func(t *testing.T) {
		t.Parallel()
		h := testMiddleware(t)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(middlewares.GetLocale(r.Context())))
		}))

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Accept-Language", "es")
		r.AddCookie(&http.Cookie{Name: langstore.DefaultStorageKey, Value: "en"})
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		require.Equal(t, "en", w.Body.String())
	})

	t.Run("persists resolved locale as cookie", func(t *testing.T) {
		t.Parallel()
		h := testMiddleware(t)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Accept-Language", "es")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)

		cookies := w.Result().Cookies()
		require.NotEmpty(t, cookies)
		assert.Equal(t, langstore.DefaultStorageKey, cookies[0].Name)
		assert.Equal(t, "es", cookies[0].Value)
	})

	t.Run("store from context switches locale and persists it", func(t *testing.T) {
		t.Parallel()
		h := testMiddleware(t)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			store := middlewares.GetStore(r.Context())
			require.NotNil(t, store)
			store.SetLocale("es")
			_, _ = w.Write([]byte(store.T("welcome")))
		}))

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, "Bienvenido", w.Body.String())

		cookies := w.Result().Cookies()
		require.NotEmpty(t, cookies)
		assert.Equal(t, "es", cookies[len(cookies)-1].Value)
	})

	t.Run("accessors degrade without middleware", func(t *testing.T) {
		t.Parallel()
		ctx := httptest.NewRequest(http.MethodGet, "/", nil).Context()
		assert.Empty(t, middlewares.GetLocale(ctx))
		assert.Nil(t, middlewares.GetStore(ctx))
		assert.Equal(t, "missing.key", middlewares.GetTranslator(ctx)("missing.key"))
	})

	t.Run("fails closed on invalid store options", func(t *testing.T) {
		t.Parallel()
		h := middlewares.I18n(
			middlewares.WithStoreOptions(
				langstore.WithSupportedLocales("en"),
				langstore.WithDefaultLocale("fr"),
			),
		)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run")
		}))

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
