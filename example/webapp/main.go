// Command webapp is a minimal demo of the translation middleware: the locale
// comes from the visitor's cookie or Accept-Language header, and /lang/{code}
// switches it explicitly.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/langstore"
	"github.com/dmitrymomot/langstore/middlewares"
	"github.com/dmitrymomot/langstore/pkg/logger"
)

func main() {
	log := logger.NewDev(logger.LocaleExtractor(middlewares.LocaleCtxKey()))

	i18n := middlewares.I18n(
		middlewares.WithStoreOptions(
			langstore.WithSupportedLocales("en", "es", "de"),
			langstore.WithDefaultLocale("en"),
			langstore.WithJSONDir(os.DirFS("locales")),
			langstore.WithLogger(log),
		),
	)

	r := chi.NewRouter()
	r.Use(i18n)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		t := middlewares.GetTranslator(req.Context())
		name := req.URL.Query().Get("name")
		if name == "" {
			name = "stranger"
		}
		fmt.Fprintln(w, t("greeting", langstore.Replacements{"name": name}))
	})

	r.Get("/lang/{code}", func(w http.ResponseWriter, req *http.Request) {
		store := middlewares.GetStore(req.Context())
		store.SetLocale(chi.URLParam(req, "code"))
		http.Redirect(w, req, "/", http.StatusSeeOther)
	})

	srv := &http.Server{
		Addr:              ":8080",
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server failed", "error", err.Error())
		os.Exit(1)
	}
}
