package langstore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// LoadFunc produces a translation batch, typically by re-reading files with
// JSONDir or YAMLDir.
type LoadFunc func() (Batch, error)

// Reloader periodically merges freshly loaded translations into a store.
// It is meant for development setups where translation files change on disk
// while the application runs; production deployments usually load once at
// construction and never reload.
type Reloader struct {
	cron  *cron.Cron
	store *Store
	load  LoadFunc
	log   *slog.Logger
}

// NewReloader schedules load on the given cron expression (5 fields: minute
// hour day month weekday) and merges each result into store via Extend.
func NewReloader(store *Store, schedule string, load LoadFunc) (*Reloader, error) {
	r := &Reloader{
		cron:  cron.New(),
		store: store,
		load:  load,
		log:   store.log,
	}
	if _, err := r.cron.AddFunc(schedule, r.reload); err != nil {
		return nil, fmt.Errorf("langstore: invalid reload schedule %q: %w", schedule, err)
	}
	return r, nil
}

// Start begins scheduled reloading in its own goroutine.
func (r *Reloader) Start() {
	r.cron.Start()
}

// Stop stops the scheduler. The returned context is done when any in-flight
// reload has finished.
func (r *Reloader) Stop() context.Context {
	return r.cron.Stop()
}

// Reload loads and merges once, immediately, outside the schedule.
func (r *Reloader) Reload() error {
	batch, err := r.load()
	if err != nil {
		return err
	}
	r.store.Extend(batch)
	return nil
}

func (r *Reloader) reload() {
	if err := r.Reload(); err != nil {
		r.log.Error("langstore: translation reload failed", slog.String("error", err.Error()))
	}
}
