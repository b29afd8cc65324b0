package persist

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres stores values in a single key/value table. The table must exist:
//
//	CREATE TABLE IF NOT EXISTS locale_preferences (
//	    key   text PRIMARY KEY,
//	    value text NOT NULL
//	)
//
// Backend errors are swallowed, same as the other adapters.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a Postgres-backed storage on an existing pool.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// Get returns the stored value for key.
func (p *Postgres) Get(key string) (string, bool) {
	var value string
	err := p.pool.QueryRow(context.Background(),
		`SELECT value FROM locale_preferences WHERE key = $1`, key,
	).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

// Set stores value under key, replacing any previous value.
func (p *Postgres) Set(key, value string) {
	_, _ = p.pool.Exec(context.Background(),
		`INSERT INTO locale_preferences (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, key, value)
}
