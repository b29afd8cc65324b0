// Package persist provides locale persistence adapters. Each adapter is a
// small key/value store with best-effort semantics: lookups report absence
// instead of failing, and writes swallow backend errors, because locale
// persistence is a convenience and must never break translation behavior.
//
// Adapters:
//
//   - Memory — in-process map, for tests and single-run programs.
//   - Redis — backed by a go-redis client, with optional TTL.
//   - Postgres — backed by a pgx pool and a single key/value table.
//   - Cookie — per-request browser cookie, for HTTP handlers.
package persist
