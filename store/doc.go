// Package store defines the metadata store boundary: the raw record and
// type-definition shapes the store persists, and the Store interface the
// access layer calls through.
//
// Implementations:
//   - memstore: in-memory store for tests, examples, and local runs
//   - sqlstore: SQLite-backed store
//
// The store owns identifier assignment and uniqueness. A Record with ID 0
// has never been persisted.
package store
