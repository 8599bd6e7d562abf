// Package sqlite provides a SQLite-based implementation of the node and
// collection stores.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. Both stores share one database
// connection:
//
//   - NodeStore: node persistence, listed by position then insertion order
//   - CollectionStore: collection persistence
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
// Applied versions are recorded in the schema_migrations table.
//
// # Data Location
//
// By default, the database is stored at ~/.arbor/data/arbor.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
