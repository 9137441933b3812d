// Package sqlite provides the SQLite-backed implementation of the
// ArticleStore driven port.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation
// that requires no CGO, enabling easy cross-compilation. Similarity
// ranking runs inside SQLite through a registered scalar function,
// vector_distance_cos, which computes cosine distance over embedding
// blobs (consecutive little-endian float32 values).
//
// # Schema
//
// Article tables are created on demand with idempotent DDL rather than
// versioned migrations: the table name is configurable per call, so the
// schema cannot be pinned to a fixed migration history. CreateTable is
// safe to run on every startup.
//
// # Data Location
//
// By default, the database is stored at ~/.canopy/data/canopy.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking
// provided by SQLite in WAL mode.
package sqlite
