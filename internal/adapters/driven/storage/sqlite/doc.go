// Package sqlite keeps the ask trace history in a SQLite file using the
// pure Go modernc.org/sqlite driver, so the binary builds without cgo.
//
// The database lives at ~/.assist/data/traces.db unless trace.path points
// elsewhere. It is opened in WAL mode with a five second busy timeout so
// the HTTP server and a concurrent CLI can share it.
//
// Schema changes are numbered files in migrations/; the highest applied
// version is kept in schema_migrations and newer files run on Open, each in
// its own transaction.
package sqlite
