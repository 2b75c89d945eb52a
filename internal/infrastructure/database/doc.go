// Package database provides the SQLite connection for the servolink
// history archive.
//
// It wraps database/sql with WAL-mode configuration, busy-timeout
// handling, and a single-writer connection pool suited to SQLite.
// Schema management lives with the consuming package (internal/history).
package database
