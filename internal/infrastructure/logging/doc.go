// Package logging provides the structured logger for servolink.
//
// It is a thin wrapper over log/slog that applies configuration
// (level, format, destination) and stamps every record with the
// service name and version. Components derive child loggers via
// With("component", ...).
package logging
