// Package history archives scan results and parameter dumps in SQLite.
//
// The archive is an operator's record: which actuators answered on
// which channel at a point in time, and full decoded parameter dumps
// captured for later comparison. The schema is created on open.
package history
