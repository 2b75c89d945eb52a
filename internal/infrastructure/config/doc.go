// Package config loads and validates servolink configuration.
//
// Configuration is read from a YAML file, merged over hardcoded
// defaults, and finally overridden by SERVOLINK_* environment
// variables. The resulting Config is treated as immutable after Load.
//
// # Sections
//
//   - bus: CAN channel list and bus timing windows
//   - replay: trajectory field names, scaling, joint table path
//   - database: SQLite history archive settings
//   - mqtt: telemetry broker settings (optional)
//   - influxdb: telemetry recording settings (optional)
//   - logging: level, format, output
package config
