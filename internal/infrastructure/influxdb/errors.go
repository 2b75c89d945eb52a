package influxdb

import "errors"

var (
	// ErrDisabled is returned by Connect when InfluxDB is disabled in
	// configuration.
	ErrDisabled = errors.New("influxdb: disabled in configuration")

	// ErrConnectionFailed is returned when the initial connection or
	// ping fails.
	ErrConnectionFailed = errors.New("influxdb: connection failed")

	// ErrNotConnected is returned for operations on a closed client.
	ErrNotConnected = errors.New("influxdb: client not connected")
)
