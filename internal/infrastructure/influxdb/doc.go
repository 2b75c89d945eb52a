// Package influxdb wraps the InfluxDB v2 client for recording fleet
// time-series data: actuator state samples and replay step timing.
//
// Writes are non-blocking and batched; a recording failure never
// stalls or fails a control operation.
package influxdb
