// Package telemetry fans fleet events out to MQTT and InfluxDB.
//
// Both sinks are optional: a Publisher built with nil clients accepts
// every call and does nothing, so control paths never branch on
// whether telemetry is configured. Sink failures are logged and
// swallowed; telemetry must never fail a control operation.
package telemetry
