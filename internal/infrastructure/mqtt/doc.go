// Package mqtt wraps paho.mqtt.golang for fleet telemetry publishing.
//
// The client maintains a resilient broker connection with automatic
// reconnection, a Last Will and Testament for crash detection, and
// retained status messages so late subscribers see the current fleet
// state. Publishing is the only consumer-facing concern; the control
// core never reacts to inbound MQTT traffic.
package mqtt
