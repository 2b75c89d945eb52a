package mqtt

import "fmt"

// Topic prefixes for the fleet telemetry hierarchy.
//
// All topics live under servolink/: device state under
// servolink/fleet, replay progress under servolink/replay, and the
// client's own liveness under servolink/system.
const (
	// TopicPrefixFleet is the base for per-device topics.
	TopicPrefixFleet = "servolink/fleet"

	// TopicPrefixReplay is the base for replay session topics.
	TopicPrefixReplay = "servolink/replay"

	// TopicPrefixSystem is the base for system topics.
	TopicPrefixSystem = "servolink/system"
)

// Topics provides builders for servolink MQTT topics. Using these
// helpers keeps topic naming consistent across the codebase.
type Topics struct{}

// DeviceState returns the topic for one actuator's state samples.
//
// Example: servolink/fleet/41/state
func (Topics) DeviceState(id uint8) string {
	return fmt.Sprintf("%s/%d/state", TopicPrefixFleet, id)
}

// DeviceDiscovered returns the topic for discovery announcements.
//
// Example: servolink/fleet/41/discovered
func (Topics) DeviceDiscovered(id uint8) string {
	return fmt.Sprintf("%s/%d/discovered", TopicPrefixFleet, id)
}

// ReplayProgress returns the topic for one replay session's step
// progress events.
//
// Example: servolink/replay/2f9c.../progress
func (Topics) ReplayProgress(session string) string {
	return fmt.Sprintf("%s/%s/progress", TopicPrefixReplay, session)
}

// ReplayStatus returns the topic for replay session lifecycle events.
//
// Example: servolink/replay/2f9c.../status
func (Topics) ReplayStatus(session string) string {
	return fmt.Sprintf("%s/%s/status", TopicPrefixReplay, session)
}

// SystemStatus returns the client liveness topic. The LWT and the
// graceful shutdown message both publish here, retained.
func (Topics) SystemStatus() string {
	return TopicPrefixSystem + "/status"
}
