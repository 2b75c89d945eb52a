package bus

import "context"

// Command is a single control target for one actuator.
//
// Position/velocity/torque follow the firmware's impedance control
// model: the actuator tracks Position with stiffness KpGain and damping
// KdGain, with Torque added as feedforward.
type Command struct {
	// Position is the target position in radians.
	Position float64

	// Velocity is the target velocity in rad/s.
	Velocity float64

	// Torque is the feedforward torque in Nm.
	Torque float64

	// KpGain is the position (stiffness) gain.
	KpGain float64

	// KdGain is the velocity (damping) gain.
	KdGain float64
}

// SafetyStop is the zero-torque, zero-gain command.
//
// With all gains and the feedforward term at zero the actuator applies
// no effort regardless of its position error, which is the safe resting
// command after a replay completes or is cancelled.
var SafetyStop = Command{}

// Feedback is a single state sample read back from an actuator.
type Feedback struct {
	// Position is the measured position in radians.
	Position float64

	// Velocity is the measured velocity in rad/s.
	Velocity float64

	// Torque is the measured output torque in Nm.
	Torque float64

	// Temperature is the winding temperature in °C.
	Temperature float64

	// Faults is the raw fault flag word.
	Faults uint32
}

// Driver is the transport collaborator contract consumed by the core.
//
// A channel name identifies one physical bus endpoint (e.g. "can0").
// Implementations must be safe for sequential use from multiple
// channels; callers serialise access within a single channel.
type Driver interface {
	// Connect opens the named channel. It is idempotent: connecting an
	// already-open channel is a no-op.
	Connect(ctx context.Context, channel string) error

	// Scan probes the inclusive id range [lo, hi] on a channel and
	// returns the ids that answered.
	Scan(ctx context.Context, channel string, lo, hi uint8) ([]uint8, error)

	// SendCommand dispatches one control command to a device.
	SendCommand(ctx context.Context, channel string, id uint8, cmd Command) error

	// ReadParameter reads the raw bytes of one parameter. A device that
	// does not answer within the context deadline is an error, not a hang.
	ReadParameter(ctx context.Context, channel string, id uint8, index uint16) ([]byte, error)

	// DumpAllParameters requests every parameter the firmware will
	// volunteer and returns the raw fragments keyed by parameter index.
	DumpAllParameters(ctx context.Context, channel string, id uint8) (map[uint16][]byte, error)

	// Enable powers the actuator's control loop.
	Enable(ctx context.Context, channel string, id uint8) error

	// Disable stops the actuator's control loop.
	Disable(ctx context.Context, channel string, id uint8) error

	// SetZero sets the actuator's current mechanical position as zero.
	SetZero(ctx context.Context, channel string, id uint8) error

	// ReadState reads one feedback sample from the actuator.
	ReadState(ctx context.Context, channel string, id uint8) (Feedback, error)
}
