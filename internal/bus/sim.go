package bus

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Simulator is an in-memory Driver for bench use and integration
// testing. It models a fixed fleet of actuators spread across named
// channels: commands update a per-device feedback sample, parameter
// reads answer from a seeded parameter store, and scans enumerate the
// seeded ids.
//
// Thread Safety:
//   - All methods are safe for concurrent use.
type Simulator struct {
	mu        sync.Mutex
	channels  map[string]map[uint8]*simDevice
	connected map[string]bool
}

// simDevice is one simulated actuator.
type simDevice struct {
	params  map[uint16][]byte
	state   Feedback
	enabled bool
}

// NewSimulator creates a simulator with an empty fleet.
func NewSimulator() *Simulator {
	return &Simulator{
		channels:  make(map[string]map[uint8]*simDevice),
		connected: make(map[string]bool),
	}
}

// AddDevice seeds one actuator on a channel. The firmware version
// parameter is pre-populated in the firmware's echo format so variant
// detection works against the simulator.
func (s *Simulator) AddDevice(channel string, id uint8, version string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	devs, ok := s.channels[channel]
	if !ok {
		devs = make(map[uint8]*simDevice)
		s.channels[channel] = devs
	}
	devs[id] = &simDevice{
		params: map[uint16][]byte{
			0x1003: []byte("AppCodeVersion\x00v" + version + "\x00"),
		},
	}
}

// SetParameter seeds or replaces one raw parameter payload on a device.
// Unknown devices are ignored.
func (s *Simulator) SetParameter(channel string, id uint8, index uint16, raw []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dev := s.device(channel, id); dev != nil {
		dev.params[index] = append([]byte(nil), raw...)
	}
}

// device returns the seeded device or nil. Caller holds s.mu.
func (s *Simulator) device(channel string, id uint8) *simDevice {
	if devs, ok := s.channels[channel]; ok {
		return devs[id]
	}
	return nil
}

// Connect implements Driver. Only seeded channels exist; connecting
// anything else reports the channel unavailable, which discovery
// treats as a skippable failure.
func (s *Simulator) Connect(_ context.Context, channel string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.channels[channel]; !ok {
		return fmt.Errorf("%w: %s", ErrChannelUnavailable, channel)
	}
	s.connected[channel] = true
	return nil
}

// Scan implements Driver. It returns the seeded ids inside [lo, hi]
// in ascending order.
func (s *Simulator) Scan(_ context.Context, channel string, lo, hi uint8) ([]uint8, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	devs, ok := s.channels[channel]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrChannelUnavailable, channel)
	}

	var found []uint8
	for id := range devs {
		if id >= lo && id <= hi {
			found = append(found, id)
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i] < found[j] })
	return found, nil
}

// SendCommand implements Driver. The simulated actuator snaps to the
// commanded position instantly.
func (s *Simulator) SendCommand(_ context.Context, channel string, id uint8, cmd Command) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dev := s.device(channel, id)
	if dev == nil {
		return fmt.Errorf("%w: id %d on %s", ErrNoResponse, id, channel)
	}
	dev.state.Position = cmd.Position
	dev.state.Velocity = cmd.Velocity
	dev.state.Torque = cmd.Torque
	return nil
}

// ReadParameter implements Driver.
func (s *Simulator) ReadParameter(_ context.Context, channel string, id uint8, index uint16) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dev := s.device(channel, id)
	if dev == nil {
		return nil, fmt.Errorf("%w: id %d on %s", ErrNoResponse, id, channel)
	}
	raw, ok := dev.params[index]
	if !ok {
		return nil, fmt.Errorf("%w: 0x%04X", ErrParameterUnknown, index)
	}
	return append([]byte(nil), raw...), nil
}

// DumpAllParameters implements Driver. It returns copies of every
// seeded parameter payload.
func (s *Simulator) DumpAllParameters(_ context.Context, channel string, id uint8) (map[uint16][]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dev := s.device(channel, id)
	if dev == nil {
		return nil, fmt.Errorf("%w: id %d on %s", ErrNoResponse, id, channel)
	}
	out := make(map[uint16][]byte, len(dev.params))
	for index, raw := range dev.params {
		out[index] = append([]byte(nil), raw...)
	}
	return out, nil
}

// Enable implements Driver.
func (s *Simulator) Enable(_ context.Context, channel string, id uint8) error {
	return s.setEnabled(channel, id, true)
}

// Disable implements Driver.
func (s *Simulator) Disable(_ context.Context, channel string, id uint8) error {
	return s.setEnabled(channel, id, false)
}

func (s *Simulator) setEnabled(channel string, id uint8, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dev := s.device(channel, id)
	if dev == nil {
		return fmt.Errorf("%w: id %d on %s", ErrNoResponse, id, channel)
	}
	dev.enabled = enabled
	return nil
}

// SetZero implements Driver. The current position becomes the origin.
func (s *Simulator) SetZero(_ context.Context, channel string, id uint8) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dev := s.device(channel, id)
	if dev == nil {
		return fmt.Errorf("%w: id %d on %s", ErrNoResponse, id, channel)
	}
	dev.state.Position = 0
	return nil
}

// ReadState implements Driver.
func (s *Simulator) ReadState(_ context.Context, channel string, id uint8) (Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dev := s.device(channel, id)
	if dev == nil {
		return Feedback{}, fmt.Errorf("%w: id %d on %s", ErrNoResponse, id, channel)
	}
	return dev.state, nil
}
