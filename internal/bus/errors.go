package bus

import "errors"

// Domain errors for the bus package.
var (
	// ErrChannelUnavailable is returned when a channel cannot be opened
	// or fails mid-operation.
	ErrChannelUnavailable = errors.New("bus: channel unavailable")

	// ErrNoResponse is returned when a device does not answer within
	// the response window.
	ErrNoResponse = errors.New("bus: no response from device")

	// ErrParameterUnknown is returned when a device reports it does not
	// carry the requested parameter index.
	ErrParameterUnknown = errors.New("bus: parameter not present on device")
)
