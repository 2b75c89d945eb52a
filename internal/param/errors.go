package param

import "errors"

// Domain errors for the param package.
var (
	// ErrUnknownVariant is returned when a firmware version string
	// cannot be mapped to a known actuator family. The caller must not
	// fall back to a default: an unknown variant means raw display.
	ErrUnknownVariant = errors.New("param: unknown actuator variant")
)
