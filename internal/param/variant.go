package param

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Variant identifies one of the four supported actuator families.
type Variant string

// Supported actuator variants.
const (
	Variant00 Variant = "RS00"
	Variant02 Variant = "RS02"
	Variant03 Variant = "RS03"
	Variant04 Variant = "RS04"
)

// Variants lists all supported variants in canonical order.
func Variants() []Variant {
	return []Variant{Variant00, Variant02, Variant03, Variant04}
}

// Valid reports whether v names a supported variant.
func (v Variant) Valid() bool {
	switch v {
	case Variant00, Variant02, Variant03, Variant04:
		return true
	default:
		return false
	}
}

// String returns the variant's canonical name.
func (v Variant) String() string { return string(v) }

// Envelope holds the physical operating limits of a variant.
//
// Command values outside these ranges are clamped before transmission.
type Envelope struct {
	// MaxTorque is the peak torque in Nm. Torque commands span
	// [-MaxTorque, MaxTorque].
	MaxTorque float64

	// MaxCurrent is the peak phase current in A.
	MaxCurrent float64

	// MaxSpeed is the peak speed in rad/s. Velocity commands span
	// [-MaxSpeed, MaxSpeed].
	MaxSpeed float64

	// MaxAngle is the position command limit in rad. Position
	// commands span [-MaxAngle, MaxAngle].
	MaxAngle float64

	// MaxKp and MaxKd bound the position and velocity gains.
	// Gain commands span [0, max].
	MaxKp float64
	MaxKd float64
}

var envelopes = map[Variant]Envelope{
	Variant00: {MaxTorque: 14, MaxCurrent: 16, MaxSpeed: 33, MaxAngle: 4 * math.Pi, MaxKp: 500, MaxKd: 5},
	Variant02: {MaxTorque: 17, MaxCurrent: 23, MaxSpeed: 44, MaxAngle: 4 * math.Pi, MaxKp: 500, MaxKd: 5},
	Variant03: {MaxTorque: 60, MaxCurrent: 43, MaxSpeed: 20, MaxAngle: 4 * math.Pi, MaxKp: 5000, MaxKd: 100},
	Variant04: {MaxTorque: 120, MaxCurrent: 90, MaxSpeed: 15, MaxAngle: 4 * math.Pi, MaxKp: 5000, MaxKd: 100},
}

// Envelope returns the operating limits for the variant.
func (v Variant) Envelope() Envelope {
	return envelopes[v]
}

// Description returns a short human-readable summary of the variant.
func (v Variant) Description() string {
	switch v {
	case Variant00:
		return "14Nm compact actuator"
	case Variant02:
		return "17Nm high-speed actuator"
	case Variant03:
		return "60Nm medium-torque actuator"
	case Variant04:
		return "120Nm high-torque actuator"
	default:
		return "unknown actuator"
	}
}

// DetectVariant maps a firmware version string to its variant.
//
// The version must have exactly four dot-separated decimal fields
// (major.minor.patch.build). The (major, minor) pair selects the
// variant; patch and build only need to parse. Any malformed or
// unmapped version returns ErrUnknownVariant.
func DetectVariant(version string) (Variant, error) {
	fields := strings.Split(strings.TrimSpace(version), ".")
	if len(fields) != 4 {
		return "", fmt.Errorf("%w: version %q", ErrUnknownVariant, version)
	}

	nums := make([]uint64, 4)
	for i, f := range fields {
		n, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return "", fmt.Errorf("%w: version %q", ErrUnknownVariant, version)
		}
		nums[i] = n
	}

	switch {
	case nums[0] == 0 && nums[1] == 0:
		return Variant00, nil
	case nums[0] == 0 && nums[1] == 2:
		return Variant02, nil
	case nums[0] == 0 && nums[1] == 3:
		return Variant03, nil
	case nums[0] == 0 && nums[1] == 4:
		return Variant04, nil
	default:
		return "", fmt.Errorf("%w: version %q (major=%d, minor=%d)",
			ErrUnknownVariant, version, nums[0], nums[1])
	}
}
