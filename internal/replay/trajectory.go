package replay

import (
	"fmt"
	"sort"
	"time"
)

// Step is one time-indexed set of targets.
type Step struct {
	// At is the step's dispatch time relative to trajectory start.
	At time.Duration

	// Targets maps device id to the commanded value. For position
	// trajectories the value is radians; for torque trajectories, Nm.
	Targets map[uint8]float64
}

// Mode selects how step targets are turned into bus commands.
type Mode uint8

const (
	// ModePosition sends targets as position commands with the
	// configured stiffness and damping gains.
	ModePosition Mode = iota

	// ModeTorque sends targets as feedforward torque with zero gains.
	ModeTorque
)

// Trajectory is an immutable, validated sequence of steps.
type Trajectory struct {
	steps []Step
	mode  Mode
}

// NewTrajectory validates and freezes a step sequence.
//
// Requirements: at least one step, non-decreasing times, step 0's
// time non-negative, and every step's device key set identical to
// step 0's. Any violation returns ErrTrajectoryShape and the
// trajectory must not be dispatched.
func NewTrajectory(steps []Step, mode Mode) (*Trajectory, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("%w: no steps", ErrTrajectoryShape)
	}
	if steps[0].At < 0 {
		return nil, fmt.Errorf("%w: negative start time %v", ErrTrajectoryShape, steps[0].At)
	}
	if len(steps[0].Targets) == 0 {
		return nil, fmt.Errorf("%w: step 0 has no targets", ErrTrajectoryShape)
	}

	for i := 1; i < len(steps); i++ {
		if steps[i].At < steps[i-1].At {
			return nil, fmt.Errorf("%w: time decreases at step %d (%v < %v)",
				ErrTrajectoryShape, i, steps[i].At, steps[i-1].At)
		}
		if !sameKeys(steps[0].Targets, steps[i].Targets) {
			return nil, fmt.Errorf("%w: step %d device set differs from step 0",
				ErrTrajectoryShape, i)
		}
	}

	frozen := make([]Step, len(steps))
	for i, s := range steps {
		targets := make(map[uint8]float64, len(s.Targets))
		for id, v := range s.Targets {
			targets[id] = v
		}
		frozen[i] = Step{At: s.At, Targets: targets}
	}
	return &Trajectory{steps: frozen, mode: mode}, nil
}

// Len returns the number of steps.
func (t *Trajectory) Len() int { return len(t.steps) }

// Mode returns the trajectory's command mode.
func (t *Trajectory) Mode() Mode { return t.mode }

// Step returns the i'th step. The returned map must not be mutated.
func (t *Trajectory) Step(i int) Step { return t.steps[i] }

// Duration returns the relative time of the final step.
func (t *Trajectory) Duration() time.Duration {
	return t.steps[len(t.steps)-1].At
}

// Devices returns every device id in the trajectory, ascending.
func (t *Trajectory) Devices() []uint8 {
	ids := make([]uint8, 0, len(t.steps[0].Targets))
	for id := range t.steps[0].Targets {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func sameKeys(a, b map[uint8]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
