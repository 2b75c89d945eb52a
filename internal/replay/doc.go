// Package replay drives pre-recorded trajectories to actuators with
// wall-clock-accurate timing.
//
// A trajectory is an ordered list of time-indexed steps, each holding
// one target per device. The scheduler anchors the trajectory to a
// reference time at start, dispatches step 0 immediately and sleeps
// until each later step's absolute deadline. A step that overruns its
// deadline is dispatched without waiting so timing error never
// accumulates across steps.
//
// Safety: when a run ends, normally or by cancellation, every device
// that appears in the trajectory receives a zero-torque, zero-gain
// stop command.
package replay
