package replay

import "errors"

var (
	// ErrTrajectoryShape indicates a trajectory whose steps violate a
	// structural invariant: decreasing times, a device key set that
	// differs from step 0's, or no steps at all. Nothing is dispatched.
	ErrTrajectoryShape = errors.New("replay: malformed trajectory")

	// ErrAlreadyStarted is returned when Run is called on a scheduler
	// that has already run. Schedulers are single use.
	ErrAlreadyStarted = errors.New("replay: scheduler already started")

	// ErrDevicesMissing indicates trajectory devices that could not be
	// located on any channel before dispatch.
	ErrDevicesMissing = errors.New("replay: trajectory devices not found")

	// ErrUnknownJoint indicates a manifest joint name absent from the
	// joint table.
	ErrUnknownJoint = errors.New("replay: joint name not in joint table")
)
