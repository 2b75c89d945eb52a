package replay

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/stridelabs/servolink/internal/bus"
	"github.com/stridelabs/servolink/internal/directory"
	"github.com/stridelabs/servolink/internal/infrastructure/config"
	"github.com/stridelabs/servolink/internal/infrastructure/logging"
)

// State is the scheduler lifecycle position.
type State int32

const (
	// StateNotStarted is the initial state.
	StateNotStarted State = iota

	// StateRunning means steps are being dispatched.
	StateRunning

	// StateCompleted is terminal, reached on normal completion,
	// cancellation, or dispatch-phase failure.
	StateCompleted
)

// String returns the state's display name.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// safetyStopWindow bounds the post-run safety stop, which must go out
// even when the run context is already cancelled.
const safetyStopWindow = 2 * time.Second

// ProgressFunc observes each dispatched step.
type ProgressFunc func(session string, step int, at time.Duration)

// Scheduler replays one trajectory in real time. A scheduler is
// single use: Run may be called once.
type Scheduler struct {
	session string
	traj    *Trajectory
	driver  bus.Driver
	dir     *directory.Directory
	log     *logging.Logger

	// Gains applied to position-mode commands.
	kp, kd float64

	state    atomic.Int32
	stepIdx  atomic.Int32
	progress ProgressFunc

	// chanMu serialises dispatch within one channel; independent
	// channels share nothing.
	chanMu map[string]*sync.Mutex
}

// NewScheduler creates a scheduler for one trajectory run.
func NewScheduler(traj *Trajectory, driver bus.Driver, dir *directory.Directory, cfg config.ReplayConfig, log *logging.Logger) *Scheduler {
	session := uuid.NewString()
	return &Scheduler{
		session: session,
		traj:    traj,
		driver:  driver,
		dir:     dir,
		log:     log.With("component", "replay", "session", session),
		kp:      cfg.PositionGain,
		kd:      cfg.VelocityGain,
		chanMu:  make(map[string]*sync.Mutex),
	}
}

// Session returns the unique id of this replay run.
func (s *Scheduler) Session() string { return s.session }

// State returns the current lifecycle state.
func (s *Scheduler) State() State { return State(s.state.Load()) }

// StepIndex returns the index of the most recently dispatched step,
// or -1 before any dispatch.
func (s *Scheduler) StepIndex() int { return int(s.stepIdx.Load()) }

// OnProgress registers a hook observing each dispatched step. Must be
// called before Run.
func (s *Scheduler) OnProgress(fn ProgressFunc) { s.progress = fn }

// channelGroup is the per-channel slice of a step's targets.
type channelGroup struct {
	channel string
	ids     []uint8
}

// Run resolves the trajectory's devices and replays every step.
//
// Step 0 dispatches immediately at reference time T0; step i waits
// until T0 plus its relative time. An overrun step dispatches without
// waiting. Cancellation interrupts a wait and ends the run. Once any
// device has been resolved, termination of any kind sends the safety
// stop to all resolved trajectory devices.
func (s *Scheduler) Run(ctx context.Context) error {
	if !s.state.CompareAndSwap(int32(StateNotStarted), int32(StateRunning)) {
		return ErrAlreadyStarted
	}
	s.stepIdx.Store(-1)
	defer s.state.Store(int32(StateCompleted))

	groups, err := s.resolveDevices(ctx)
	if err != nil {
		return err
	}
	defer s.safetyStop(groups)

	s.log.Info("replay starting",
		"steps", s.traj.Len(),
		"duration", s.traj.Duration().String(),
		"channels", len(groups))

	t0 := time.Now()
	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for i := 0; i < s.traj.Len(); i++ {
		step := s.traj.Step(i)

		if i > 0 {
			if wait := time.Until(t0.Add(step.At)); wait > 0 {
				timer.Reset(wait)
				select {
				case <-timer.C:
				case <-ctx.Done():
					if !timer.Stop() {
						<-timer.C
					}
					s.log.Info("replay cancelled", "step", i)
					return ctx.Err()
				}
			}
		}

		if err := ctx.Err(); err != nil {
			s.log.Info("replay cancelled", "step", i)
			return err
		}

		s.dispatch(ctx, step, groups)
		s.stepIdx.Store(int32(i))
		if s.progress != nil {
			s.progress(s.session, i, step.At)
		}
	}

	s.log.Info("replay completed", "steps", s.traj.Len())
	return nil
}

// resolveDevices locates every trajectory device and partitions the
// device list by channel. Per-channel order follows trajectory device
// enumeration order.
func (s *Scheduler) resolveDevices(ctx context.Context) ([]channelGroup, error) {
	devices := s.traj.Devices()
	_, missing, err := s.dir.BulkScan(ctx, devices)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrDevicesMissing, missing)
	}

	byChannel := make(map[string][]uint8)
	for _, id := range devices {
		rec, ok := s.dir.Lookup(id)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrDevicesMissing, []uint8{id})
		}
		byChannel[rec.Channel] = append(byChannel[rec.Channel], id)
	}

	channels := make([]string, 0, len(byChannel))
	for ch := range byChannel {
		channels = append(channels, ch)
		if _, ok := s.chanMu[ch]; !ok {
			s.chanMu[ch] = &sync.Mutex{}
		}
	}
	sort.Strings(channels)

	groups := make([]channelGroup, 0, len(channels))
	for _, ch := range channels {
		groups = append(groups, channelGroup{channel: ch, ids: byChannel[ch]})
	}
	return groups, nil
}

// dispatch sends one step's targets, channel by channel. A send
// failure is logged and the rest of the step still goes out.
func (s *Scheduler) dispatch(ctx context.Context, step Step, groups []channelGroup) {
	for _, g := range groups {
		mu := s.chanMu[g.channel]
		mu.Lock()
		for _, id := range g.ids {
			cmd := s.command(step.Targets[id])
			if err := s.driver.SendCommand(ctx, g.channel, id, cmd); err != nil {
				s.log.Warn("command dispatch failed",
					"channel", g.channel, "id", id, "error", err)
			}
		}
		mu.Unlock()
	}
}

// command builds the bus command for one target value.
func (s *Scheduler) command(target float64) bus.Command {
	if s.traj.Mode() == ModeTorque {
		return bus.Command{Torque: target}
	}
	return bus.Command{Position: target, KpGain: s.kp, KdGain: s.kd}
}

// safetyStop sends the zero-torque, zero-gain command to every
// resolved trajectory device. It runs on its own deadline so a
// cancelled run context cannot suppress it.
func (s *Scheduler) safetyStop(groups []channelGroup) {
	ctx, cancel := context.WithTimeout(context.Background(), safetyStopWindow)
	defer cancel()

	for _, g := range groups {
		mu := s.chanMu[g.channel]
		mu.Lock()
		for _, id := range g.ids {
			if err := s.driver.SendCommand(ctx, g.channel, id, bus.SafetyStop); err != nil {
				s.log.Error("safety stop failed", "channel", g.channel, "id", id, "error", err)
			}
		}
		mu.Unlock()
	}
	s.log.Info("safety stop sent", "devices", deviceCount(groups))
}

func deviceCount(groups []channelGroup) int {
	n := 0
	for _, g := range groups {
		n += len(g.ids)
	}
	return n
}
