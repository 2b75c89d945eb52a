package replay

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stridelabs/servolink/internal/bus"
	"github.com/stridelabs/servolink/internal/directory"
	"github.com/stridelabs/servolink/internal/infrastructure/config"
	"github.com/stridelabs/servolink/internal/infrastructure/logging"
)

type send struct {
	channel string
	id      uint8
	cmd     bus.Command
	at      time.Time
}

// fakeBus records every command with its wall-clock dispatch time.
type fakeBus struct {
	bus.Driver

	mu      sync.Mutex
	devices map[string][]uint8
	sends   []send
}

func (f *fakeBus) Scan(_ context.Context, channel string, lo, hi uint8) ([]uint8, error) {
	var out []uint8
	for _, id := range f.devices[channel] {
		if id >= lo && id <= hi {
			out = append(out, id)
		}
	}
	return out, nil
}

func (f *fakeBus) SendCommand(_ context.Context, channel string, id uint8, cmd bus.Command) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sends = append(f.sends, send{channel, id, cmd, time.Now()})
	return nil
}

func (f *fakeBus) sent() []send {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]send(nil), f.sends...)
}

func newTestScheduler(t *testing.T, steps []Step, mode Mode, fake *fakeBus) *Scheduler {
	t.Helper()
	traj, err := NewTrajectory(steps, mode)
	if err != nil {
		t.Fatalf("NewTrajectory error: %v", err)
	}
	busCfg := config.BusConfig{Channels: []string{"can0", "can1"}, BulkScanThreshold: 10}
	dir := directory.New(fake, busCfg, logging.Default())
	return NewScheduler(traj, fake, dir, testReplayConfig(), logging.Default())
}

// ─── Timing and dispatch ───────────────────────────────────────────

func TestRunDispatchesOnSchedule(t *testing.T) {
	fake := &fakeBus{devices: map[string][]uint8{"can0": {41, 42}}}
	steps := []Step{
		{At: 0, Targets: map[uint8]float64{41: 0.1, 42: 0.2}},
		{At: 80 * time.Millisecond, Targets: map[uint8]float64{41: 0.3, 42: 0.4}},
		{At: 160 * time.Millisecond, Targets: map[uint8]float64{41: 0.5, 42: 0.6}},
	}
	sched := newTestScheduler(t, steps, ModePosition, fake)

	start := time.Now()
	if err := sched.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if sched.State() != StateCompleted {
		t.Errorf("State() = %v, want StateCompleted", sched.State())
	}

	// 3 steps x 2 devices + 2 safety stops.
	sends := fake.sent()
	if len(sends) != 8 {
		t.Fatalf("sent %d commands, want 8", len(sends))
	}

	// Step 0 goes out immediately.
	if d := sends[0].at.Sub(start); d > 40*time.Millisecond {
		t.Errorf("step 0 dispatched after %v, want immediate", d)
	}
	// Step 1 honours its deadline (tolerant lower bound only; CI
	// schedulers can delay, never hasten, the timer).
	if d := sends[2].at.Sub(start); d < 70*time.Millisecond {
		t.Errorf("step 1 dispatched after %v, want ≥ ~80ms", d)
	}
	if d := sends[4].at.Sub(start); d < 150*time.Millisecond {
		t.Errorf("step 2 dispatched after %v, want ≥ ~160ms", d)
	}

	// Position mode carries the configured gains.
	if cmd := sends[0].cmd; cmd.Position != 0.1 || cmd.KpGain != 50 || cmd.KdGain != 2 {
		t.Errorf("step 0 command = %+v, want pos 0.1 kp 50 kd 2", cmd)
	}

	// The final two sends are zero-everything safety stops.
	for _, s := range sends[6:] {
		if s.cmd != (bus.Command{}) {
			t.Errorf("safety stop command = %+v, want zero command", s.cmd)
		}
	}
}

func TestRunSkipsWaitAfterOverrun(t *testing.T) {
	fake := &fakeBus{devices: map[string][]uint8{"can0": {41}}}
	// Both later steps are already overdue relative to a slow step 0;
	// the run must not stretch to the sum of the relative times.
	steps := []Step{
		{At: 0, Targets: map[uint8]float64{41: 0.1}},
		{At: time.Millisecond, Targets: map[uint8]float64{41: 0.2}},
		{At: 2 * time.Millisecond, Targets: map[uint8]float64{41: 0.3}},
	}
	sched := newTestScheduler(t, steps, ModePosition, fake)

	start := time.Now()
	if err := sched.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("run took %v, overrun steps should not wait", elapsed)
	}
}

func TestRunPartitionsByChannel(t *testing.T) {
	fake := &fakeBus{devices: map[string][]uint8{
		"can0": {41},
		"can1": {51},
	}}
	steps := []Step{{At: 0, Targets: map[uint8]float64{41: 0.1, 51: 0.2}}}
	sched := newTestScheduler(t, steps, ModePosition, fake)

	if err := sched.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	byChannel := map[string][]uint8{}
	for _, s := range fake.sent() {
		byChannel[s.channel] = append(byChannel[s.channel], s.id)
	}
	// One step command and one safety stop per device, on its own channel.
	if ids := byChannel["can0"]; len(ids) != 2 || ids[0] != 41 || ids[1] != 41 {
		t.Errorf("can0 sends = %v, want [41 41]", ids)
	}
	if ids := byChannel["can1"]; len(ids) != 2 || ids[0] != 51 || ids[1] != 51 {
		t.Errorf("can1 sends = %v, want [51 51]", ids)
	}
}

func TestRunTorqueMode(t *testing.T) {
	fake := &fakeBus{devices: map[string][]uint8{"can0": {41}}}
	steps := []Step{{At: 0, Targets: map[uint8]float64{41: 4.2}}}
	sched := newTestScheduler(t, steps, ModeTorque, fake)

	if err := sched.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	cmd := fake.sent()[0].cmd
	if cmd.Torque != 4.2 || cmd.KpGain != 0 || cmd.KdGain != 0 {
		t.Errorf("torque command = %+v, want torque 4.2 and zero gains", cmd)
	}
}

// ─── Cancellation and safety ───────────────────────────────────────

func TestRunCancelDuringWaitSendsSafetyStop(t *testing.T) {
	fake := &fakeBus{devices: map[string][]uint8{"can0": {41}}}
	steps := []Step{
		{At: 0, Targets: map[uint8]float64{41: 0.1}},
		{At: 10 * time.Second, Targets: map[uint8]float64{41: 0.2}},
	}
	sched := newTestScheduler(t, steps, ModePosition, fake)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sched.Run(ctx) }()

	// Let step 0 go out, then cancel mid-wait.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("cancellation did not interrupt the inter-step wait")
	}

	sends := fake.sent()
	last := sends[len(sends)-1]
	if last.cmd != (bus.Command{}) {
		t.Errorf("last command = %+v, want safety stop", last.cmd)
	}
	if sched.State() != StateCompleted {
		t.Errorf("State() = %v, want StateCompleted", sched.State())
	}
}

func TestRunSingleUse(t *testing.T) {
	fake := &fakeBus{devices: map[string][]uint8{"can0": {41}}}
	steps := []Step{{At: 0, Targets: map[uint8]float64{41: 0.1}}}
	sched := newTestScheduler(t, steps, ModePosition, fake)

	if err := sched.Run(context.Background()); err != nil {
		t.Fatalf("first Run error: %v", err)
	}
	if err := sched.Run(context.Background()); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("second Run error = %v, want ErrAlreadyStarted", err)
	}
}

func TestRunMissingDevicesIsFatalBeforeDispatch(t *testing.T) {
	fake := &fakeBus{devices: map[string][]uint8{"can0": {41}}}
	steps := []Step{{At: 0, Targets: map[uint8]float64{41: 0.1, 99: 0.2}}}
	sched := newTestScheduler(t, steps, ModePosition, fake)

	if err := sched.Run(context.Background()); !errors.Is(err, ErrDevicesMissing) {
		t.Fatalf("Run error = %v, want ErrDevicesMissing", err)
	}
	if len(fake.sent()) != 0 {
		t.Errorf("commands were dispatched despite missing devices: %v", fake.sent())
	}
}

// ─── Progress hooks ────────────────────────────────────────────────

func TestRunProgressHook(t *testing.T) {
	fake := &fakeBus{devices: map[string][]uint8{"can0": {41}}}
	steps := []Step{
		{At: 0, Targets: map[uint8]float64{41: 0.1}},
		{At: time.Millisecond, Targets: map[uint8]float64{41: 0.2}},
	}
	sched := newTestScheduler(t, steps, ModePosition, fake)

	var mu sync.Mutex
	var seen []int
	sched.OnProgress(func(session string, step int, at time.Duration) {
		if session != sched.Session() {
			t.Errorf("hook session = %q, want %q", session, sched.Session())
		}
		mu.Lock()
		seen = append(seen, step)
		mu.Unlock()
	})

	if err := sched.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(seen) != 2 || seen[0] != 0 || seen[1] != 1 {
		t.Errorf("progress steps = %v, want [0 1]", seen)
	}
	if sched.StepIndex() != 1 {
		t.Errorf("StepIndex() = %d, want 1", sched.StepIndex())
	}
}
