package bus

import (
	"context"
	"errors"
	"testing"
	"time"
)

// ─── Stalling driver ───

// stallDriver blocks on every call until the caller's context expires,
// modelling a transport waiting on a device that never answers.
type stallDriver struct{}

func (stallDriver) Connect(ctx context.Context, channel string) error {
	<-ctx.Done()
	return ctx.Err()
}

func (stallDriver) Scan(ctx context.Context, channel string, lo, hi uint8) ([]uint8, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (stallDriver) SendCommand(ctx context.Context, channel string, id uint8, cmd Command) error {
	<-ctx.Done()
	return ctx.Err()
}

func (stallDriver) ReadParameter(ctx context.Context, channel string, id uint8, index uint16) ([]byte, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (stallDriver) DumpAllParameters(ctx context.Context, channel string, id uint8) (map[uint16][]byte, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (stallDriver) Enable(ctx context.Context, channel string, id uint8) error {
	<-ctx.Done()
	return ctx.Err()
}

func (stallDriver) Disable(ctx context.Context, channel string, id uint8) error {
	<-ctx.Done()
	return ctx.Err()
}

func (stallDriver) SetZero(ctx context.Context, channel string, id uint8) error {
	<-ctx.Done()
	return ctx.Err()
}

func (stallDriver) ReadState(ctx context.Context, channel string, id uint8) (Feedback, error) {
	<-ctx.Done()
	return Feedback{}, ctx.Err()
}

// ─── Tests ───

func TestWithTimeoutsCutsOffSilentDevice(t *testing.T) {
	d := WithTimeouts(stallDriver{}, Timeouts{
		Scan:    5 * time.Millisecond,
		Read:    5 * time.Millisecond,
		Command: 5 * time.Millisecond,
	})
	ctx := context.Background()

	calls := []struct {
		name string
		call func() error
	}{
		{"Connect", func() error { return d.Connect(ctx, "can0") }},
		{"Scan", func() error { _, err := d.Scan(ctx, "can0", 1, 10); return err }},
		{"SendCommand", func() error { return d.SendCommand(ctx, "can0", 1, Command{}) }},
		{"ReadParameter", func() error { _, err := d.ReadParameter(ctx, "can0", 1, 0x2007); return err }},
		{"DumpAllParameters", func() error { _, err := d.DumpAllParameters(ctx, "can0", 1); return err }},
		{"Enable", func() error { return d.Enable(ctx, "can0", 1) }},
		{"Disable", func() error { return d.Disable(ctx, "can0", 1) }},
		{"SetZero", func() error { return d.SetZero(ctx, "can0", 1) }},
		{"ReadState", func() error { _, err := d.ReadState(ctx, "can0", 1); return err }},
	}

	for _, tc := range calls {
		start := time.Now()
		err := tc.call()
		elapsed := time.Since(start)

		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("%s: error = %v, want context.DeadlineExceeded", tc.name, err)
		}
		if elapsed > time.Second {
			t.Errorf("%s: took %v, want prompt cutoff", tc.name, elapsed)
		}
	}
}

func TestWithTimeoutsZeroWindowPassesThrough(t *testing.T) {
	d := WithTimeouts(stallDriver{}, Timeouts{})

	// With no window configured the caller's own deadline applies.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	if _, err := d.ReadState(ctx, "can0", 1); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("ReadState error = %v, want context.DeadlineExceeded", err)
	}
}

func TestWithTimeoutsKeepsSoonerCallerDeadline(t *testing.T) {
	d := WithTimeouts(stallDriver{}, Timeouts{Read: time.Hour})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := d.ReadParameter(ctx, "can0", 1, 0x2007)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("ReadParameter error = %v, want context.DeadlineExceeded", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("ReadParameter took %v, want the caller deadline to win", elapsed)
	}
}
