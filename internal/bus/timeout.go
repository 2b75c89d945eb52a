package bus

import (
	"context"
	"time"
)

// Timeouts bounds each class of driver call. A zero window leaves that
// class on the caller's context.
type Timeouts struct {
	// Scan bounds Connect and Scan.
	Scan time.Duration

	// Read bounds ReadParameter, DumpAllParameters and ReadState.
	Read time.Duration

	// Command bounds SendCommand, Enable, Disable and SetZero.
	Command time.Duration
}

// WithTimeouts wraps a driver so every call carries a finite deadline.
//
// A silent device must surface as an error value, never an indefinite
// block; the wrapper enforces that for transports that only honour
// context deadlines. An already-bounded caller context keeps whichever
// deadline is sooner.
func WithTimeouts(next Driver, t Timeouts) Driver {
	return &timeoutDriver{next: next, t: t}
}

type timeoutDriver struct {
	next Driver
	t    Timeouts
}

func bound(ctx context.Context, window time.Duration) (context.Context, context.CancelFunc) {
	if window <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, window)
}

func (d *timeoutDriver) Connect(ctx context.Context, channel string) error {
	ctx, cancel := bound(ctx, d.t.Scan)
	defer cancel()
	return d.next.Connect(ctx, channel)
}

func (d *timeoutDriver) Scan(ctx context.Context, channel string, lo, hi uint8) ([]uint8, error) {
	ctx, cancel := bound(ctx, d.t.Scan)
	defer cancel()
	return d.next.Scan(ctx, channel, lo, hi)
}

func (d *timeoutDriver) SendCommand(ctx context.Context, channel string, id uint8, cmd Command) error {
	ctx, cancel := bound(ctx, d.t.Command)
	defer cancel()
	return d.next.SendCommand(ctx, channel, id, cmd)
}

func (d *timeoutDriver) ReadParameter(ctx context.Context, channel string, id uint8, index uint16) ([]byte, error) {
	ctx, cancel := bound(ctx, d.t.Read)
	defer cancel()
	return d.next.ReadParameter(ctx, channel, id, index)
}

func (d *timeoutDriver) DumpAllParameters(ctx context.Context, channel string, id uint8) (map[uint16][]byte, error) {
	ctx, cancel := bound(ctx, d.t.Read)
	defer cancel()
	return d.next.DumpAllParameters(ctx, channel, id)
}

func (d *timeoutDriver) Enable(ctx context.Context, channel string, id uint8) error {
	ctx, cancel := bound(ctx, d.t.Command)
	defer cancel()
	return d.next.Enable(ctx, channel, id)
}

func (d *timeoutDriver) Disable(ctx context.Context, channel string, id uint8) error {
	ctx, cancel := bound(ctx, d.t.Command)
	defer cancel()
	return d.next.Disable(ctx, channel, id)
}

func (d *timeoutDriver) SetZero(ctx context.Context, channel string, id uint8) error {
	ctx, cancel := bound(ctx, d.t.Command)
	defer cancel()
	return d.next.SetZero(ctx, channel, id)
}

func (d *timeoutDriver) ReadState(ctx context.Context, channel string, id uint8) (Feedback, error) {
	ctx, cancel := bound(ctx, d.t.Read)
	defer cancel()
	return d.next.ReadState(ctx, channel, id)
}
