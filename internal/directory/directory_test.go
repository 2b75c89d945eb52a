package directory

import (
	"context"
	"errors"
	"testing"

	"github.com/stridelabs/servolink/internal/bus"
	"github.com/stridelabs/servolink/internal/infrastructure/config"
	"github.com/stridelabs/servolink/internal/infrastructure/logging"
	"github.com/stridelabs/servolink/internal/param"
)

// fakeDriver serves a fixed channel→ids topology and records every
// scan it receives.
type fakeDriver struct {
	bus.Driver

	devices  map[string][]uint8
	failing  map[string]bool
	versions map[uint8]string
	scans    []scanCall
}

type scanCall struct {
	channel string
	lo, hi  uint8
}

func (f *fakeDriver) Scan(_ context.Context, channel string, lo, hi uint8) ([]uint8, error) {
	f.scans = append(f.scans, scanCall{channel, lo, hi})
	if f.failing[channel] {
		return nil, bus.ErrChannelUnavailable
	}
	var out []uint8
	for _, id := range f.devices[channel] {
		if id >= lo && id <= hi {
			out = append(out, id)
		}
	}
	return out, nil
}

func (f *fakeDriver) ReadParameter(_ context.Context, _ string, id uint8, index uint16) ([]byte, error) {
	if index != param.IndexAppCodeVersion {
		return nil, bus.ErrParameterUnknown
	}
	v, ok := f.versions[id]
	if !ok {
		return nil, bus.ErrNoResponse
	}
	return append([]byte("AppCodeVersion\x00v"), []byte(v+"\x00")...), nil
}

func newTestDirectory(t *testing.T, driver bus.Driver, channels []string, threshold int) *Directory {
	t.Helper()
	cfg := config.BusConfig{Channels: channels, BulkScanThreshold: threshold}
	return New(driver, cfg, logging.Default())
}

// ─── Discover ──────────────────────────────────────────────────────

func TestDiscoverFirstChannelWins(t *testing.T) {
	fake := &fakeDriver{devices: map[string][]uint8{
		"can0": {5},
		"can1": {5, 7},
	}}
	d := newTestDirectory(t, fake, []string{"can0", "can1"}, 10)

	rec, err := d.Discover(context.Background(), 5)
	if err != nil {
		t.Fatalf("Discover error: %v", err)
	}
	if rec.Channel != "can0" {
		t.Errorf("Channel = %q, want can0", rec.Channel)
	}
	if rec.ID != 5 {
		t.Errorf("ID = %d, want 5", rec.ID)
	}
}

func TestDiscoverCachesAndSkipsRequery(t *testing.T) {
	fake := &fakeDriver{devices: map[string][]uint8{"can0": {9}}}
	d := newTestDirectory(t, fake, []string{"can0"}, 10)

	if _, err := d.Discover(context.Background(), 9); err != nil {
		t.Fatalf("Discover error: %v", err)
	}
	queries := len(fake.scans)

	rec, err := d.Discover(context.Background(), 9)
	if err != nil {
		t.Fatalf("second Discover error: %v", err)
	}
	if len(fake.scans) != queries {
		t.Errorf("cached lookup issued %d extra scans", len(fake.scans)-queries)
	}
	if rec.Channel != "can0" {
		t.Errorf("Channel = %q, want can0", rec.Channel)
	}
}

func TestDiscoverSkipsFailingChannel(t *testing.T) {
	fake := &fakeDriver{
		devices: map[string][]uint8{"can1": {3}},
		failing: map[string]bool{"can0": true},
	}
	d := newTestDirectory(t, fake, []string{"can0", "can1"}, 10)

	rec, err := d.Discover(context.Background(), 3)
	if err != nil {
		t.Fatalf("Discover error: %v", err)
	}
	if rec.Channel != "can1" {
		t.Errorf("Channel = %q, want can1", rec.Channel)
	}
}

func TestDiscoverNotFound(t *testing.T) {
	fake := &fakeDriver{devices: map[string][]uint8{"can0": {}, "can1": {}}}
	d := newTestDirectory(t, fake, []string{"can0", "can1"}, 10)

	if _, err := d.Discover(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestDiscoverAllChannelsFailing(t *testing.T) {
	fake := &fakeDriver{failing: map[string]bool{"can0": true, "can1": true}}
	d := newTestDirectory(t, fake, []string{"can0", "can1"}, 10)

	if _, err := d.Discover(context.Background(), 1); !errors.Is(err, ErrNoUsableChannel) {
		t.Errorf("error = %v, want ErrNoUsableChannel", err)
	}
}

// ─── BulkScan ──────────────────────────────────────────────────────

func TestBulkScanBelowThresholdProbesPerID(t *testing.T) {
	fake := &fakeDriver{devices: map[string][]uint8{"can0": {1, 2}}}
	d := newTestDirectory(t, fake, []string{"can0"}, 10)

	found, missing, err := d.BulkScan(context.Background(), []uint8{1, 2, 3})
	if err != nil {
		t.Fatalf("BulkScan error: %v", err)
	}
	if len(found) != 2 {
		t.Errorf("found %d records, want 2", len(found))
	}
	if len(missing) != 1 || missing[0] != 3 {
		t.Errorf("missing = %v, want [3]", missing)
	}
	// Narrow scans only: every scan covers a single id.
	for _, s := range fake.scans {
		if s.lo != s.hi {
			t.Errorf("expected narrow scan, got range [%d, %d]", s.lo, s.hi)
		}
	}
}

func TestBulkScanAboveThresholdUsesWideScan(t *testing.T) {
	fake := &fakeDriver{devices: map[string][]uint8{
		"can0": {11, 12, 13},
		"can1": {21, 22},
	}}
	d := newTestDirectory(t, fake, []string{"can0", "can1"}, 3)

	ids := []uint8{11, 12, 13, 21, 22, 30}
	found, missing, err := d.BulkScan(context.Background(), ids)
	if err != nil {
		t.Fatalf("BulkScan error: %v", err)
	}
	if len(found) != 5 {
		t.Errorf("found %d records, want 5", len(found))
	}
	if len(missing) != 1 || missing[0] != 30 {
		t.Errorf("missing = %v, want [30]", missing)
	}
	// One wide scan per channel, not one per id.
	if len(fake.scans) != 2 {
		t.Errorf("issued %d scans, want 2", len(fake.scans))
	}
	for _, s := range fake.scans {
		if s.lo != 11 || s.hi != 30 {
			t.Errorf("scan range = [%d, %d], want [11, 30]", s.lo, s.hi)
		}
	}
}

func TestBulkScanSkipsCachedIDs(t *testing.T) {
	fake := &fakeDriver{devices: map[string][]uint8{"can0": {11, 12, 13, 14}}}
	d := newTestDirectory(t, fake, []string{"can0"}, 2)

	if _, err := d.Discover(context.Background(), 11); err != nil {
		t.Fatalf("Discover error: %v", err)
	}
	fake.scans = nil

	found, missing, err := d.BulkScan(context.Background(), []uint8{11, 12, 13, 14})
	if err != nil {
		t.Fatalf("BulkScan error: %v", err)
	}
	if len(found) != 4 || len(missing) != 0 {
		t.Fatalf("found %d missing %v, want 4 found none missing", len(found), missing)
	}
	// Cached id 11 excluded from the wide range.
	for _, s := range fake.scans {
		if s.lo < 12 {
			t.Errorf("wide scan range [%d, %d] includes cached id", s.lo, s.hi)
		}
	}
}

func TestBulkScanAllChannelsFailing(t *testing.T) {
	fake := &fakeDriver{failing: map[string]bool{"can0": true, "can1": true}}
	d := newTestDirectory(t, fake, []string{"can0", "can1"}, 2)

	_, _, err := d.BulkScan(context.Background(), []uint8{1, 2, 3, 4})
	if !errors.Is(err, ErrNoUsableChannel) {
		t.Errorf("wide-scan error = %v, want ErrNoUsableChannel", err)
	}

	_, _, err = d.BulkScan(context.Background(), []uint8{1})
	if !errors.Is(err, ErrNoUsableChannel) {
		t.Errorf("per-id error = %v, want ErrNoUsableChannel", err)
	}
}

// ─── Record lifecycle ──────────────────────────────────────────────

func TestClearAllowsReassignment(t *testing.T) {
	fake := &fakeDriver{devices: map[string][]uint8{"can0": {6}, "can1": {6}}}
	d := newTestDirectory(t, fake, []string{"can0", "can1"}, 10)

	if _, err := d.Discover(context.Background(), 6); err != nil {
		t.Fatalf("Discover error: %v", err)
	}

	// Device moves to can1; without a clear the stale record persists.
	fake.devices = map[string][]uint8{"can1": {6}}
	rec, err := d.Discover(context.Background(), 6)
	if err != nil {
		t.Fatalf("Discover error: %v", err)
	}
	if rec.Channel != "can0" {
		t.Errorf("cached Channel = %q, want can0", rec.Channel)
	}

	d.Clear(6)
	rec, err = d.Discover(context.Background(), 6)
	if err != nil {
		t.Fatalf("Discover after Clear error: %v", err)
	}
	if rec.Channel != "can1" {
		t.Errorf("Channel after Clear = %q, want can1", rec.Channel)
	}
}

// ─── Variant resolution ────────────────────────────────────────────

func TestResolveVariant(t *testing.T) {
	fake := &fakeDriver{
		devices:  map[string][]uint8{"can0": {15}},
		versions: map[uint8]string{15: "0.3.1.7"},
	}
	d := newTestDirectory(t, fake, []string{"can0"}, 10)

	v, err := d.ResolveVariant(context.Background(), 15)
	if err != nil {
		t.Fatalf("ResolveVariant error: %v", err)
	}
	if v != param.Variant03 {
		t.Errorf("variant = %v, want %v", v, param.Variant03)
	}

	rec, ok := d.Lookup(15)
	if !ok || rec.Variant != param.Variant03 {
		t.Errorf("record variant = %v, want cached %v", rec.Variant, param.Variant03)
	}
}

func TestResolveVariantUnknownVersion(t *testing.T) {
	fake := &fakeDriver{
		devices:  map[string][]uint8{"can0": {16}},
		versions: map[uint8]string{16: "0.9.0.0"},
	}
	d := newTestDirectory(t, fake, []string{"can0"}, 10)

	if _, err := d.ResolveVariant(context.Background(), 16); !errors.Is(err, param.ErrUnknownVariant) {
		t.Errorf("error = %v, want ErrUnknownVariant", err)
	}
}
