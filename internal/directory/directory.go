package directory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/stridelabs/servolink/internal/bus"
	"github.com/stridelabs/servolink/internal/infrastructure/config"
	"github.com/stridelabs/servolink/internal/infrastructure/logging"
	"github.com/stridelabs/servolink/internal/param"
)

// Record describes one discovered actuator.
type Record struct {
	// ID is the actuator's bus address.
	ID uint8

	// Channel is the bus channel the actuator answered on.
	Channel string

	// Variant is the detected hardware family, empty until resolved.
	Variant param.Variant

	// LastSeen is when the actuator last answered a scan or read.
	LastSeen time.Time
}

// Directory maps actuator ids to bus channels.
//
// All methods are safe for concurrent use. The cache holds the first
// channel that answered for each id; concurrent discoveries of the
// same id keep the first result and discard the rest.
type Directory struct {
	driver   bus.Driver
	log      *logging.Logger
	channels []string

	// bulkThreshold is the request size above which BulkScan switches
	// from per-id probes to one wide scan per channel.
	bulkThreshold int

	mu      sync.RWMutex
	records map[uint8]Record
}

// New creates a directory over the given driver and channel set.
func New(driver bus.Driver, cfg config.BusConfig, log *logging.Logger) *Directory {
	return &Directory{
		driver:        driver,
		log:           log.With("component", "directory"),
		channels:      append([]string(nil), cfg.Channels...),
		bulkThreshold: cfg.BulkScanThreshold,
		records:       make(map[uint8]Record),
	}
}

// Lookup returns the cached record for an id without probing the bus.
func (d *Directory) Lookup(id uint8) (Record, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	rec, ok := d.records[id]
	return rec, ok
}

// Records returns a copy of every cached record.
func (d *Directory) Records() []Record {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Record, 0, len(d.records))
	for _, rec := range d.records {
		out = append(out, rec)
	}
	return out
}

// Discover locates the channel an actuator answers on.
//
// Channels are tried in configuration order with a scan narrowed to
// the single id. The first success is cached; later calls for the
// same id return the cache without touching the bus. ErrNotFound
// means every channel was scanned cleanly and none answered;
// ErrNoUsableChannel means every channel itself failed.
func (d *Directory) Discover(ctx context.Context, id uint8) (Record, error) {
	if rec, ok := d.Lookup(id); ok {
		return rec, nil
	}

	failures := 0
	for _, ch := range d.channels {
		ids, err := d.driver.Scan(ctx, ch, id, id)
		if err != nil {
			failures++
			d.log.Warn("channel scan failed, skipping",
				"channel", ch, "id", id, "error", err)
			continue
		}
		for _, found := range ids {
			if found == id {
				return d.store(id, ch), nil
			}
		}
	}

	if failures == len(d.channels) && len(d.channels) > 0 {
		return Record{}, ErrNoUsableChannel
	}
	return Record{}, ErrNotFound
}

// BulkScan locates many actuators at once.
//
// Above the configured threshold it issues one wide-range scan per
// channel covering all requested ids, then fills the cache from the
// results; at or below the threshold it probes id by id. Returned
// records cover every id that was found, cached or fresh; missing
// lists the ids found nowhere, in request order, and is not an error.
// When every probed channel itself fails, BulkScan returns
// ErrNoUsableChannel.
func (d *Directory) BulkScan(ctx context.Context, ids []uint8) (found []Record, missing []uint8, err error) {
	if len(ids) == 0 {
		return nil, nil, nil
	}

	seen := make(map[uint8]bool, len(ids))
	var wanted []uint8
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			wanted = append(wanted, id)
		}
	}

	// Ids already cached skip rediscovery entirely.
	var remaining []uint8
	for _, id := range wanted {
		if rec, ok := d.Lookup(id); ok {
			found = append(found, rec)
		} else {
			remaining = append(remaining, id)
		}
	}

	if len(remaining) > d.bulkThreshold {
		return d.wideScan(ctx, remaining, found)
	}

	for _, id := range remaining {
		rec, err := d.Discover(ctx, id)
		if errors.Is(err, ErrNoUsableChannel) {
			return nil, nil, err
		}
		if err != nil {
			missing = append(missing, id)
			continue
		}
		found = append(found, rec)
	}
	return found, missing, nil
}

// wideScan issues one full-range scan per channel and intersects the
// responses against the remaining ids. Every channel failing is fatal.
func (d *Directory) wideScan(ctx context.Context, remaining []uint8, found []Record) ([]Record, []uint8, error) {
	lo, hi := remaining[0], remaining[0]
	for _, id := range remaining[1:] {
		if id < lo {
			lo = id
		}
		if id > hi {
			hi = id
		}
	}

	pending := make(map[uint8]bool, len(remaining))
	for _, id := range remaining {
		pending[id] = true
	}

	failures := 0
	scanned := 0
	for _, ch := range d.channels {
		if len(pending) == 0 {
			break
		}
		scanned++
		ids, err := d.driver.Scan(ctx, ch, lo, hi)
		if err != nil {
			failures++
			d.log.Warn("channel scan failed, skipping",
				"channel", ch, "range_lo", lo, "range_hi", hi, "error", err)
			continue
		}
		for _, id := range ids {
			if !pending[id] {
				continue
			}
			delete(pending, id)
			found = append(found, d.store(id, ch))
		}
	}

	if scanned > 0 && failures == scanned {
		return nil, nil, ErrNoUsableChannel
	}

	var missing []uint8
	for _, id := range remaining {
		if pending[id] {
			missing = append(missing, id)
		}
	}
	return found, missing, nil
}

// ResolveVariant determines the hardware family of an actuator by
// reading its firmware version parameter. The result is cached on the
// device record.
func (d *Directory) ResolveVariant(ctx context.Context, id uint8) (param.Variant, error) {
	rec, err := d.Discover(ctx, id)
	if err != nil {
		return "", err
	}
	if rec.Variant != "" {
		return rec.Variant, nil
	}

	raw, err := d.driver.ReadParameter(ctx, rec.Channel, id, param.IndexAppCodeVersion)
	if err != nil {
		return "", err
	}
	version := param.Decode(param.VersionDescriptor(), raw)

	variant, err := param.DetectVariant(version.String())
	if err != nil {
		return "", err
	}

	d.mu.Lock()
	if cur, ok := d.records[id]; ok {
		cur.Variant = variant
		cur.LastSeen = time.Now()
		d.records[id] = cur
	}
	d.mu.Unlock()

	d.log.Info("variant resolved", "id", id, "variant", variant.String())
	return variant, nil
}

// Clear forgets the cached record for one id. The next Discover will
// probe the bus again and may assign a different channel.
func (d *Directory) Clear(id uint8) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.records, id)
}

// Reset forgets every cached record.
func (d *Directory) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.records = make(map[uint8]Record)
}

// store caches a discovery result. The first channel to claim an id
// wins; a later store for the same id only refreshes LastSeen.
func (d *Directory) store(id uint8, channel string) Record {
	d.mu.Lock()
	defer d.mu.Unlock()

	if existing, ok := d.records[id]; ok {
		existing.LastSeen = time.Now()
		d.records[id] = existing
		return existing
	}

	rec := Record{ID: id, Channel: channel, LastSeen: time.Now()}
	d.records[id] = rec
	d.log.Info("device discovered", "id", id, "channel", channel)
	return rec
}
