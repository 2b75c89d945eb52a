package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stridelabs/servolink/internal/directory"
	"github.com/stridelabs/servolink/internal/param"
)

// ErrDumpNotFound indicates an unknown dump id.
var ErrDumpNotFound = errors.New("history: dump not found")

const schema = `
CREATE TABLE IF NOT EXISTS scan_history (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	scanned_at  INTEGER NOT NULL,
	found       TEXT NOT NULL,
	missing     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS param_dumps (
	id          TEXT PRIMARY KEY,
	device_id   INTEGER NOT NULL,
	channel     TEXT NOT NULL,
	variant     TEXT NOT NULL,
	captured_at INTEGER NOT NULL,
	params      TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_param_dumps_device
	ON param_dumps (device_id, captured_at);
`

// foundEntry is one discovered device inside a stored scan row.
type foundEntry struct {
	ID      uint8  `json:"id"`
	Channel string `json:"channel"`
}

// ScanEntry is one archived bulk-scan result.
type ScanEntry struct {
	ID        int64
	ScannedAt time.Time
	Found     []foundEntry
	Missing   []uint8
}

// DumpMeta identifies one archived parameter dump.
type DumpMeta struct {
	ID         string
	DeviceID   uint8
	Channel    string
	Variant    param.Variant
	CapturedAt time.Time
}

// Dump is a full archived parameter dump: metadata plus the decoded
// values rendered for display, keyed by hex parameter index.
type Dump struct {
	DumpMeta
	Params map[string]string
}

// Archive persists scan and dump records.
type Archive struct {
	db *sql.DB
}

// New creates the archive schema if needed and returns the archive.
func New(db *sql.DB) (*Archive, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("creating history schema: %w", err)
	}
	return &Archive{db: db}, nil
}

// RecordScan archives one bulk-scan outcome.
func (a *Archive) RecordScan(ctx context.Context, found []directory.Record, missing []uint8) error {
	entries := make([]foundEntry, 0, len(found))
	for _, rec := range found {
		entries = append(entries, foundEntry{ID: rec.ID, Channel: rec.Channel})
	}
	foundJSON, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshalling scan results: %w", err)
	}
	if missing == nil {
		missing = []uint8{}
	}
	missingJSON, err := json.Marshal(missing)
	if err != nil {
		return fmt.Errorf("marshalling missing ids: %w", err)
	}

	_, err = a.db.ExecContext(ctx,
		"INSERT INTO scan_history (scanned_at, found, missing) VALUES (?, ?, ?)",
		time.Now().Unix(), string(foundJSON), string(missingJSON))
	if err != nil {
		return fmt.Errorf("inserting scan history: %w", err)
	}
	return nil
}

// ListScans returns archived scans, newest first.
func (a *Archive) ListScans(ctx context.Context, limit int) ([]ScanEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := a.db.QueryContext(ctx,
		"SELECT id, scanned_at, found, missing FROM scan_history ORDER BY scanned_at DESC, id DESC LIMIT ?",
		limit)
	if err != nil {
		return nil, fmt.Errorf("querying scan history: %w", err)
	}
	defer rows.Close()

	var out []ScanEntry
	for rows.Next() {
		var (
			entry       ScanEntry
			ts          int64
			foundJSON   string
			missingJSON string
		)
		if err := rows.Scan(&entry.ID, &ts, &foundJSON, &missingJSON); err != nil {
			return nil, fmt.Errorf("scanning scan history row: %w", err)
		}
		entry.ScannedAt = time.Unix(ts, 0)
		if err := json.Unmarshal([]byte(foundJSON), &entry.Found); err != nil {
			return nil, fmt.Errorf("parsing scan results: %w", err)
		}
		if err := json.Unmarshal([]byte(missingJSON), &entry.Missing); err != nil {
			return nil, fmt.Errorf("parsing missing ids: %w", err)
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

// RecordDump archives one decoded parameter dump and returns its id.
func (a *Archive) RecordDump(ctx context.Context, rec directory.Record, params map[string]string) (string, error) {
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("marshalling dump: %w", err)
	}

	id := uuid.NewString()
	_, err = a.db.ExecContext(ctx,
		"INSERT INTO param_dumps (id, device_id, channel, variant, captured_at, params) VALUES (?, ?, ?, ?, ?, ?)",
		id, rec.ID, rec.Channel, string(rec.Variant), time.Now().Unix(), string(paramsJSON))
	if err != nil {
		return "", fmt.Errorf("inserting dump: %w", err)
	}
	return id, nil
}

// ListDumps returns dump metadata for one device, newest first.
func (a *Archive) ListDumps(ctx context.Context, deviceID uint8) ([]DumpMeta, error) {
	rows, err := a.db.QueryContext(ctx,
		"SELECT id, device_id, channel, variant, captured_at FROM param_dumps WHERE device_id = ? ORDER BY captured_at DESC",
		deviceID)
	if err != nil {
		return nil, fmt.Errorf("querying dumps: %w", err)
	}
	defer rows.Close()

	var out []DumpMeta
	for rows.Next() {
		var (
			meta    DumpMeta
			variant string
			ts      int64
		)
		if err := rows.Scan(&meta.ID, &meta.DeviceID, &meta.Channel, &variant, &ts); err != nil {
			return nil, fmt.Errorf("scanning dump row: %w", err)
		}
		meta.Variant = param.Variant(variant)
		meta.CapturedAt = time.Unix(ts, 0)
		out = append(out, meta)
	}
	return out, rows.Err()
}

// GetDump returns one full archived dump by id.
func (a *Archive) GetDump(ctx context.Context, id string) (Dump, error) {
	var (
		dump       Dump
		variant    string
		ts         int64
		paramsJSON string
	)
	err := a.db.QueryRowContext(ctx,
		"SELECT id, device_id, channel, variant, captured_at, params FROM param_dumps WHERE id = ?",
		id).Scan(&dump.ID, &dump.DeviceID, &dump.Channel, &variant, &ts, &paramsJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return Dump{}, ErrDumpNotFound
	}
	if err != nil {
		return Dump{}, fmt.Errorf("querying dump: %w", err)
	}

	dump.Variant = param.Variant(variant)
	dump.CapturedAt = time.Unix(ts, 0)
	if err := json.Unmarshal([]byte(paramsJSON), &dump.Params); err != nil {
		return Dump{}, fmt.Errorf("parsing dump params: %w", err)
	}
	return dump, nil
}

// PruneBefore deletes scans and dumps older than the cutoff and
// returns the number of rows removed.
func (a *Archive) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	ts := cutoff.Unix()
	var total int64

	res, err := a.db.ExecContext(ctx, "DELETE FROM scan_history WHERE scanned_at < ?", ts)
	if err != nil {
		return 0, fmt.Errorf("pruning scan history: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil {
		total += n
	}

	res, err = a.db.ExecContext(ctx, "DELETE FROM param_dumps WHERE captured_at < ?", ts)
	if err != nil {
		return total, fmt.Errorf("pruning dumps: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil {
		total += n
	}
	return total, nil
}
