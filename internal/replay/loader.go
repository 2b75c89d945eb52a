package replay

import (
	"archive/zip"
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/stridelabs/servolink/internal/infrastructure/config"
	"github.com/stridelabs/servolink/internal/infrastructure/logging"
)

// ampsField is the value field name that switches the loader into
// torque mode with amp-to-torque conversion.
const ampsField = "joint_amps"

// Joint maps a recorded joint name onto a bus device.
type Joint struct {
	// ID is the device's bus address.
	ID uint8 `json:"id"`

	// Kt is the motor torque constant in Nm/A, used to convert
	// recorded currents into torque targets.
	Kt float64 `json:"kt"`
}

// JointTable resolves recorded joint names to devices.
type JointTable struct {
	// Joints maps joint name to device binding.
	Joints map[string]Joint `json:"joints"`

	// Order is the recording's joint order, used when the trajectory
	// file carries no manifest of its own.
	Order []string `json:"order"`
}

// LoadJointTable reads a joint table from a JSON file.
func LoadJointTable(path string) (*JointTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading joint table: %w", err)
	}
	var table JointTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parsing joint table %s: %w", path, err)
	}
	if len(table.Joints) == 0 {
		return nil, fmt.Errorf("joint table %s defines no joints", path)
	}
	return &table, nil
}

// Loader builds trajectories from recorded policy output files.
//
// Recordings are NDJSON: one JSON object per line with a microsecond
// timestamp field and a per-joint value array. A recording may ship
// as a zip archive holding the NDJSON next to a manifest.json with
// the ordered joint-name list; a bare NDJSON file instead takes its
// joint order from the joint table.
type Loader struct {
	cfg   config.ReplayConfig
	table *JointTable
	log   *logging.Logger
}

// NewLoader creates a loader bound to a joint table.
func NewLoader(cfg config.ReplayConfig, table *JointTable, log *logging.Logger) *Loader {
	return &Loader{cfg: cfg, table: table, log: log.With("component", "replay-loader")}
}

// manifest is the archive metadata written alongside a recording.
type manifest struct {
	Joints []string `json:"joints"`
}

// Load reads a recording and returns a validated trajectory.
//
// Position recordings (the configured value field) replay as position
// targets scaled by the configured factor. Current recordings (value
// field "joint_amps") replay as torque targets, converting each
// sample through the joint's Kt constant.
func (l *Loader) Load(path string) (*Trajectory, error) {
	var (
		order []string
		lines []sample
		err   error
	)

	if strings.HasSuffix(path, ".zip") {
		order, lines, err = l.loadArchive(path)
	} else {
		order = l.table.Order
		lines, err = l.loadNDJSON(path)
	}
	if err != nil {
		return nil, err
	}
	if len(order) == 0 {
		return nil, fmt.Errorf("%w: no joint order available for %s", ErrTrajectoryShape, path)
	}

	return l.build(order, lines)
}

type sample struct {
	timeUS float64
	values []float64
}

// loadNDJSON parses one recording stream line by line. Blank lines
// are skipped; a malformed line is a hard error.
func (l *Loader) loadNDJSON(path string) ([]sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening recording: %w", err)
	}
	defer f.Close()
	return l.parseNDJSON(f, path)
}

func (l *Loader) parseNDJSON(r io.Reader, name string) ([]sample, error) {
	var out []sample

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var row map[string]json.RawMessage
		if err := json.Unmarshal([]byte(line), &row); err != nil {
			return nil, fmt.Errorf("%s line %d: %w", name, lineNo, err)
		}

		var s sample
		if err := json.Unmarshal(row[l.cfg.TimeField], &s.timeUS); err != nil {
			return nil, fmt.Errorf("%s line %d: field %q: %w", name, lineNo, l.cfg.TimeField, err)
		}
		if err := json.Unmarshal(row[l.cfg.ValueField], &s.values); err != nil {
			return nil, fmt.Errorf("%s line %d: field %q: %w", name, lineNo, l.cfg.ValueField, err)
		}
		out = append(out, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s holds no samples", ErrTrajectoryShape, name)
	}
	return out, nil
}

// loadArchive extracts the manifest joint order and the recording
// stream from a zip archive.
func (l *Loader) loadArchive(path string) ([]string, []sample, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening archive: %w", err)
	}
	defer zr.Close()

	var order []string
	var lines []sample

	for _, f := range zr.File {
		switch {
		case f.Name == "manifest.json":
			rc, err := f.Open()
			if err != nil {
				return nil, nil, fmt.Errorf("opening manifest: %w", err)
			}
			var m manifest
			err = json.NewDecoder(rc).Decode(&m)
			rc.Close()
			if err != nil {
				return nil, nil, fmt.Errorf("parsing manifest: %w", err)
			}
			order = m.Joints
		case strings.HasSuffix(f.Name, ".ndjson"):
			rc, err := f.Open()
			if err != nil {
				return nil, nil, fmt.Errorf("opening %s: %w", f.Name, err)
			}
			lines, err = l.parseNDJSON(rc, f.Name)
			rc.Close()
			if err != nil {
				return nil, nil, err
			}
		}
	}

	if order == nil {
		return nil, nil, fmt.Errorf("%s carries no manifest.json", path)
	}
	if lines == nil {
		return nil, nil, fmt.Errorf("%s carries no .ndjson recording", path)
	}
	return order, lines, nil
}

// build resolves joint names to devices and converts samples into
// trajectory steps with first-sample-relative times.
func (l *Loader) build(order []string, lines []sample) (*Trajectory, error) {
	joints := make([]Joint, len(order))
	for i, name := range order {
		j, ok := l.table.Joints[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownJoint, name)
		}
		joints[i] = j
	}

	mode := ModePosition
	if l.cfg.ValueField == ampsField {
		mode = ModeTorque
	}

	t0 := lines[0].timeUS
	steps := make([]Step, len(lines))
	for i, s := range lines {
		if len(s.values) != len(order) {
			return nil, fmt.Errorf("%w: sample %d carries %d values for %d joints",
				ErrTrajectoryShape, i, len(s.values), len(order))
		}

		targets := make(map[uint8]float64, len(joints))
		for idx, j := range joints {
			v := s.values[idx] * l.cfg.Scale
			if mode == ModeTorque {
				v *= j.Kt
			}
			targets[j.ID] = v
		}
		steps[i] = Step{
			At:      time.Duration((s.timeUS - t0) * float64(time.Microsecond)),
			Targets: targets,
		}
	}

	traj, err := NewTrajectory(steps, mode)
	if err != nil {
		return nil, err
	}
	l.log.Info("trajectory loaded",
		"steps", traj.Len(),
		"devices", len(traj.Devices()),
		"duration", traj.Duration().String())
	return traj, nil
}
