package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "{}\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.Bus.Channels) != 5 {
		t.Errorf("default channels = %v, want 5 entries", cfg.Bus.Channels)
	}
	if cfg.Bus.Channels[0] != "can0" || cfg.Bus.Channels[4] != "can4" {
		t.Errorf("default channels = %v, want can0..can4", cfg.Bus.Channels)
	}
	if cfg.Bus.BulkScanThreshold != 10 {
		t.Errorf("default bulk_scan_threshold = %d, want 10", cfg.Bus.BulkScanThreshold)
	}
	if cfg.Replay.TimeField != "t_us" || cfg.Replay.ValueField != "joint_pos" {
		t.Errorf("default replay fields = %q/%q", cfg.Replay.TimeField, cfg.Replay.ValueField)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default log level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
bus:
  channels: [vcan0]
  scan_timeout: 50
replay:
  value_field: joint_amps
logging:
  level: debug
  format: text
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.Bus.Channels) != 1 || cfg.Bus.Channels[0] != "vcan0" {
		t.Errorf("channels = %v, want [vcan0]", cfg.Bus.Channels)
	}
	if cfg.Bus.ScanTimeout != 50 {
		t.Errorf("scan_timeout = %d, want 50", cfg.Bus.ScanTimeout)
	}
	if cfg.Replay.ValueField != "joint_amps" {
		t.Errorf("value_field = %q, want joint_amps", cfg.Replay.ValueField)
	}
	// Untouched sections keep defaults
	if cfg.Bus.ReadTimeout != 200 {
		t.Errorf("read_timeout = %d, want default 200", cfg.Bus.ReadTimeout)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "{}\n")

	t.Setenv("SERVOLINK_BUS_CHANNELS", "can7, can8")
	t.Setenv("SERVOLINK_DATABASE_PATH", "/tmp/override.db")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.Bus.Channels) != 2 || cfg.Bus.Channels[0] != "can7" || cfg.Bus.Channels[1] != "can8" {
		t.Errorf("channels = %v, want [can7 can8]", cfg.Bus.Channels)
	}
	if cfg.Database.Path != "/tmp/override.db" {
		t.Errorf("database path = %q, want /tmp/override.db", cfg.Database.Path)
	}
}

func TestValidateRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty channels", "bus:\n  channels: []\n"},
		{"zero scan timeout", "bus:\n  scan_timeout: -1\n"},
		{"bad qos", "mqtt:\n  qos: 3\n"},
		{"influx enabled without url", "influxdb:\n  enabled: true\n"},
		{"zero replay scale", "replay:\n  scale: 0.0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.yaml)
			if _, err := Load(path); err == nil {
				t.Errorf("Load() with %s succeeded, want validation error", tt.name)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() on missing file succeeded, want error")
	}
}

func TestBusWindows(t *testing.T) {
	cfg := Default()
	if cfg.Bus.ScanWindow().Milliseconds() != 100 {
		t.Errorf("ScanWindow = %v, want 100ms", cfg.Bus.ScanWindow())
	}
	if cfg.Bus.ReadWindow().Milliseconds() != 200 {
		t.Errorf("ReadWindow = %v, want 200ms", cfg.Bus.ReadWindow())
	}
}
