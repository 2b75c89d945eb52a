package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for servolink.
// All configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	Bus      BusConfig      `yaml:"bus"`
	Replay   ReplayConfig   `yaml:"replay"`
	Database DatabaseConfig `yaml:"database"`
	MQTT     MQTTConfig     `yaml:"mqtt"`
	InfluxDB InfluxDBConfig `yaml:"influxdb"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// BusConfig contains CAN channel and bus timing settings.
type BusConfig struct {
	// Driver selects the transport implementation ("sim" for the
	// in-memory simulator).
	Driver string `yaml:"driver"`

	// Channels is the ordered list of CAN interfaces to probe.
	// Discovery tries channels in this order; the first channel that
	// answers for a device id wins.
	Channels []string `yaml:"channels"`

	// ScanTimeout is the per-channel response window for a range scan (ms).
	ScanTimeout int `yaml:"scan_timeout"`

	// ReadTimeout is the per-parameter read response window (ms).
	ReadTimeout int `yaml:"read_timeout"`

	// CommandTimeout is the window for command acknowledgement (ms).
	CommandTimeout int `yaml:"command_timeout"`

	// BulkScanThreshold is the request-set size above which a bulk scan
	// issues one wide-range query per channel instead of one per id.
	BulkScanThreshold int `yaml:"bulk_scan_threshold"`
}

// ReplayConfig contains trajectory replay settings.
type ReplayConfig struct {
	// TimeField is the NDJSON field carrying the microsecond timestamp.
	TimeField string `yaml:"time_field"`

	// ValueField is the NDJSON field carrying the per-joint value array.
	ValueField string `yaml:"value_field"`

	// Scale is a multiplier applied to every target value.
	Scale float64 `yaml:"scale"`

	// JointTable is the path to the joint-name → device-id table (JSON).
	JointTable string `yaml:"joint_table"`

	// PositionGain and VelocityGain are the stiffness and damping
	// gains applied to every replayed position command.
	PositionGain float64 `yaml:"position_gain"`
	VelocityGain float64 `yaml:"velocity_gain"`
}

// DatabaseConfig contains SQLite database settings for the history archive.
type DatabaseConfig struct {
	Path        string `yaml:"path"`
	WALMode     bool   `yaml:"wal_mode"`
	BusyTimeout int    `yaml:"busy_timeout"`
}

// MQTTConfig contains MQTT broker connection settings for telemetry publishing.
type MQTTConfig struct {
	Enabled   bool                `yaml:"enabled"`
	Broker    MQTTBrokerConfig    `yaml:"broker"`
	Auth      MQTTAuthConfig      `yaml:"auth"`
	QoS       int                 `yaml:"qos"`
	Reconnect MQTTReconnectConfig `yaml:"reconnect"`
}

// MQTTBrokerConfig contains MQTT broker connection details.
type MQTTBrokerConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	TLS      bool   `yaml:"tls"`
	ClientID string `yaml:"client_id"`
}

// MQTTAuthConfig contains MQTT authentication credentials.
type MQTTAuthConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// MQTTReconnectConfig contains MQTT reconnection settings (seconds).
type MQTTReconnectConfig struct {
	InitialDelay int `yaml:"initial_delay"`
	MaxDelay     int `yaml:"max_delay"`
	MaxAttempts  int `yaml:"max_attempts"`
}

// InfluxDBConfig contains InfluxDB connection settings for telemetry recording.
type InfluxDBConfig struct {
	Enabled       bool   `yaml:"enabled"`
	URL           string `yaml:"url"`
	Token         string `yaml:"token"`
	Org           string `yaml:"org"`
	Bucket        string `yaml:"bucket"`
	BatchSize     int    `yaml:"batch_size"`
	FlushInterval int    `yaml:"flush_interval"`
}

// LoggingConfig contains structured logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Load reads configuration from a YAML file and applies environment variable overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern: SERVOLINK_SECTION_KEY
// For example: SERVOLINK_DATABASE_PATH, SERVOLINK_BUS_CHANNELS
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: If file cannot be read, parsed, or validation fails
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a Config with sensible defaults.
//
// The default channel set matches the standard five-interface harness
// wiring (can0 through can4).
func Default() *Config {
	return &Config{
		Bus: BusConfig{
			Driver:            "sim",
			Channels:          []string{"can0", "can1", "can2", "can3", "can4"},
			ScanTimeout:       100,
			ReadTimeout:       200,
			CommandTimeout:    100,
			BulkScanThreshold: 10,
		},
		Replay: ReplayConfig{
			TimeField:    "t_us",
			ValueField:   "joint_pos",
			Scale:        1.0,
			JointTable:   "./params/joints.json",
			PositionGain: 50.0,
			VelocityGain: 2.0,
		},
		Database: DatabaseConfig{
			Path:        "./data/servolink.db",
			WALMode:     true,
			BusyTimeout: 5,
		},
		MQTT: MQTTConfig{
			Broker: MQTTBrokerConfig{
				Host:     "localhost",
				Port:     1883,
				ClientID: "servolink",
			},
			QoS: 1,
			Reconnect: MQTTReconnectConfig{
				InitialDelay: 1,
				MaxDelay:     60,
				MaxAttempts:  0,
			},
		},
		InfluxDB: InfluxDBConfig{
			BatchSize:     100,
			FlushInterval: 10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables follow the pattern: SERVOLINK_SECTION_KEY
func applyEnvOverrides(cfg *Config) {
	// Bus
	if v := os.Getenv("SERVOLINK_BUS_DRIVER"); v != "" {
		cfg.Bus.Driver = v
	}
	if v := os.Getenv("SERVOLINK_BUS_CHANNELS"); v != "" {
		cfg.Bus.Channels = splitList(v)
	}

	// Database
	if v := os.Getenv("SERVOLINK_DATABASE_PATH"); v != "" {
		cfg.Database.Path = v
	}

	// MQTT
	if v := os.Getenv("SERVOLINK_MQTT_HOST"); v != "" {
		cfg.MQTT.Broker.Host = v
	}
	if v := os.Getenv("SERVOLINK_MQTT_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.MQTT.Broker.Port = port
		}
	}
	if v := os.Getenv("SERVOLINK_MQTT_USERNAME"); v != "" {
		cfg.MQTT.Auth.Username = v
	}
	if v := os.Getenv("SERVOLINK_MQTT_PASSWORD"); v != "" {
		cfg.MQTT.Auth.Password = v
	}

	// InfluxDB
	if v := os.Getenv("SERVOLINK_INFLUXDB_TOKEN"); v != "" {
		cfg.InfluxDB.Token = v
	}
}

// splitList parses a comma-separated list, trimming whitespace and
// dropping empty entries.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Validate checks the configuration for errors.
//
// Returns:
//   - error: Description of validation failure, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	if c.Bus.Driver == "" {
		errs = append(errs, "bus.driver is required")
	}
	if len(c.Bus.Channels) == 0 {
		errs = append(errs, "bus.channels must list at least one channel")
	}
	if c.Bus.ScanTimeout <= 0 {
		errs = append(errs, "bus.scan_timeout must be positive")
	}
	if c.Bus.ReadTimeout <= 0 {
		errs = append(errs, "bus.read_timeout must be positive")
	}
	if c.Bus.BulkScanThreshold < 1 {
		errs = append(errs, "bus.bulk_scan_threshold must be at least 1")
	}

	if c.Replay.TimeField == "" {
		errs = append(errs, "replay.time_field is required")
	}
	if c.Replay.ValueField == "" {
		errs = append(errs, "replay.value_field is required")
	}
	if c.Replay.Scale == 0 {
		errs = append(errs, "replay.scale must be non-zero")
	}
	if c.Replay.PositionGain < 0 || c.Replay.VelocityGain < 0 {
		errs = append(errs, "replay gains must be non-negative")
	}

	if c.Database.Path == "" {
		errs = append(errs, "database.path is required")
	}

	if c.MQTT.QoS < 0 || c.MQTT.QoS > 2 {
		errs = append(errs, "mqtt.qos must be 0, 1, or 2")
	}

	if c.InfluxDB.Enabled && c.InfluxDB.URL == "" {
		errs = append(errs, "influxdb.url is required when influxdb is enabled")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// ScanWindow returns the per-channel scan window as a Duration.
func (c *BusConfig) ScanWindow() time.Duration {
	return time.Duration(c.ScanTimeout) * time.Millisecond
}

// ReadWindow returns the parameter read window as a Duration.
func (c *BusConfig) ReadWindow() time.Duration {
	return time.Duration(c.ReadTimeout) * time.Millisecond
}

// CommandWindow returns the command acknowledgement window as a Duration.
func (c *BusConfig) CommandWindow() time.Duration {
	return time.Duration(c.CommandTimeout) * time.Millisecond
}
