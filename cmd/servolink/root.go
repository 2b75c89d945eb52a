package main

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/stridelabs/servolink/internal/bus"
	"github.com/stridelabs/servolink/internal/directory"
	"github.com/stridelabs/servolink/internal/history"
	"github.com/stridelabs/servolink/internal/infrastructure/config"
	"github.com/stridelabs/servolink/internal/infrastructure/database"
	"github.com/stridelabs/servolink/internal/infrastructure/influxdb"
	"github.com/stridelabs/servolink/internal/infrastructure/logging"
	"github.com/stridelabs/servolink/internal/infrastructure/mqtt"
	"github.com/stridelabs/servolink/internal/telemetry"
)

// defaultConfigPath is used when neither --config nor SERVOLINK_CONFIG
// points elsewhere. A missing default file falls back to built-in
// defaults so the tool works out of the box.
const defaultConfigPath = "configs/config.yaml"

var (
	flagConfig   string
	flagChannels []string
	flagFormat   string
)

var rootCmd = &cobra.Command{
	Use:   "servolink",
	Short: "Actuator fleet control and trajectory replay",
	Long: `servolink drives a fleet of servo actuators over CAN: device
discovery across channels, typed parameter reads and dumps, direct
motion commands, and real-time replay of recorded trajectories.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI under the given context.
func Execute(ctx context.Context) error {
	rootCmd.Version = fmt.Sprintf("%s (%s)", version, commit)
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (default "+defaultConfigPath+")")
	rootCmd.PersistentFlags().StringSliceVar(&flagChannels, "channels", nil, "CAN channels to probe, overriding the configured set")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "table", "output format: table or json")
}

// app holds the wired collaborators one command invocation needs.
// Commands build it with setup() and release it with close().
type app struct {
	cfg    *config.Config
	log    *logging.Logger
	driver bus.Driver
	dir    *directory.Directory
	pub    *telemetry.Publisher

	mqttClient   *mqtt.Client
	influxClient *influxdb.Client
	db           *database.DB
	archive      *history.Archive
}

// setup loads configuration and wires the driver, directory and
// telemetry sinks. The history archive is opened lazily by the
// commands that record to it.
func setup() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if len(flagChannels) > 0 {
		cfg.Bus.Channels = flagChannels
	}
	if flagFormat != "table" && flagFormat != "json" {
		return nil, fmt.Errorf("unknown output format %q", flagFormat)
	}

	log := logging.New(cfg.Logging, version)

	driver, err := newDriver(cfg)
	if err != nil {
		return nil, err
	}
	driver = bus.WithTimeouts(driver, bus.Timeouts{
		Scan:    cfg.Bus.ScanWindow(),
		Read:    cfg.Bus.ReadWindow(),
		Command: cfg.Bus.CommandWindow(),
	})

	a := &app{
		cfg:    cfg,
		log:    log,
		driver: driver,
		dir:    directory.New(driver, cfg.Bus, log),
	}

	// Open the channels up front; a channel that will not open is
	// skipped by discovery anyway, so failures only warn here.
	connectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for _, ch := range cfg.Bus.Channels {
		if err := driver.Connect(connectCtx, ch); err != nil {
			log.Warn("channel open failed", "channel", ch, "error", err)
		}
	}

	if cfg.MQTT.Enabled {
		a.mqttClient, err = mqtt.Connect(cfg.MQTT)
		if err != nil {
			return nil, fmt.Errorf("connecting to MQTT: %w", err)
		}
	}
	if cfg.InfluxDB.Enabled {
		a.influxClient, err = influxdb.Connect(cfg.InfluxDB)
		if err != nil {
			a.close()
			return nil, fmt.Errorf("connecting to InfluxDB: %w", err)
		}
	}
	a.pub = telemetry.New(a.mqttClient, a.influxClient, log)

	return a, nil
}

// openArchive opens the SQLite history archive on first use.
func (a *app) openArchive() (*history.Archive, error) {
	if a.archive != nil {
		return a.archive, nil
	}
	db, err := database.Open(database.Config{
		Path:        a.cfg.Database.Path,
		WALMode:     a.cfg.Database.WALMode,
		BusyTimeout: a.cfg.Database.BusyTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	archive, err := history.New(db.DB)
	if err != nil {
		db.Close() //nolint:errcheck // Best effort cleanup on error path
		return nil, fmt.Errorf("preparing history archive: %w", err)
	}
	a.db = db
	a.archive = archive
	return archive, nil
}

// close releases every connection setup or openArchive established.
func (a *app) close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Error("closing history database", "error", err)
		}
	}
	if a.influxClient != nil {
		if err := a.influxClient.Close(); err != nil {
			a.log.Error("closing InfluxDB", "error", err)
		}
	}
	if a.mqttClient != nil {
		if err := a.mqttClient.Close(); err != nil {
			a.log.Error("closing MQTT", "error", err)
		}
	}
}

// loadConfig resolves the configuration source. An explicit --config
// must exist; the default path is optional.
func loadConfig() (*config.Config, error) {
	if flagConfig != "" {
		return config.Load(flagConfig)
	}
	path := os.Getenv("SERVOLINK_CONFIG")
	if path == "" {
		path = defaultConfigPath
	}
	if _, err := os.Stat(path); err != nil {
		cfg := config.Default()
		applyEnvDefaults(cfg)
		return cfg, nil
	}
	return config.Load(path)
}

// applyEnvDefaults mirrors config.Load's env handling for the
// no-config-file path.
func applyEnvDefaults(cfg *config.Config) {
	if v := os.Getenv("SERVOLINK_BUS_DRIVER"); v != "" {
		cfg.Bus.Driver = v
	}
	if v := os.Getenv("SERVOLINK_DATABASE_PATH"); v != "" {
		cfg.Database.Path = v
	}
}

// newDriver builds the configured bus transport.
func newDriver(cfg *config.Config) (bus.Driver, error) {
	switch cfg.Bus.Driver {
	case "sim":
		return newSimFleet(), nil
	default:
		return nil, fmt.Errorf("unknown bus driver %q", cfg.Bus.Driver)
	}
}

// newSimFleet seeds the simulator with the standard bench fleet: one
// device per variant family, spread over two channels.
func newSimFleet() *bus.Simulator {
	sim := bus.NewSimulator()
	sim.AddDevice("can0", 1, "0.0.1.7")
	sim.AddDevice("can0", 2, "0.2.3.1")
	sim.AddDevice("can1", 3, "0.3.1.7")
	sim.AddDevice("can1", 4, "0.4.0.2")

	// Seed a few typed parameters so read/dump have data to decode.
	for _, d := range []struct {
		channel string
		id      uint8
		torque  float32
		current float32
		kt      float32
	}{
		{"can0", 1, 14, 16, 0.87},
		{"can0", 2, 17, 23, 0.87},
		{"can1", 3, 60, 43, 1.22},
		{"can1", 4, 120, 90, 1.5},
	} {
		sim.SetParameter(d.channel, d.id, 0x2007, f32le(d.torque))
		sim.SetParameter(d.channel, d.id, 0x2019, f32le(d.current))
		sim.SetParameter(d.channel, d.id, 0x303B, f32le(d.kt))
		sim.SetParameter(d.channel, d.id, 0x3007, u16le(24000))
	}
	return sim
}

func f32le(v float32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
	return b
}

func u16le(v uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return b
}

// reached converts a per-device success count into the command's exit
// status: at least one targeted device must have answered.
func reached(n int) error {
	if n == 0 {
		return fmt.Errorf("no targeted device reached")
	}
	return nil
}

// deviceRow is the common JSON shape for discovered devices.
type deviceRow struct {
	ID      uint8  `json:"id"`
	Channel string `json:"channel"`
	Variant string `json:"variant,omitempty"`
}

func toRow(rec directory.Record) deviceRow {
	return deviceRow{ID: rec.ID, Channel: rec.Channel, Variant: rec.Variant.String()}
}
