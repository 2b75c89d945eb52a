package telemetry

import (
	"testing"
	"time"

	"github.com/stridelabs/servolink/internal/bus"
	"github.com/stridelabs/servolink/internal/directory"
	"github.com/stridelabs/servolink/internal/infrastructure/config"
	"github.com/stridelabs/servolink/internal/infrastructure/logging"
	"github.com/stridelabs/servolink/internal/param"
)

// ─── Nil-Sink Safety ────────────────────────────────────────────────────────

// A publisher with no sinks must accept every call without panicking;
// callers on the control path never guard their telemetry calls.
func TestPublisherNilSinks(t *testing.T) {
	log := logging.New(config.LoggingConfig{Level: "error", Format: "text"}, "test")

	p := New(nil, nil, log)

	rec := directory.Record{
		ID:       41,
		Channel:  "can0",
		Variant:  param.Variant03,
		LastSeen: time.Now(),
	}

	p.DeviceDiscovered(rec)
	p.ActuatorState(rec, bus.Feedback{Position: 1.2, Velocity: -0.4, Torque: 3.1, Temperature: 38.5})
	p.ReplayProgress("session-1", 0, 0)
	p.ReplayProgress("session-1", 3, 150*time.Millisecond)
	p.ReplayStatus("session-1", "completed")
}
