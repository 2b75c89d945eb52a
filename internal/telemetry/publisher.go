package telemetry

import (
	"encoding/json"
	"time"

	"github.com/stridelabs/servolink/internal/bus"
	"github.com/stridelabs/servolink/internal/directory"
	"github.com/stridelabs/servolink/internal/infrastructure/influxdb"
	"github.com/stridelabs/servolink/internal/infrastructure/logging"
	"github.com/stridelabs/servolink/internal/infrastructure/mqtt"
)

// Publisher fans events out to the configured telemetry sinks.
type Publisher struct {
	mqtt   *mqtt.Client
	influx *influxdb.Client
	log    *logging.Logger
	topics mqtt.Topics
}

// New creates a publisher. Either client may be nil; the publisher
// skips the missing sink.
func New(m *mqtt.Client, i *influxdb.Client, log *logging.Logger) *Publisher {
	return &Publisher{mqtt: m, influx: i, log: log.With("component", "telemetry")}
}

// DeviceDiscovered announces a discovery result on the device's
// retained discovery topic.
func (p *Publisher) DeviceDiscovered(rec directory.Record) {
	if p.mqtt == nil {
		return
	}
	payload, err := json.Marshal(map[string]any{
		"id":        rec.ID,
		"channel":   rec.Channel,
		"variant":   rec.Variant.String(),
		"last_seen": rec.LastSeen.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}
	if err := p.mqtt.PublishRetained(p.topics.DeviceDiscovered(rec.ID), payload); err != nil {
		p.log.Warn("discovery publish failed", "id", rec.ID, "error", err)
	}
}

// ActuatorState publishes one feedback sample to both sinks.
func (p *Publisher) ActuatorState(rec directory.Record, fb bus.Feedback) {
	if p.influx != nil {
		p.influx.WriteActuatorState(rec.ID, rec.Channel,
			fb.Position, fb.Velocity, fb.Torque, fb.Temperature)
	}
	if p.mqtt == nil {
		return
	}
	payload, err := json.Marshal(map[string]any{
		"id":          rec.ID,
		"channel":     rec.Channel,
		"position":    fb.Position,
		"velocity":    fb.Velocity,
		"torque":      fb.Torque,
		"temperature": fb.Temperature,
		"faults":      fb.Faults,
	})
	if err != nil {
		return
	}
	if err := p.mqtt.PublishRetained(p.topics.DeviceState(rec.ID), payload); err != nil {
		p.log.Warn("state publish failed", "id", rec.ID, "error", err)
	}
}

// ReplayProgress records one dispatched replay step. Shaped to plug
// straight into the scheduler's progress hook.
func (p *Publisher) ReplayProgress(session string, step int, at time.Duration) {
	if p.influx != nil {
		p.influx.WriteReplayStep(session, step, at)
	}
	if p.mqtt == nil {
		return
	}
	payload, err := json.Marshal(map[string]any{
		"session":   session,
		"step":      step,
		"offset_ms": float64(at) / float64(time.Millisecond),
	})
	if err != nil {
		return
	}
	if err := p.mqtt.Publish(p.topics.ReplayProgress(session), payload, 0, false); err != nil {
		p.log.Warn("progress publish failed", "session", session, "error", err)
	}
}

// ReplayStatus publishes a replay lifecycle transition.
func (p *Publisher) ReplayStatus(session, status string) {
	if p.mqtt == nil {
		return
	}
	payload, err := json.Marshal(map[string]any{
		"session":   session,
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}
	if err := p.mqtt.PublishRetained(p.topics.ReplayStatus(session), payload); err != nil {
		p.log.Warn("status publish failed", "session", session, "error", err)
	}
}
