package influxdb

import (
	"strconv"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// WriteActuatorState records one actuator feedback sample.
//
// The write is non-blocking; data is batched and sent asynchronously.
//
// Parameters:
//   - id: Actuator bus address
//   - channel: Bus channel the sample was read from
//   - position, velocity, torque, temperature: The sampled values
func (c *Client) WriteActuatorState(id uint8, channel string, position, velocity, torque, temperature float64) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"actuator_state",
		map[string]string{
			"actuator_id": strconv.Itoa(int(id)),
			"channel":     channel,
		},
		map[string]interface{}{
			"position":    position,
			"velocity":    velocity,
			"torque":      torque,
			"temperature": temperature,
		},
		time.Now(),
	)
	c.writeAPI.WritePoint(point)
}

// WriteReplayStep records one dispatched replay step with its
// scheduled offset, for post-run timing analysis.
//
// Parameters:
//   - session: Replay session id
//   - step: Step index
//   - offset: The step's scheduled time relative to trajectory start
func (c *Client) WriteReplayStep(session string, step int, offset time.Duration) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"replay_step",
		map[string]string{
			"session": session,
		},
		map[string]interface{}{
			"step":      step,
			"offset_ms": float64(offset) / float64(time.Millisecond),
		},
		time.Now(),
	)
	c.writeAPI.WritePoint(point)
}

// WritePoint writes a custom point with full control over tags and fields.
func (c *Client) WritePoint(measurement string, tags map[string]string, fields map[string]interface{}) {
	if !c.IsConnected() {
		return
	}
	c.writeAPI.WritePoint(write.NewPoint(measurement, tags, fields, time.Now()))
}
