package agent

import (
	"context"
	"time"

	"github.com/neurohome/edge-agent/internal/infrastructure/mqtt"
	"github.com/neurohome/edge-agent/internal/telemetry"
)

// idleDelay is the cooperative yield between loop iterations. The sampler
// owns the telemetry cadence; this only keeps the loop from spinning a core
// while idle.
const idleDelay = 10 * time.Millisecond

// Loop is the single-threaded cooperative driver.
//
// One iteration ticks the connectivity supervisor, pumps inbound commands,
// and fires the sampler. All mutable state (connection state, retry state,
// sampling cadence) is owned by the goroutine running Run; no locking is
// needed because nothing else can observe it.
type Loop struct {
	deviceID   string
	broker     Broker
	supervisor *Supervisor
	sampler    *Sampler
	dispatcher *Dispatcher
	clock      Clock
	log        Logger

	topics mqtt.Topics
}

// NewLoop assembles the agent from its parts.
//
// Parameters:
//   - deviceID: The immutable device identity; appears in every topic name
//     and envelope
//   - broker: The broker session capability
//   - supervisor: Connectivity state machine
//   - sampler: Telemetry pacing
//   - dispatcher: Command execution
//   - clock: Time source
//   - log: Logger
func NewLoop(deviceID string, broker Broker, supervisor *Supervisor, sampler *Sampler, dispatcher *Dispatcher, clock Clock, log Logger) *Loop {
	return &Loop{
		deviceID:   deviceID,
		broker:     broker,
		supervisor: supervisor,
		sampler:    sampler,
		dispatcher: dispatcher,
		clock:      clock,
		log:        log,
	}
}

// Run executes the agent loop until the context is cancelled.
//
// The loop never terminates on its own: every failure mode inside an
// iteration is recovered (reconnect, skip, discard) rather than surfaced.
//
// Returns:
//   - error: The context's error once cancelled
func (l *Loop) Run(ctx context.Context) error {
	l.log.Info("agent loop started", "device_id", l.deviceID)

	for {
		if err := l.step(ctx); err != nil {
			l.log.Info("agent loop stopped", "reason", err)
			return err
		}
		l.clock.Sleep(ctx, idleDelay)
	}
}

// step runs one loop iteration.
//
// Order matters and matches the device's steady-state contract:
//  1. Reconnect (blocking with backoff) if the link is down
//  2. Pump inbound commands
//  3. Sample sensors and publish envelopes
func (l *Loop) step(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.supervisor.Poll()
	if l.supervisor.State() != StateConnected {
		if err := l.supervisor.EnsureConnected(ctx); err != nil {
			return err
		}
	}

	l.broker.Pump(l.handleInbound)

	now := l.clock.NowMillis()
	for _, reading := range l.sampler.Tick(now) {
		l.publishReading(now, reading)
	}

	return nil
}

// handleInbound decodes and dispatches one command message.
// Malformed payloads are logged and discarded, never propagated.
func (l *Loop) handleInbound(topic string, payload []byte) {
	cmd, err := telemetry.DecodeCommand(payload)
	if err != nil {
		l.log.Warn("discarding undecodable command message",
			"topic", topic,
			"error", err,
		)
		return
	}
	l.dispatcher.Dispatch(cmd.Command)
}

// publishReading wraps one reading in an envelope and publishes it.
//
// No publish is attempted while disconnected, and a transient publish
// failure drops the envelope: delivery is best-effort at-most-once with no
// queue of unsent telemetry.
func (l *Loop) publishReading(nowMillis uint64, reading telemetry.Reading) {
	if !l.broker.IsConnected() {
		return
	}

	env := telemetry.NewEnvelope(l.deviceID, nowMillis, reading)
	payload, err := telemetry.Encode(env)
	if err != nil {
		l.log.Error("failed to encode envelope",
			"sensor", reading.Type,
			"error", err,
		)
		return
	}

	topic := l.topics.Sensor(l.deviceID, string(reading.Type))
	if err := l.broker.Publish(topic, payload); err != nil {
		l.log.Warn("publish dropped",
			"topic", topic,
			"error", err,
		)
		return
	}

	l.log.Debug("published telemetry", "topic", topic, "payload", string(payload))
}
