// Package agent implements the NeuroHome edge agent's control loop.
//
// The agent bridges local sensors and an actuator to an MQTT broker: it
// keeps the broker session alive, samples sensors on a fixed cadence,
// publishes one telemetry envelope per reading, and executes remote
// commands from the device's command topic.
//
// # Structure
//
//   - Supervisor: connectivity state machine with fixed-interval indefinite
//     retry and a per-connection subscribe handshake
//   - Sampler: interval-paced sensor reads, independent of connectivity
//   - Dispatcher: command string -> actuator side effect
//   - Loop: the single cooperative driver ticking the three above
//
// # Concurrency model
//
// One goroutine runs the loop and owns all agent state. The broker client
// delivers inbound messages through a bounded queue that the loop drains
// each iteration, so no agent state is ever touched concurrently. The only
// blocking point is the reconnect retry sleep, during which sampling and
// command processing deliberately starve.
//
// # Failure semantics
//
// Nothing in this package is fatal. Connect failures retry forever, NaN
// sensor reads skip one channel for one cycle, undecodable commands are
// logged and discarded, and failed publishes are dropped without retry.
//
// External collaborators (sensor drivers, the actuator, the broker session,
// the clock) are consumed through the capability interfaces in
// capabilities.go.
package agent
