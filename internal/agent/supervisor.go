package agent

import (
	"context"
	"time"
)

// ConnState represents the supervisor's view of broker connectivity.
type ConnState int

// Connection states. The supervisor is the only writer; transitions are the
// only legal mutations.
const (
	StateDisconnected ConnState = iota
	StateConnecting
	StateConnected
)

// String returns the state name for logging.
func (s ConnState) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	default:
		return "disconnected"
	}
}

// Supervisor is the connectivity state machine.
//
// It ensures the broker session is up before any telemetry flows, owns the
// fixed-interval retry policy, and performs the command-topic subscribe
// handshake exactly once per connection. Connectivity failure is never
// fatal: the supervisor retries indefinitely and the agent simply publishes
// nothing while disconnected.
//
// All state is owned by the agent loop's goroutine; the supervisor is not
// safe for concurrent use and does not need to be.
type Supervisor struct {
	broker        Broker
	commandTopic  string
	retryInterval time.Duration
	clock         Clock
	log           Logger

	state ConnState

	// lastAttemptMillis records when the previous connect attempt started.
	// Reset to zero on successful connect.
	lastAttemptMillis uint64
}

// NewSupervisor creates a Supervisor for the given broker session.
//
// Parameters:
//   - broker: The session to supervise
//   - commandTopic: Topic for the per-connection subscribe handshake
//   - retryInterval: Fixed delay between failed connect attempts
//   - clock: Time source (injectable for tests)
//   - log: Logger for connectivity transitions
func NewSupervisor(broker Broker, commandTopic string, retryInterval time.Duration, clock Clock, log Logger) *Supervisor {
	return &Supervisor{
		broker:        broker,
		commandTopic:  commandTopic,
		retryInterval: retryInterval,
		clock:         clock,
		log:           log,
		state:         StateDisconnected,
	}
}

// State returns the current connection state.
func (s *Supervisor) State() ConnState {
	return s.state
}

// EnsureConnected blocks until the broker session is up, retrying failed
// attempts at the fixed interval indefinitely.
//
// This is the agent's one deliberate blocking point: while reconnecting, the
// device has nothing useful to do, so sampling and command processing starve
// by design.
//
// Returns:
//   - error: Only the context's error when cancelled; connect failures are
//     retried, never returned
func (s *Supervisor) EnsureConnected(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := s.attempt(ctx)
		if err == nil {
			return nil
		}
		s.log.Warn("broker connect failed, retrying",
			"error", err,
			"retry_interval", s.retryInterval,
		)

		s.clock.Sleep(ctx, s.retryInterval)
	}
}

// attempt makes one connect-and-subscribe handshake.
//
// The subscription is tied 1:1 to the connection: a session that cannot
// subscribe is torn back down to Disconnected so the next attempt redoes
// both steps.
func (s *Supervisor) attempt(ctx context.Context) error {
	s.state = StateConnecting
	s.lastAttemptMillis = s.clock.NowMillis()

	if err := s.broker.Connect(ctx); err != nil {
		s.state = StateDisconnected
		return err
	}

	if err := s.broker.Subscribe(s.commandTopic); err != nil {
		s.state = StateDisconnected
		return err
	}

	s.state = StateConnected
	s.lastAttemptMillis = 0
	s.log.Info("connected to broker", "subscribed", s.commandTopic)
	return nil
}

// Poll is the non-blocking steady-state check: it observes link loss and
// demotes the state so the loop re-enters the blocking connect path.
func (s *Supervisor) Poll() {
	if s.state == StateConnected && !s.broker.IsConnected() {
		s.state = StateDisconnected
		s.log.Warn("broker connection lost")
	}
}
