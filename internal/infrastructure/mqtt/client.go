package mqtt

import (
	"context"
	"fmt"
	"sync"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/neurohome/edge-agent/internal/infrastructure/config"
)

// Client wraps paho.mqtt.golang for the edge agent.
//
// Unlike a typical service-side MQTT wrapper, this client does NOT
// auto-reconnect: the agent's connectivity supervisor owns the retry policy
// and drives Connect again after a drop. Subscriptions are likewise not
// restored here; the supervisor redoes the subscribe handshake on every
// reconnect.
//
// Inbound messages are queued on a bounded channel and drained by the agent
// loop via Pump, keeping all protocol state on the loop's single goroutine.
//
// Thread Safety:
//   - All methods are safe for concurrent use; in practice only the agent
//     loop goroutine and paho's network goroutines touch the client.
type Client struct {
	client pahomqtt.Client
	cfg    config.MQTTConfig

	// inbound buffers received messages until the agent loop drains them.
	// When full, the oldest pending message is dropped.
	inbound chan Message

	// connected tracks the last observed connection state.
	connected bool
	connMu    sync.RWMutex

	logger   Logger
	loggerMu sync.RWMutex
}

// Message is one inbound publication awaiting dispatch.
type Message struct {
	Topic   string
	Payload []byte
}

// Logger interface for optional logging support.
// Compatible with logging.Logger and slog.Logger.
type Logger interface {
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// New creates a Client for the given configuration.
//
// The client starts disconnected; call Connect to establish the session.
func New(cfg config.MQTTConfig) *Client {
	c := &Client{
		cfg:     cfg,
		inbound: make(chan Message, inboundQueueSize),
	}

	opts := buildClientOptions(cfg)
	opts.SetConnectionLostHandler(func(_ pahomqtt.Client, err error) {
		c.handleConnectionLost(err)
	})

	c.client = pahomqtt.NewClient(opts)
	return c
}

// Connect makes a single connection attempt to the broker.
//
// There is no internal retry: a failed attempt returns an error and the
// caller decides when to try again.
//
// Parameters:
//   - ctx: Checked before the attempt; an already-cancelled context aborts
//     without touching the network
//
// Returns:
//   - error: nil on success, or a wrapped ErrConnectionFailed
func (c *Client) Connect(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	// Idempotent: a connect-and-subscribe handshake retried after a failed
	// subscribe reuses the live session.
	if c.IsConnected() {
		return nil
	}

	token := c.client.Connect()
	if !token.WaitTimeout(defaultConnectTimeout) {
		return fmt.Errorf("%w: timeout after %v", ErrConnectionFailed, defaultConnectTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	c.connMu.Lock()
	c.connected = true
	c.connMu.Unlock()

	return nil
}

// handleConnectionLost records the drop so IsConnected reflects it.
// Reconnection is the supervisor's job, not the client's.
func (c *Client) handleConnectionLost(err error) {
	c.connMu.Lock()
	c.connected = false
	c.connMu.Unlock()

	if logger := c.getLogger(); logger != nil {
		logger.Warn("broker connection lost", "error", err)
	}
}

// IsConnected returns the current connection state.
func (c *Client) IsConnected() bool {
	c.connMu.RLock()
	defer c.connMu.RUnlock()
	return c.connected && c.client.IsConnected()
}

// Pump drains all inbound messages currently queued, invoking handle for
// each, and returns the number handled.
//
// Pump never blocks: with no messages pending it returns 0 immediately.
// It is the single point where inbound traffic crosses onto the agent
// loop's goroutine.
func (c *Client) Pump(handle func(topic string, payload []byte)) int {
	n := 0
	for {
		select {
		case msg := <-c.inbound:
			handle(msg.Topic, msg.Payload)
			n++
		default:
			return n
		}
	}
}

// enqueue places a received message on the inbound queue.
//
// When the queue is full the oldest pending message is discarded to make
// room. Telemetry delivery is best-effort at-most-once; command delivery
// inherits the same bound so untrusted traffic cannot grow memory.
func (c *Client) enqueue(msg Message) {
	select {
	case c.inbound <- msg:
		return
	default:
	}

	// Queue full: drop the oldest and retry once.
	select {
	case dropped := <-c.inbound:
		if logger := c.getLogger(); logger != nil {
			logger.Warn("inbound queue full, dropping oldest message", "topic", dropped.Topic)
		}
	default:
	}

	select {
	case c.inbound <- msg:
	default:
	}
}

// Close disconnects from the broker.
//
// Safe to call on a client that never connected.
func (c *Client) Close() error {
	if c.client == nil {
		return nil
	}

	c.client.Disconnect(defaultDisconnectQuiesce)

	c.connMu.Lock()
	c.connected = false
	c.connMu.Unlock()

	return nil
}

// SetLogger sets a logger for connection-loss and queue-overflow warnings.
// If not set, these events are silent.
func (c *Client) SetLogger(logger Logger) {
	c.loggerMu.Lock()
	c.logger = logger
	c.loggerMu.Unlock()
}

// getLogger returns the current logger (may be nil).
func (c *Client) getLogger() Logger {
	c.loggerMu.RLock()
	defer c.loggerMu.RUnlock()
	return c.logger
}
