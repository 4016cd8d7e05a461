package mqtt

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/neurohome/edge-agent/internal/infrastructure/config"
)

// testConfig returns a valid MQTT configuration for testing.
func testConfig() config.MQTTConfig {
	return config.MQTTConfig{
		Broker: config.MQTTBrokerConfig{
			Host:     "127.0.0.1",
			Port:     1883,
			ClientID: "edgeagent-test",
			TLS:      false,
		},
		QoS: 0,
		Reconnect: config.MQTTReconnectConfig{
			RetryIntervalMS: 5000,
		},
	}
}

// =============================================================================
// Construction Tests
// =============================================================================

func TestNew(t *testing.T) {
	client := New(testConfig())

	if client == nil {
		t.Fatal("New() returned nil")
	}
	if client.IsConnected() {
		t.Error("IsConnected() = true on fresh client, want false")
	}
	if cap(client.inbound) != inboundQueueSize {
		t.Errorf("inbound queue capacity = %d, want %d", cap(client.inbound), inboundQueueSize)
	}
}

func TestConnect_CancelledContext(t *testing.T) {
	client := New(testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.Connect(ctx)
	if !errors.Is(err, ErrConnectionFailed) {
		t.Errorf("Connect() error = %v, want ErrConnectionFailed", err)
	}
}

func TestClose_NeverConnected(t *testing.T) {
	client := New(testConfig())
	if err := client.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}

func TestClose_NilInner(t *testing.T) {
	client := &Client{}
	if err := client.Close(); err != nil {
		t.Errorf("Close() on zero client error = %v, want nil", err)
	}
}

// =============================================================================
// Publish / Subscribe Validation Tests
// =============================================================================

func TestPublish_EmptyTopic(t *testing.T) {
	client := New(testConfig())

	err := client.Publish("", []byte("{}"))
	if !errors.Is(err, ErrInvalidTopic) {
		t.Errorf("Publish() error = %v, want ErrInvalidTopic", err)
	}
}

func TestPublish_PayloadTooLarge(t *testing.T) {
	client := New(testConfig())

	err := client.Publish("device/dev-1/sensor/temperature", make([]byte, maxPayloadSize+1))
	if !errors.Is(err, ErrPublishFailed) {
		t.Errorf("Publish() error = %v, want ErrPublishFailed", err)
	}
}

func TestPublish_NotConnected(t *testing.T) {
	client := New(testConfig())

	err := client.Publish("device/dev-1/sensor/temperature", []byte("{}"))
	if !errors.Is(err, ErrNotConnected) {
		t.Errorf("Publish() error = %v, want ErrNotConnected", err)
	}
}

func TestSubscribe_EmptyTopic(t *testing.T) {
	client := New(testConfig())

	err := client.Subscribe("")
	if !errors.Is(err, ErrInvalidTopic) {
		t.Errorf("Subscribe() error = %v, want ErrInvalidTopic", err)
	}
}

func TestSubscribe_NotConnected(t *testing.T) {
	client := New(testConfig())

	err := client.Subscribe("device/dev-1/command")
	if !errors.Is(err, ErrNotConnected) {
		t.Errorf("Subscribe() error = %v, want ErrNotConnected", err)
	}
}

// =============================================================================
// Inbound Queue Tests
// =============================================================================

func TestPump_Empty(t *testing.T) {
	client := New(testConfig())

	n := client.Pump(func(string, []byte) {
		t.Error("handler invoked with no messages queued")
	})
	if n != 0 {
		t.Errorf("Pump() = %d, want 0", n)
	}
}

func TestPump_DrainsQueued(t *testing.T) {
	client := New(testConfig())

	client.enqueue(Message{Topic: "device/dev-1/command", Payload: []byte(`{"command":"led_on"}`)})
	client.enqueue(Message{Topic: "device/dev-1/command", Payload: []byte(`{"command":"led_off"}`)})

	var got []string
	n := client.Pump(func(topic string, payload []byte) {
		got = append(got, string(payload))
	})

	if n != 2 {
		t.Fatalf("Pump() = %d, want 2", n)
	}
	if !strings.Contains(got[0], "led_on") || !strings.Contains(got[1], "led_off") {
		t.Errorf("Pump() drained %v, want FIFO order led_on then led_off", got)
	}

	// Second pump finds nothing.
	if n := client.Pump(func(string, []byte) {}); n != 0 {
		t.Errorf("second Pump() = %d, want 0", n)
	}
}

func TestEnqueue_DropsOldestWhenFull(t *testing.T) {
	client := New(testConfig())

	for i := 0; i < inboundQueueSize; i++ {
		client.enqueue(Message{Topic: "device/dev-1/command", Payload: []byte("old")})
	}
	client.enqueue(Message{Topic: "device/dev-1/command", Payload: []byte("new")})

	var payloads []string
	n := client.Pump(func(_ string, payload []byte) {
		payloads = append(payloads, string(payload))
	})

	if n != inboundQueueSize {
		t.Fatalf("Pump() = %d, want queue bound %d", n, inboundQueueSize)
	}
	if payloads[len(payloads)-1] != "new" {
		t.Error("newest message was dropped; expected oldest to be dropped instead")
	}
}

// =============================================================================
// Connection-Lost Handling
// =============================================================================

func TestHandleConnectionLost(t *testing.T) {
	client := New(testConfig())
	client.connMu.Lock()
	client.connected = true
	client.connMu.Unlock()

	logger := &captureLogger{}
	client.SetLogger(logger)

	client.handleConnectionLost(errors.New("link down"))

	if client.IsConnected() {
		t.Error("IsConnected() = true after connection lost, want false")
	}
	if len(logger.warns) != 1 {
		t.Errorf("connection loss logged %d warnings, want 1", len(logger.warns))
	}
}

// captureLogger records log calls for assertions.
type captureLogger struct {
	warns  []string
	errors []string
}

func (l *captureLogger) Warn(msg string, _ ...any)  { l.warns = append(l.warns, msg) }
func (l *captureLogger) Error(msg string, _ ...any) { l.errors = append(l.errors, msg) }
