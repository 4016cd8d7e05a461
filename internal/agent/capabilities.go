package agent

import (
	"context"
	"time"
)

// Capability interfaces consumed by the agent core. Each exposes exactly the
// operations the core needs from an external collaborator; hardware drivers
// and the broker session live behind them.

// Sensors reads the device's four sensor channels.
//
// Temperature and Humidity report transient faults as NaN; the sampler skips
// those readings. Motion and LightRaw have no fault path and always produce
// a value.
type Sensors interface {
	// Temperature returns degrees Celsius, or NaN on a transient fault.
	Temperature() float64

	// Humidity returns percent relative humidity, or NaN on a transient fault.
	Humidity() float64

	// Motion reports whether motion is currently detected.
	Motion() bool

	// LightRaw returns the light sensor's raw ADC value in [0,4095].
	LightRaw() int
}

// Actuator drives the device's digital output.
//
// Writes are assumed infallible at this layer; hardware faults are out of
// scope for the agent.
type Actuator interface {
	SetOutput(on bool)
}

// Broker is the publish/subscribe session the agent maintains.
//
// Connect is a single attempt; the supervisor owns retry. Subscriptions last
// one connection. Pump drains inbound messages without blocking and returns
// how many were handled.
type Broker interface {
	Connect(ctx context.Context) error
	IsConnected() bool
	Subscribe(topic string) error
	Publish(topic string, payload []byte) error
	Pump(handle func(topic string, payload []byte)) int
}

// Clock supplies time to the agent so tests can inject a fake.
//
// NowMillis counts milliseconds from agent boot, mirroring the embedded
// platform's monotonic millisecond counter. Sleep must return early when the
// context is cancelled.
type Clock interface {
	NowMillis() uint64
	Sleep(ctx context.Context, d time.Duration)
}

// Logger is the logging interface consumed by the agent core.
// Compatible with logging.Logger and slog.Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}
