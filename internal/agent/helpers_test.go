package agent

import (
	"context"
	"errors"
	"time"
)

// Shared fakes for agent tests. All fakes are driven from the test
// goroutine only, mirroring the production single-goroutine model.

// fakeBroker is an in-memory Broker capability.
type fakeBroker struct {
	connected bool

	// connectFailures makes the next N Connect calls fail.
	connectFailures int
	connectCalls    int

	// subscribeFailures makes the next N Subscribe calls fail.
	subscribeFailures int
	subscribed        []string

	publishErr error
	published  []publishedMessage

	// inbound messages delivered on the next Pump.
	inbound []publishedMessage
}

type publishedMessage struct {
	topic   string
	payload []byte
}

var errFakeRefused = errors.New("fake broker: refused")

func (b *fakeBroker) Connect(_ context.Context) error {
	b.connectCalls++
	if b.connectFailures > 0 {
		b.connectFailures--
		return errFakeRefused
	}
	b.connected = true
	return nil
}

func (b *fakeBroker) IsConnected() bool {
	return b.connected
}

func (b *fakeBroker) Subscribe(topic string) error {
	if b.subscribeFailures > 0 {
		b.subscribeFailures--
		return errFakeRefused
	}
	b.subscribed = append(b.subscribed, topic)
	return nil
}

func (b *fakeBroker) Publish(topic string, payload []byte) error {
	if !b.connected {
		return errFakeRefused
	}
	if b.publishErr != nil {
		return b.publishErr
	}
	b.published = append(b.published, publishedMessage{topic: topic, payload: payload})
	return nil
}

func (b *fakeBroker) Pump(handle func(topic string, payload []byte)) int {
	n := len(b.inbound)
	for _, msg := range b.inbound {
		handle(msg.topic, msg.payload)
	}
	b.inbound = nil
	return n
}

// fakeClock advances instantly through sleeps and records them.
type fakeClock struct {
	now    uint64
	sleeps []time.Duration

	// cancelAfter, when positive, cancels the attached context once that
	// many sleeps have happened. Used to break out of indefinite retry.
	cancelAfter int
	cancel      context.CancelFunc
}

func (c *fakeClock) NowMillis() uint64 {
	return c.now
}

func (c *fakeClock) Sleep(_ context.Context, d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.now += uint64(d.Milliseconds())
	if c.cancelAfter > 0 && len(c.sleeps) >= c.cancelAfter && c.cancel != nil {
		c.cancel()
	}
}

// fakeSensors returns fixed channel values.
type fakeSensors struct {
	temp     float64
	humidity float64
	motion   bool
	lightRaw int
}

func (s *fakeSensors) Temperature() float64 { return s.temp }
func (s *fakeSensors) Humidity() float64    { return s.humidity }
func (s *fakeSensors) Motion() bool         { return s.motion }
func (s *fakeSensors) LightRaw() int        { return s.lightRaw }

// fakeActuator records output writes.
type fakeActuator struct {
	state  bool
	writes int
}

func (a *fakeActuator) SetOutput(on bool) {
	a.state = on
	a.writes++
}

// recordLogger counts log calls per level.
type recordLogger struct {
	debugs, infos, warns, errs []string
}

func (l *recordLogger) Debug(msg string, _ ...any) { l.debugs = append(l.debugs, msg) }
func (l *recordLogger) Info(msg string, _ ...any)  { l.infos = append(l.infos, msg) }
func (l *recordLogger) Warn(msg string, _ ...any)  { l.warns = append(l.warns, msg) }
func (l *recordLogger) Error(msg string, _ ...any) { l.errs = append(l.errs, msg) }
