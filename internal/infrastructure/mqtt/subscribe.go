package mqtt

import (
	"fmt"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
)

// Subscribe registers interest in a topic and routes its messages onto the
// client's inbound queue, to be drained by Pump.
//
// Subscriptions live only as long as the current connection. After a drop
// the supervisor must Subscribe again; nothing is tracked or restored here.
//
// Parameters:
//   - topic: The topic pattern to subscribe to
//
// Returns:
//   - error: nil on success, or wrapped error describing the failure
func (c *Client) Subscribe(topic string) error {
	if topic == "" {
		return ErrInvalidTopic
	}

	if !c.IsConnected() {
		return ErrNotConnected
	}

	handler := func(_ pahomqtt.Client, msg pahomqtt.Message) {
		c.enqueue(Message{
			Topic:   msg.Topic(),
			Payload: msg.Payload(),
		})
	}

	token := c.client.Subscribe(topic, byte(c.cfg.QoS), handler)
	if !token.WaitTimeout(defaultOpTimeout) {
		return fmt.Errorf("%w: timeout after %v", ErrSubscribeFailed, defaultOpTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrSubscribeFailed, err)
	}

	return nil
}
