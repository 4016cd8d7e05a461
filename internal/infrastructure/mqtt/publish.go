package mqtt

import (
	"fmt"
)

// Maximum payload size for outbound MQTT messages (64KB).
// Telemetry envelopes are a few hundred bytes; anything near this limit
// indicates a bug upstream.
const maxPayloadSize = 64 << 10

// Publish sends a message to the specified MQTT topic.
//
// Delivery uses the configured QoS and is never retained: telemetry is a
// stream of fresh readings, not state, and a failed publish is simply
// dropped by the caller.
//
// Parameters:
//   - topic: The topic to publish to (e.g., "device/dev-1/sensor/temperature")
//   - payload: The message payload (JSON, max 64KB)
//
// Returns:
//   - error: nil on success, or wrapped error describing the failure
func (c *Client) Publish(topic string, payload []byte) error {
	if topic == "" {
		return ErrInvalidTopic
	}
	if len(payload) > maxPayloadSize {
		return fmt.Errorf("%w: payload size %d exceeds maximum %d bytes", ErrPublishFailed, len(payload), maxPayloadSize)
	}

	if !c.IsConnected() {
		return ErrNotConnected
	}

	token := c.client.Publish(topic, byte(c.cfg.QoS), false, payload)
	if !token.WaitTimeout(defaultOpTimeout) {
		return fmt.Errorf("%w: timeout after %v", ErrPublishFailed, defaultOpTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrPublishFailed, err)
	}

	return nil
}
