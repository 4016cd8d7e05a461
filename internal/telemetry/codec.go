package telemetry

import (
	"encoding/json"
	"fmt"
)

// maxCommandPayload bounds inbound command payloads (64KB).
// Command messages are tens of bytes; the bound keeps untrusted input from
// growing memory.
const maxCommandPayload = 64 << 10

// Encode serializes a telemetry envelope to its JSON wire form.
//
// Returns:
//   - []byte: The JSON payload
//   - error: Only on a non-serializable value (NaN/Inf reading), which the
//     sampler filters before envelopes are built
func Encode(env Envelope) ([]byte, error) {
	payload, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("encoding envelope: %w", err)
	}
	return payload, nil
}

// DecodeCommand parses an inbound command payload.
//
// Malformed or truncated input is never fatal: the caller logs the returned
// error and discards the message. A payload without a command field (or with
// an empty one) is itself a decode failure; it never reaches the dispatcher.
//
// Returns:
//   - Command: The decoded command on success
//   - error: A wrapped ErrDecode describing the failure
func DecodeCommand(payload []byte) (Command, error) {
	if len(payload) == 0 {
		return Command{}, fmt.Errorf("%w: empty payload", ErrDecode)
	}
	if len(payload) > maxCommandPayload {
		return Command{}, fmt.Errorf("%w: payload size %d exceeds maximum %d bytes", ErrDecode, len(payload), maxCommandPayload)
	}

	var cmd Command
	if err := json.Unmarshal(payload, &cmd); err != nil {
		return Command{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	if cmd.Command == "" {
		return Command{}, fmt.Errorf("%w: %w", ErrDecode, ErrMissingCommand)
	}

	return cmd, nil
}
