package telemetry

import "errors"

// Domain-specific errors for the message codec.
// Use errors.Is() to check for these errors in calling code.
var (
	// ErrDecode is returned for any undecodable inbound payload.
	ErrDecode = errors.New("telemetry: decode failed")

	// ErrMissingCommand is returned when a command payload lacks the
	// mandatory command field. Wrapped by ErrDecode: an absent command is a
	// decode failure, not a dispatch failure.
	ErrMissingCommand = errors.New("telemetry: command field missing or empty")
)
