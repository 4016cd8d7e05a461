// Package logging provides structured logging for the NeuroHome edge agent.
//
// This package wraps Go's standard log/slog package so every log line carries
// the same default fields (service, version) and honours the configured level
// and format.
//
// The agent is designed to run unattended for months; log lines are its only
// observable surface besides the broker traffic itself, so connectivity
// transitions, dropped messages, and unrecognised commands all log here.
//
// # Configuration
//
// Logging is configured via the LoggingConfig in config.yaml:
//
//	logging:
//	  level: "info"      # debug, info, warn, error
//	  format: "json"     # json, text
//	  output: "stdout"   # stdout, stderr
//
// # Usage
//
//	logger := logging.New(cfg.Logging, "1.0.0")
//	logger.Info("connected to broker", "host", cfg.MQTT.Broker.Host)
//
// Never log broker credentials.
package logging
