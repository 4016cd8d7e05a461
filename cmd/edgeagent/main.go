// NeuroHome Edge Agent
//
// This is the main entry point for the NeuroHome edge device agent. The
// agent bridges local sensors and actuators to the NeuroHome MQTT broker:
// it keeps the broker session alive, samples sensors every few seconds,
// publishes telemetry envelopes, and executes remote commands.
//
// This build wires the simulated sensor board from internal/sim; hardware
// deployments substitute their own capability implementations.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/neurohome/edge-agent/internal/agent"
	"github.com/neurohome/edge-agent/internal/infrastructure/config"
	"github.com/neurohome/edge-agent/internal/infrastructure/logging"
	"github.com/neurohome/edge-agent/internal/infrastructure/mqtt"
	"github.com/neurohome/edge-agent/internal/sim"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Cancel on interrupt signals (Ctrl+C, SIGTERM) for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
//
// Parameters:
//   - ctx: Context for cancellation and shutdown signals
//
// Returns:
//   - error: nil on clean shutdown, or error describing failure
func run(ctx context.Context) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting NeuroHome edge agent",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	// Broker session; the supervisor connects it once the loop starts.
	client := mqtt.New(cfg.MQTT)
	client.SetLogger(log.With("component", "mqtt"))
	defer func() {
		log.Info("disconnecting from broker")
		if closeErr := client.Close(); closeErr != nil {
			log.Error("error closing broker session", "error", closeErr)
		}
	}()

	// Capabilities: simulated sensor board and LED.
	sensors := sim.NewSensors(time.Now().UnixNano())
	led := sim.NewLED(log.With("component", "actuator"))

	// Assemble the agent.
	deviceID := cfg.Device.ID
	clock := agent.NewBootClock()
	agentLog := log.With("component", "agent")

	supervisor := agent.NewSupervisor(
		client,
		mqtt.Topics{}.Command(deviceID),
		cfg.GetRetryInterval(),
		clock,
		agentLog,
	)
	sampler := agent.NewSampler(sensors, cfg.GetSampleInterval())
	dispatcher := agent.NewDispatcher(led, agentLog)
	loop := agent.NewLoop(deviceID, client, supervisor, sampler, dispatcher, clock, agentLog)

	log.Info("agent assembled",
		"device_id", deviceID,
		"broker", fmt.Sprintf("%s:%d", cfg.MQTT.Broker.Host, cfg.MQTT.Broker.Port),
		"sample_interval", cfg.GetSampleInterval(),
		"retry_interval", cfg.GetRetryInterval(),
	)

	// Run until interrupted. Cancellation is the only way the loop returns,
	// so it is a clean shutdown, not a failure.
	if err := loop.Run(ctx); !errors.Is(err, context.Canceled) {
		return fmt.Errorf("agent loop: %w", err)
	}

	log.Info("shutdown complete")
	return nil
}

// getConfigPath returns the configuration file path.
// Honours the NEUROHOME_CONFIG environment variable, falling back to the default.
func getConfigPath() string {
	if path := os.Getenv("NEUROHOME_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
