package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for the NeuroHome edge agent.
// All configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	Device    DeviceConfig    `yaml:"device"`
	MQTT      MQTTConfig      `yaml:"mqtt"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// DeviceConfig identifies this device on the broker.
type DeviceConfig struct {
	// ID is the immutable device identity used in every topic name and
	// envelope. If empty, a random identity is generated at load time.
	ID string `yaml:"id"`
}

// MQTTConfig contains MQTT broker connection settings.
type MQTTConfig struct {
	Broker    MQTTBrokerConfig    `yaml:"broker"`
	Auth      MQTTAuthConfig      `yaml:"auth"`
	QoS       int                 `yaml:"qos"`
	Reconnect MQTTReconnectConfig `yaml:"reconnect"`
}

// MQTTBrokerConfig contains MQTT broker connection details.
type MQTTBrokerConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	TLS      bool   `yaml:"tls"`
	ClientID string `yaml:"client_id"`
}

// MQTTAuthConfig contains MQTT authentication credentials.
type MQTTAuthConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// MQTTReconnectConfig contains reconnection settings.
//
// The retry interval is fixed, not exponential: the agent sleeps this long
// between failed connect attempts and retries indefinitely.
type MQTTReconnectConfig struct {
	RetryIntervalMS int `yaml:"retry_interval_ms"`
}

// TelemetryConfig contains sensor sampling settings.
type TelemetryConfig struct {
	// SampleIntervalMS is the time between sensor sampling rounds,
	// measured from the previous fire time.
	SampleIntervalMS int `yaml:"sample_interval_ms"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Load reads configuration from a YAML file and applies environment variable overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern: NEUROHOME_SECTION_KEY
//
// Returns:
//   - *Config: Validated configuration ready for use
//   - error: If the file cannot be read, parsed, or fails validation
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Fill derived defaults (device identity, client ID)
	applyIdentityDefaults(cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a Config with sensible defaults.
//
// The 5000 ms sampling and retry intervals match the deployed fleet; broker-side
// consumers assume roughly this telemetry cadence.
func defaultConfig() *Config {
	return &Config{
		MQTT: MQTTConfig{
			Broker: MQTTBrokerConfig{
				Host: "localhost",
				Port: 1883,
			},
			QoS: 0,
			Reconnect: MQTTReconnectConfig{
				RetryIntervalMS: 5000,
			},
		},
		Telemetry: TelemetryConfig{
			SampleIntervalMS: 5000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables follow the pattern: NEUROHOME_SECTION_KEY
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("NEUROHOME_DEVICE_ID"); v != "" {
		cfg.Device.ID = v
	}

	if v := os.Getenv("NEUROHOME_MQTT_HOST"); v != "" {
		cfg.MQTT.Broker.Host = v
	}
	if v := os.Getenv("NEUROHOME_MQTT_USERNAME"); v != "" {
		cfg.MQTT.Auth.Username = v
	}
	if v := os.Getenv("NEUROHOME_MQTT_PASSWORD"); v != "" {
		cfg.MQTT.Auth.Password = v
	}
}

// applyIdentityDefaults fills in the device identity and MQTT client ID when
// not configured.
//
// A generated identity carries a random suffix so that two unconfigured devices
// on the same broker never collide on client ID.
func applyIdentityDefaults(cfg *Config) {
	if cfg.Device.ID == "" {
		cfg.Device.ID = "neurohome-edge-" + uuid.NewString()[:8]
	}
	if cfg.MQTT.Broker.ClientID == "" {
		cfg.MQTT.Broker.ClientID = cfg.Device.ID
	}
}

// Validate checks the configuration for errors.
//
// Returns:
//   - error: Description of validation failure, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	if c.Device.ID == "" {
		errs = append(errs, "device.id is required")
	}

	if c.MQTT.Broker.Host == "" {
		errs = append(errs, "mqtt.broker.host is required")
	}
	if c.MQTT.Broker.Port < 1 || c.MQTT.Broker.Port > 65535 {
		errs = append(errs, "mqtt.broker.port must be between 1 and 65535")
	}
	if c.MQTT.QoS < 0 || c.MQTT.QoS > 2 {
		errs = append(errs, "mqtt.qos must be 0, 1, or 2")
	}
	if c.MQTT.Reconnect.RetryIntervalMS < 1 {
		errs = append(errs, "mqtt.reconnect.retry_interval_ms must be positive")
	}

	if c.Telemetry.SampleIntervalMS < 1 {
		errs = append(errs, "telemetry.sample_interval_ms must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// GetRetryInterval returns the reconnect retry interval as a Duration.
func (c *Config) GetRetryInterval() time.Duration {
	return time.Duration(c.MQTT.Reconnect.RetryIntervalMS) * time.Millisecond
}

// GetSampleInterval returns the telemetry sampling interval as a Duration.
func (c *Config) GetSampleInterval() time.Duration {
	return time.Duration(c.Telemetry.SampleIntervalMS) * time.Millisecond
}
