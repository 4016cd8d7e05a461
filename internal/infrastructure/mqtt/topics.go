package mqtt

import "fmt"

// TopicPrefixDevice is the base for all device topics.
//
// Scheme: device/{deviceId}/{category}[/{detail}]
// Broker-side consumers route on this layout; it must not change without a
// coordinated fleet upgrade.
const TopicPrefixDevice = "device"

// Topics provides builders for edge agent MQTT topics.
// Using these helpers ensures consistent topic naming across the codebase.
//
//	topics := mqtt.Topics{}
//	sensorTopic := topics.Sensor("dev-1", "temperature")
//	// Returns: "device/dev-1/sensor/temperature"
type Topics struct{}

// Sensor returns the topic for telemetry from one sensor channel.
//
// Example: device/dev-1/sensor/temperature
func (Topics) Sensor(deviceID, sensorType string) string {
	return fmt.Sprintf("%s/%s/sensor/%s", TopicPrefixDevice, deviceID, sensorType)
}

// Command returns the topic the device listens on for commands.
//
// Example: device/dev-1/command
func (Topics) Command(deviceID string) string {
	return fmt.Sprintf("%s/%s/command", TopicPrefixDevice, deviceID)
}

// AllSensors returns a pattern matching every sensor channel of one device.
//
// Pattern: device/dev-1/sensor/+
func (Topics) AllSensors(deviceID string) string {
	return fmt.Sprintf("%s/%s/sensor/+", TopicPrefixDevice, deviceID)
}

// AllDevices returns a pattern matching all device traffic.
// Use with caution - this receives ALL traffic.
//
// Pattern: device/#
func (Topics) AllDevices() string {
	return "device/#"
}
