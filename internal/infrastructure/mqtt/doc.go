// Package mqtt provides the broker session for the NeuroHome edge agent.
//
// This package manages:
//   - Single-attempt connection to the broker (retry is the supervisor's job)
//   - Message publishing with a bounded payload size
//   - The command-topic subscription, valid for one connection only
//   - A bounded inbound queue drained cooperatively by the agent loop
//
// # Architecture
//
// The agent runs one cooperative control loop; the broker client is its only
// window onto the network. paho delivers messages on its own goroutines, so
// the client parks them on a bounded channel and the loop pulls them across
// with Pump. Nothing else in the agent touches paho directly.
//
//	sensors -> agent loop -> Client.Publish -> broker
//	broker  -> paho goroutine -> inbound queue -> Client.Pump -> agent loop
//
// # Reconnection
//
// Auto-reconnect is disabled. The connectivity supervisor detects drops via
// IsConnected, calls Connect with its own fixed backoff, and re-subscribes.
// Keeping the retry policy in one place makes it testable with a fake clock.
//
// # Usage
//
//	client := mqtt.New(cfg.MQTT)
//	if err := client.Connect(ctx); err != nil { ... }
//	client.Subscribe(mqtt.Topics{}.Command(deviceID))
//	client.Publish(mqtt.Topics{}.Sensor(deviceID, "temperature"), payload)
//	n := client.Pump(func(topic string, payload []byte) { ... })
package mqtt
