// Package telemetry defines the edge agent's wire format.
//
// This package manages:
//   - The telemetry envelope (deviceId/type/priority/timestamp + nested data)
//   - The inbound command message
//   - JSON encoding and fault-tolerant decoding
//   - Sensor reading construction, including the light ADC normalization
//
// Everything here is pure data transformation with no I/O; the agent loop
// owns when messages move.
//
// # Wire format
//
// Outbound, one envelope per reading:
//
//	{"deviceId":"dev-1","type":"sensor_data","priority":5,"timestamp":5000,
//	 "data":{"sensorType":"temperature","value":22.5,"unit":"C"}}
//
// Inbound commands:
//
//	{"command":"led_on"}
//
// Unknown fields on inbound payloads are ignored. A missing or empty command
// field is a decode error, never a crash and never a dispatch.
package telemetry
