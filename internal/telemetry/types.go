package telemetry

// SensorType identifies one of the device's sensor channels.
type SensorType string

// Sensor channel constants. These appear in topic names and in the
// envelope's data.sensorType field, so the strings are part of the wire
// protocol.
const (
	SensorTemperature SensorType = "temperature"
	SensorHumidity    SensorType = "humidity"
	SensorMotion      SensorType = "motion"
	SensorLight       SensorType = "light"
)

// Unit strings carried in the envelope's data.unit field.
const (
	UnitCelsius = "C"
	UnitPercent = "%"
	UnitBool    = "bool"
)

// Envelope constants fixed by the wire protocol.
const (
	// MessageTypeSensorData is the type field of every telemetry envelope.
	MessageTypeSensorData = "sensor_data"

	// DefaultPriority is the priority assigned to all telemetry.
	DefaultPriority = 5
)

// lightRawMax is the full-scale value of the light sensor's ADC.
// The divisor is part of the light-percentage contract with consumers.
const lightRawMax = 4095

// Reading is a single sensor measurement produced by one sampling tick.
//
// Boolean channels are carried as numeric 0/1 with UnitBool so every
// reading serializes the same way.
type Reading struct {
	Type  SensorType
	Value float64
	Unit  string
}

// TemperatureReading wraps a temperature measurement in degrees Celsius.
func TemperatureReading(celsius float64) Reading {
	return Reading{Type: SensorTemperature, Value: celsius, Unit: UnitCelsius}
}

// HumidityReading wraps a relative humidity measurement in percent.
func HumidityReading(percent float64) Reading {
	return Reading{Type: SensorHumidity, Value: percent, Unit: UnitPercent}
}

// MotionReading wraps a motion detection as 0/1.
func MotionReading(detected bool) Reading {
	value := 0.0
	if detected {
		value = 1.0
	}
	return Reading{Type: SensorMotion, Value: value, Unit: UnitBool}
}

// LightReading normalizes a raw ADC value to a percentage reading.
func LightReading(raw int) Reading {
	return Reading{Type: SensorLight, Value: LightPercent(raw), Unit: UnitPercent}
}

// LightPercent maps the light sensor's raw ADC domain [0,4095] to [0,100].
//
// The linear scaling (value/4095*100) must match the deployed fleet
// bit-for-bit; consumers calibrate against it.
func LightPercent(raw int) float64 {
	return float64(raw) / lightRawMax * 100.0
}

// Envelope is the outbound telemetry message.
//
// The field set and the nested data object are fixed: broker-side consumers
// depend on this exact shape. Flattening data into the top level is a
// breaking change.
type Envelope struct {
	DeviceID  string `json:"deviceId"`
	Type      string `json:"type"`
	Priority  int    `json:"priority"`
	Timestamp uint64 `json:"timestamp"`
	Data      Data   `json:"data"`
}

// Data is the sensor-specific payload nested inside an Envelope.
type Data struct {
	SensorType string  `json:"sensorType"`
	Value      float64 `json:"value"`
	Unit       string  `json:"unit"`
}

// NewEnvelope builds a telemetry envelope for one reading.
//
// Parameters:
//   - deviceID: The immutable device identity
//   - timestampMillis: Milliseconds since agent boot
//   - reading: The measurement to wrap
func NewEnvelope(deviceID string, timestampMillis uint64, reading Reading) Envelope {
	return Envelope{
		DeviceID:  deviceID,
		Type:      MessageTypeSensorData,
		Priority:  DefaultPriority,
		Timestamp: timestampMillis,
		Data: Data{
			SensorType: string(reading.Type),
			Value:      reading.Value,
			Unit:       reading.Unit,
		},
	}
}

// Command is an inbound command message.
//
// Auxiliary fields in the payload are ignored; only command is read.
type Command struct {
	Command string `json:"command"`
}
