package agent

import (
	"math"
	"time"

	"github.com/neurohome/edge-agent/internal/telemetry"
)

// Sampler paces sensor reads independently of connectivity state.
//
// It fires when the configured interval has elapsed since the previous fire,
// reads all four channels, and returns the readings that succeeded. Between
// fires, Tick is an idempotent no-op regardless of how often the loop calls
// it.
type Sampler struct {
	sensors  Sensors
	interval uint64

	// lastFireMillis advances unconditionally on every fire, whether or not
	// any channel produced a reading, so the cadence never drifts.
	lastFireMillis uint64
}

// NewSampler creates a Sampler reading the given sensors at the given interval.
func NewSampler(sensors Sensors, interval time.Duration) *Sampler {
	return &Sampler{
		sensors:  sensors,
		interval: uint64(interval.Milliseconds()),
	}
}

// Tick returns this cycle's readings, or nil when the interval has not yet
// elapsed.
//
// A temperature or humidity read reporting NaN is a transient sensor fault:
// that channel is silently skipped this cycle and the others are unaffected.
// Motion and light always produce a reading.
func (s *Sampler) Tick(nowMillis uint64) []telemetry.Reading {
	if nowMillis-s.lastFireMillis < s.interval {
		return nil
	}
	s.lastFireMillis = nowMillis

	readings := make([]telemetry.Reading, 0, 4)

	if temp := s.sensors.Temperature(); !math.IsNaN(temp) {
		readings = append(readings, telemetry.TemperatureReading(temp))
	}
	if hum := s.sensors.Humidity(); !math.IsNaN(hum) {
		readings = append(readings, telemetry.HumidityReading(hum))
	}

	readings = append(readings, telemetry.MotionReading(s.sensors.Motion()))
	readings = append(readings, telemetry.LightReading(s.sensors.LightRaw()))

	return readings
}
