package sim

import (
	"math"
	"math/rand"
)

// Sensor value bounds for the simulated channels.
const (
	tempMin, tempMax = 15.0, 30.0
	humMin, humMax   = 30.0, 70.0
	lightRawMax      = 4095
	motionChance     = 0.1
)

// Sensors is a simulated sensor board.
//
// Temperature and humidity follow a bounded random walk; motion fires
// occasionally; light wanders across the ADC range. With FaultRate > 0 the
// two float channels sometimes report NaN, exercising the agent's
// fault-skip path.
//
// Not safe for concurrent use; the agent loop is the only reader.
type Sensors struct {
	rng *rand.Rand

	temp     float64
	humidity float64
	lightRaw int

	// FaultRate is the probability in [0,1] that a temperature or humidity
	// read reports a transient fault (NaN).
	FaultRate float64
}

// NewSensors creates a simulated sensor board.
// The same seed reproduces the same reading sequence.
func NewSensors(seed int64) *Sensors {
	rng := rand.New(rand.NewSource(seed))
	return &Sensors{
		rng:      rng,
		temp:     21.0 + rng.Float64()*2,
		humidity: 45.0 + rng.Float64()*5,
		lightRaw: rng.Intn(lightRawMax + 1),
	}
}

// Temperature returns degrees Celsius, or NaN on a simulated fault.
func (s *Sensors) Temperature() float64 {
	if s.faulted() {
		return math.NaN()
	}
	s.temp = clamp(s.temp+s.step(0.3), tempMin, tempMax)
	return s.temp
}

// Humidity returns percent relative humidity, or NaN on a simulated fault.
func (s *Sensors) Humidity() float64 {
	if s.faulted() {
		return math.NaN()
	}
	s.humidity = clamp(s.humidity+s.step(1.0), humMin, humMax)
	return s.humidity
}

// Motion reports simulated motion detection.
func (s *Sensors) Motion() bool {
	return s.rng.Float64() < motionChance
}

// LightRaw returns a raw ADC value in [0,4095].
func (s *Sensors) LightRaw() int {
	s.lightRaw += s.rng.Intn(401) - 200
	if s.lightRaw < 0 {
		s.lightRaw = 0
	}
	if s.lightRaw > lightRawMax {
		s.lightRaw = lightRawMax
	}
	return s.lightRaw
}

func (s *Sensors) faulted() bool {
	return s.FaultRate > 0 && s.rng.Float64() < s.FaultRate
}

func (s *Sensors) step(scale float64) float64 {
	return (s.rng.Float64() - 0.5) * scale
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
