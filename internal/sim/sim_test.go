package sim

import (
	"math"
	"testing"
)

func TestSensors_BoundedValues(t *testing.T) {
	sensors := NewSensors(1)

	for i := 0; i < 1000; i++ {
		if temp := sensors.Temperature(); temp < tempMin || temp > tempMax {
			t.Fatalf("Temperature() = %v, want within [%v,%v]", temp, tempMin, tempMax)
		}
		if hum := sensors.Humidity(); hum < humMin || hum > humMax {
			t.Fatalf("Humidity() = %v, want within [%v,%v]", hum, humMin, humMax)
		}
		if raw := sensors.LightRaw(); raw < 0 || raw > lightRawMax {
			t.Fatalf("LightRaw() = %d, want within [0,%d]", raw, lightRawMax)
		}
		sensors.Motion()
	}
}

func TestSensors_Reproducible(t *testing.T) {
	a := NewSensors(42)
	b := NewSensors(42)

	for i := 0; i < 50; i++ {
		if a.Temperature() != b.Temperature() {
			t.Fatal("same seed produced different temperature sequences")
		}
		if a.LightRaw() != b.LightRaw() {
			t.Fatal("same seed produced different light sequences")
		}
	}
}

func TestSensors_FaultRate(t *testing.T) {
	sensors := NewSensors(7)
	sensors.FaultRate = 1.0

	if !math.IsNaN(sensors.Temperature()) {
		t.Error("Temperature() with FaultRate 1 should report NaN")
	}
	if !math.IsNaN(sensors.Humidity()) {
		t.Error("Humidity() with FaultRate 1 should report NaN")
	}

	// Motion and light have no fault path.
	sensors.Motion()
	if raw := sensors.LightRaw(); raw < 0 || raw > lightRawMax {
		t.Errorf("LightRaw() = %d out of range", raw)
	}
}

func TestLED(t *testing.T) {
	led := NewLED(nil)

	if led.State() {
		t.Error("State() = true on fresh LED, want false")
	}

	led.SetOutput(true)
	if !led.State() {
		t.Error("State() = false after SetOutput(true)")
	}

	led.SetOutput(false)
	if led.State() {
		t.Error("State() = true after SetOutput(false)")
	}
}
