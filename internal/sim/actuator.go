package sim

// Logger interface for the simulated actuator.
type Logger interface {
	Info(msg string, args ...any)
}

// LED is a simulated digital output.
type LED struct {
	on  bool
	log Logger
}

// NewLED creates a simulated LED. The logger may be nil.
func NewLED(log Logger) *LED {
	return &LED{log: log}
}

// SetOutput drives the simulated output.
func (l *LED) SetOutput(on bool) {
	l.on = on
	if l.log != nil {
		l.log.Info("led output changed", "on", on)
	}
}

// State returns the current output level.
func (l *LED) State() bool {
	return l.on
}
