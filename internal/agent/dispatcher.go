package agent

// Recognized command strings.
const (
	CommandLEDOn  = "led_on"
	CommandLEDOff = "led_off"
)

// Dispatcher maps decoded command identifiers to actuator side effects.
//
// Commands are data, not types: the mapping is a plain switch. An
// unrecognized command is a logged no-op, never an error.
type Dispatcher struct {
	actuator Actuator
	log      Logger
}

// NewDispatcher creates a Dispatcher driving the given actuator.
func NewDispatcher(actuator Actuator, log Logger) *Dispatcher {
	return &Dispatcher{
		actuator: actuator,
		log:      log,
	}
}

// Dispatch executes the side effect for one command.
//
// Synchronous and infallible: the actuator write capability cannot fail at
// this layer.
func (d *Dispatcher) Dispatch(command string) {
	switch command {
	case CommandLEDOn:
		d.actuator.SetOutput(true)
		d.log.Info("led turned on")
	case CommandLEDOff:
		d.actuator.SetOutput(false)
		d.log.Info("led turned off")
	default:
		d.log.Warn("unrecognized command", "command", command)
	}
}
