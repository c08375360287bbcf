package hardware

import (
	"math"
	"time"
)

// PinID names one of the logical pins of the controller.
type PinID int

const (
	// SafeLamp is the green status lamp.
	SafeLamp PinID = iota
	// WarningLamp is the yellow status lamp.
	WarningLamp
	// CriticalLamp is the red status lamp.
	CriticalLamp
	// Alert drives the buzzer.
	Alert
	// Trigger starts a sensor measurement.
	Trigger
	// Echo is high while the sensor's echo pulse is in flight.
	Echo

	// PinCount is the number of logical pins.
	PinCount = int(iota)
)

// String returns the pin name used in logs and configuration.
func (p PinID) String() string {
	switch p {
	case SafeLamp:
		return "safe_lamp"
	case WarningLamp:
		return "warning_lamp"
	case CriticalLamp:
		return "critical_lamp"
	case Alert:
		return "alert"
	case Trigger:
		return "trigger"
	case Echo:
		return "echo"
	default:
		return "unknown"
	}
}

// Outputs lists the pins driven by the controller.
func Outputs() []PinID {
	return []PinID{SafeLamp, WarningLamp, CriticalLamp, Alert, Trigger}
}

// Pins is raw pin access. Implementations hold no logic of their own.
type Pins interface {
	ConfigureOutput(id PinID) error
	ConfigureInput(id PinID) error
	SetOutput(id PinID, high bool)
	ReadInput(id PinID) bool
}

// Clock is a monotonic time source that can block the caller.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// Board is the full pin abstraction used by the control loop.
type Board interface {
	Pins
	Clock

	// Close releases the pins.
	Close() error
}

// Configure sets the direction of every logical pin and drives outputs low.
func Configure(b Pins) error {
	for _, id := range Outputs() {
		if err := b.ConfigureOutput(id); err != nil {
			return err
		}

		b.SetOutput(id, false)
	}

	return b.ConfigureInput(Echo)
}

// ElapsedMicroseconds returns the time between two readings of the same clock,
// saturated to the uint32 range.
func ElapsedMicroseconds(t0, t1 time.Time) uint32 {
	us := t1.Sub(t0).Microseconds()

	switch {
	case us <= 0:
		return 0
	case us > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(us)
	}
}
