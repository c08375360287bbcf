package indicator

import (
	"github.com/oshokin/proximity-alarm/internal/domain/proximity"
	"github.com/oshokin/proximity-alarm/internal/hardware"
)

// Lamps drives the three status lamps and the alert output of a board.
type Lamps struct {
	pins hardware.Pins
}

// New returns lamps wired to the board's SafeLamp, WarningLamp, CriticalLamp and Alert pins.
func New(pins hardware.Pins) *Lamps {
	return &Lamps{
		pins: pins,
	}
}

// SetLamp switches the lamp designated for zone. Unknown zones are ignored.
func (l *Lamps) SetLamp(zone proximity.Zone, on bool) {
	pin, ok := LampFor(zone)
	if !ok {
		return
	}

	l.pins.SetOutput(pin, on)
}

// SetAlert drives the alert output.
func (l *Lamps) SetAlert(on bool) {
	l.pins.SetOutput(hardware.Alert, on)
}

// Off switches every lamp and the alert off.
func (l *Lamps) Off() {
	for z := proximity.Zone(0); z < proximity.Zone(proximity.ZoneCount); z++ {
		l.SetLamp(z, false)
	}

	l.SetAlert(false)
}

// LampFor returns the pin of the lamp designated for zone.
func LampFor(zone proximity.Zone) (hardware.PinID, bool) {
	switch zone {
	case proximity.Safe:
		return hardware.SafeLamp, true
	case proximity.Warning:
		return hardware.WarningLamp, true
	case proximity.Critical:
		return hardware.CriticalLamp, true
	default:
		return 0, false
	}
}
