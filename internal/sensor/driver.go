package sensor

import (
	"time"

	"github.com/oshokin/proximity-alarm/internal/domain/proximity"
	"github.com/oshokin/proximity-alarm/internal/hardware"
)

const (
	// SettleTime is how long the trigger is held low before a pulse.
	SettleTime = 50 * time.Microsecond
	// TriggerPulse is the width of the trigger pulse.
	TriggerPulse = 10 * time.Microsecond
	// PollBudget bounds each wait on the echo line: 30 000 polls of 1µs.
	PollBudget = 30 * time.Millisecond
	// PollInterval is the pause between two reads of the echo line.
	PollInterval = time.Microsecond

	// centimetersPerMicrosecond is the speed of sound, 343 m/s.
	centimetersPerMicrosecond = 0.0343
)

// Reason tells why the last measurement was Invalid. It is informational only.
type Reason int

const (
	// ReasonNone means the last measurement was valid.
	ReasonNone Reason = iota
	// ReasonNoEcho means the echo line never rose within the poll budget.
	ReasonNoEcho
	// ReasonEchoStuck means the echo line never fell within the poll budget.
	ReasonEchoStuck
	// ReasonNoiseFloor means the echo was shorter than the noise floor.
	ReasonNoiseFloor
)

// String returns the reason name used in diagnostics.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonNoEcho:
		return "no-echo"
	case ReasonEchoStuck:
		return "echo-stuck"
	case ReasonNoiseFloor:
		return "noise-floor"
	default:
		return "unknown"
	}
}

// Board is the subset of hardware.Board the driver needs.
type Board interface {
	hardware.Pins
	hardware.Clock
}

// Driver runs the trigger/echo protocol. It is not safe for concurrent use.
type Driver struct {
	// board gives access to the trigger and echo lines and the clock.
	board Board
	// reason records why the last measurement was Invalid.
	reason Reason
}

// New returns a driver for the sensor wired to board's Trigger and Echo pins.
func New(board Board) *Driver {
	return &Driver{
		board: board,
	}
}

// Measure fires one ping and returns the distance to the obstacle.
//
// Timeouts and sub-noise-floor readings all return proximity.Invalid; the
// cause is available from LastReason. Every wait is bounded, so Measure never
// blocks longer than twice the poll budget plus the trigger sequence.
func (d *Driver) Measure() proximity.Distance {
	b := d.board

	b.SetOutput(hardware.Trigger, false)
	b.Sleep(SettleTime)
	b.SetOutput(hardware.Trigger, true)
	b.Sleep(TriggerPulse)
	b.SetOutput(hardware.Trigger, false)

	if !d.await(true) {
		return d.invalid(ReasonNoEcho)
	}

	start := b.Now()

	if !d.await(false) {
		return d.invalid(ReasonEchoStuck)
	}

	end := b.Now()

	cm := TimeToCentimeters(hardware.ElapsedMicroseconds(start, end))
	if cm < proximity.NoiseFloor {
		return d.invalid(ReasonNoiseFloor)
	}

	d.reason = ReasonNone

	return proximity.Centimeters(cm)
}

// LastReason returns why the previous Measure returned Invalid, or ReasonNone.
func (d *Driver) LastReason() Reason {
	return d.reason
}

// await polls the echo line until it reads level or the poll budget is spent.
// The deadline comes from the clock, so loop body cost does not stretch it.
func (d *Driver) await(level bool) bool {
	deadline := d.board.Now().Add(PollBudget)

	for d.board.ReadInput(hardware.Echo) != level {
		if !d.board.Now().Before(deadline) {
			return false
		}

		d.board.Sleep(PollInterval)
	}

	return true
}

func (d *Driver) invalid(r Reason) proximity.Distance {
	d.reason = r

	return proximity.Invalid
}

// TimeToCentimeters converts a round-trip time of flight in microseconds to
// the one-way distance in centimeters.
func TimeToCentimeters(roundTrip uint32) float64 {
	return float64(roundTrip) * centimetersPerMicrosecond / 2
}
