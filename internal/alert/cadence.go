package alert

import (
	"context"
	"math"
	"time"

	"github.com/oshokin/proximity-alarm/internal/domain/proximity"
	"github.com/oshokin/proximity-alarm/internal/hardware"
	"github.com/oshokin/proximity-alarm/internal/logger"
)

const (
	// PulseOn is how long the alert sounds in each pulse.
	PulseOn = 60 * time.Millisecond
	// WarningPause is the silence after a pulse in the warning band.
	WarningPause = 250 * time.Millisecond
	// MinCriticalPause bounds the fastest pulse rate in the critical band.
	MinCriticalPause = 25 * time.Millisecond
	// criticalPausePerCentimeter scales the critical pause with distance.
	criticalPausePerCentimeter = 15
)

// Pulse is one on/off alert cycle.
type Pulse struct {
	// On is how long the output is held high.
	On time.Duration
	// Off is how long the output is held low afterwards.
	Off time.Duration
}

// Cadence returns the pulse for distance d, or false when no pulse is due
// (Invalid readings and the safe band).
func Cadence(d proximity.Distance) (Pulse, bool) {
	cm, ok := d.Centimeters()

	switch {
	case !ok:
		return Pulse{}, false
	case cm >= proximity.WarningThreshold:
		return Pulse{}, false
	case cm >= proximity.CriticalThreshold:
		return Pulse{On: PulseOn, Off: WarningPause}, true
	default:
		return Pulse{On: PulseOn, Off: CriticalPause(cm)}, true
	}
}

// CriticalPause returns max(25, floor(cm*15)) milliseconds.
func CriticalPause(cm float64) time.Duration {
	pause := time.Duration(math.Floor(cm*criticalPausePerCentimeter)) * time.Millisecond

	return max(pause, MinCriticalPause)
}

// Board is the subset of hardware.Board the controller needs.
type Board interface {
	SetOutput(id hardware.PinID, high bool)
	Sleep(d time.Duration)
}

// Controller drives the alert output inline in the control loop.
// RunCycle blocks for the whole pulse and must not be called concurrently.
type Controller struct {
	board Board
}

// NewController returns a controller for the board's Alert pin.
func NewController(board Board) *Controller {
	return &Controller{
		board: board,
	}
}

// RunCycle emits the pulse due for distance d. Invalid readings force the
// alert low and the safe band leaves it low.
func (c *Controller) RunCycle(ctx context.Context, d proximity.Distance) {
	if !d.Valid() {
		c.board.SetOutput(hardware.Alert, false)

		return
	}

	p, ok := Cadence(d)
	if !ok {
		return
	}

	logger.DebugKV(ctx, "Alert pulse", "distance", d, "on", p.On, "off", p.Off)

	c.board.SetOutput(hardware.Alert, true)
	c.board.Sleep(p.On)
	c.board.SetOutput(hardware.Alert, false)
	c.board.Sleep(p.Off)
}
