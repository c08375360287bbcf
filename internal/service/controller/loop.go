package controller

import (
	"context"
	"time"

	"github.com/oshokin/proximity-alarm/internal/alert"
	"github.com/oshokin/proximity-alarm/internal/console"
	"github.com/oshokin/proximity-alarm/internal/domain/proximity"
	"github.com/oshokin/proximity-alarm/internal/fsm"
	"github.com/oshokin/proximity-alarm/internal/hardware"
	"github.com/oshokin/proximity-alarm/internal/indicator"
	"github.com/oshokin/proximity-alarm/internal/logger"
	"github.com/oshokin/proximity-alarm/internal/sensor"
)

// SampleDelay is the pause between two iterations.
const SampleDelay = 50 * time.Millisecond

// Loop owns the current zone and the pin handles of one controller.
type Loop struct {
	// board is the pin abstraction shared by every stage.
	board hardware.Board
	// sensor measures the distance.
	sensor *sensor.Driver
	// lamps drives the indicators for the state machine.
	lamps *indicator.Lamps
	// machine holds the current zone.
	machine *fsm.Machine
	// cadence emits the alert pulses.
	cadence *alert.Controller
	// console prints the status line; nil disables it.
	console *console.Printer
}

// NewLoop assembles the pipeline on board. Pins must already be configured.
func NewLoop(board hardware.Board, printer *console.Printer) *Loop {
	lamps := indicator.New(board)

	return &Loop{
		board:   board,
		sensor:  sensor.New(board),
		lamps:   lamps,
		machine: fsm.New(lamps),
		cadence: alert.NewController(board),
		console: printer,
	}
}

// Start puts the indicators in the initial Safe state.
func (l *Loop) Start(ctx context.Context) {
	l.machine.Start(ctx)
	l.console.Entered(proximity.Safe)
}

// Iterate runs one measure, classify, step, actuate, sleep cycle and returns the zone.
func (l *Loop) Iterate(ctx context.Context) proximity.Zone {
	distance := l.sensor.Measure()
	event := proximity.Classify(distance)

	if !distance.Valid() {
		logger.DebugKV(ctx, "Invalid reading", "reason", l.sensor.LastReason())
	}

	previous := l.machine.Zone()
	zone := l.machine.Step(ctx, event)

	if zone != previous {
		l.console.Entered(zone)
	}

	logger.DebugKV(ctx, "Sample", "distance", distance, "event", event, "zone", zone)
	l.console.Sample(distance, zone)

	l.cadence.RunCycle(ctx, distance)
	l.board.Sleep(SampleDelay)

	return zone
}

// Run starts the loop and iterates until ctx is canceled. Cancellation is
// only observed between iterations; on exit lamps and alert are switched off.
func (l *Loop) Run(ctx context.Context) error {
	l.Start(ctx)

	for {
		select {
		case <-ctx.Done():
			l.lamps.Off()
			l.console.Line("")
			logger.Info(ctx, "Control loop stopped")

			return nil
		default:
		}

		l.Iterate(ctx)
	}
}

// Zone returns the current zone.
func (l *Loop) Zone() proximity.Zone {
	return l.machine.Zone()
}
