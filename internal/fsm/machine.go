package fsm

import (
	"context"

	"github.com/oshokin/proximity-alarm/internal/domain/proximity"
	"github.com/oshokin/proximity-alarm/internal/logger"
)

// Indicator is the actuator capability the entry actions drive.
type Indicator interface {
	// SetLamp switches the lamp designated for zone.
	SetLamp(zone proximity.Zone, on bool)
	// SetAlert drives the audible alert output.
	SetAlert(on bool)
}

// Machine holds the current zone and applies the transition table.
// It is not safe for concurrent use.
type Machine struct {
	// indicator receives the entry actions.
	indicator Indicator
	// zone is the current zone.
	zone proximity.Zone
	// fired is the entry action run by the last Step.
	fired Action
}

// New returns a machine in the Safe zone. No entry action runs until Start.
func New(indicator Indicator) *Machine {
	return &Machine{
		indicator: indicator,
		zone:      proximity.Safe,
	}
}

// Start runs the Safe entry action so the lamps match the initial zone.
func (m *Machine) Start(ctx context.Context) {
	m.zone = proximity.Safe
	m.fired = EnterSafe
	m.enter(ctx, EnterSafe)
}

// Step feeds one event to the machine and returns the resulting zone.
// Absent table entries leave the zone and the indicators untouched.
func (m *Machine) Step(ctx context.Context, event proximity.Event) proximity.Zone {
	t := lookup(m.zone, event)
	if !t.present() {
		m.fired = NoAction

		return m.zone
	}

	from := m.zone
	m.zone = t.target
	m.fired = t.action
	m.enter(ctx, t.action)

	if from != t.target {
		logger.InfoKV(ctx, "Zone entered", "from", from, "to", t.target, "event", event)
	}

	return m.zone
}

// Zone returns the current zone.
func (m *Machine) Zone() proximity.Zone {
	return m.zone
}

// Fired returns the entry action run by the last Step, or NoAction.
func (m *Machine) Fired() Action {
	return m.fired
}

// enter dispatches an entry action to the indicator.
func (m *Machine) enter(ctx context.Context, action Action) {
	ind := m.indicator

	switch action {
	case EnterSafe:
		ind.SetLamp(proximity.Warning, false)
		ind.SetLamp(proximity.Critical, false)
		ind.SetLamp(proximity.Safe, true)
		ind.SetAlert(false)
	case EnterWarning:
		ind.SetLamp(proximity.Critical, false)
		ind.SetLamp(proximity.Warning, true)
		ind.SetLamp(proximity.Safe, false)
		ind.SetAlert(false)
	case EnterCritical:
		ind.SetLamp(proximity.Warning, false)
		ind.SetLamp(proximity.Safe, false)
		ind.SetLamp(proximity.Critical, true)
	case NoAction:
		return
	}

	logger.DebugKV(ctx, "Entry action", "action", action)
}
