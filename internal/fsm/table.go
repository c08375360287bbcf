package fsm

import "github.com/oshokin/proximity-alarm/internal/domain/proximity"

// Action identifies an entry action.
type Action int

const (
	// NoAction means the last Step matched no table entry.
	NoAction Action = iota
	// EnterSafe lights the safe lamp and silences the alert.
	EnterSafe
	// EnterWarning lights the warning lamp and silences the alert.
	EnterWarning
	// EnterCritical lights the critical lamp.
	EnterCritical
)

// String returns the action name used in diagnostics.
func (a Action) String() string {
	switch a {
	case NoAction:
		return "none"
	case EnterSafe:
		return "enter-safe"
	case EnterWarning:
		return "enter-warning"
	case EnterCritical:
		return "enter-critical"
	default:
		return "unknown"
	}
}

// transition is a table entry. The zero value is an absent entry.
type transition struct {
	// target is the zone entered by the transition.
	target proximity.Zone
	// action is the entry action run on the transition.
	action Action
}

// present reports whether the entry exists in the table.
func (t transition) present() bool {
	return t.action != NoAction
}

// table is indexed by [current zone][event].
type table [proximity.ZoneCount][proximity.EventCount]transition

// transitions never lists proximity.None, so None is ignored in every zone.
//
//nolint:gochecknoglobals // Immutable lookup table.
var transitions = table{
	proximity.Safe: {
		proximity.Near:     {target: proximity.Warning, action: EnterWarning},
		proximity.VeryNear: {target: proximity.Critical, action: EnterCritical},
	},
	proximity.Warning: {
		proximity.Far:      {target: proximity.Safe, action: EnterSafe},
		proximity.VeryNear: {target: proximity.Critical, action: EnterCritical},
	},
	proximity.Critical: {
		proximity.Far:  {target: proximity.Safe, action: EnterSafe},
		proximity.Near: {target: proximity.Warning, action: EnterWarning},
		// Self transition: re-entering Critical re-asserts its lamps.
		proximity.VeryNear: {target: proximity.Critical, action: EnterCritical},
	},
}

// lookup returns the table entry for (zone, event); out of range inputs are absent.
func lookup(zone proximity.Zone, event proximity.Event) transition {
	if !zone.Valid() || event < 0 || int(event) >= proximity.EventCount {
		return transition{}
	}

	return transitions[zone][event]
}
