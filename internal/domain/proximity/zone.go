package proximity

// Zone is the discrete proximity classification owned by the state machine.
type Zone int

const (
	// Safe means nothing is within the warning band.
	Safe Zone = iota
	// Warning means an obstacle is inside the warning band.
	Warning
	// Critical means an obstacle is closer than the critical threshold.
	Critical

	// ZoneCount is the number of zones; it sizes the transition table.
	ZoneCount = int(iota)
)

// String returns the upper-case zone name used in diagnostics.
func (z Zone) String() string {
	switch z {
	case Safe:
		return "SAFE"
	case Warning:
		return "WARNING"
	case Critical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether z is one of the declared zones.
func (z Zone) Valid() bool {
	return z >= Safe && z <= Critical
}

// Event is the per-sample signal fed to the state machine. It is never stored.
type Event int

const (
	// None is produced for Invalid readings; no zone reacts to it.
	None Event = iota
	// Far is produced at or beyond the warning threshold.
	Far
	// Near is produced inside the warning band.
	Near
	// VeryNear is produced below the critical threshold.
	VeryNear

	// EventCount is the number of events; it sizes the transition table.
	EventCount = int(iota)
)

// String returns the event name used in diagnostics.
func (e Event) String() string {
	switch e {
	case None:
		return "none"
	case Far:
		return "far"
	case Near:
		return "near"
	case VeryNear:
		return "very-near"
	default:
		return "unknown"
	}
}
