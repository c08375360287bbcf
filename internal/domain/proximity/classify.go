package proximity

const (
	// WarningThreshold is the distance in centimeters below which an obstacle
	// is considered near.
	WarningThreshold = 15.0
	// CriticalThreshold is the distance in centimeters below which an obstacle
	// is considered very near.
	CriticalThreshold = 10.0
	// NoiseFloor is the smallest distance in centimeters the sensor driver
	// accepts as a real echo.
	NoiseFloor = 2.0
)

// Classify maps a distance to the event fed to the state machine.
// Bands are half-open: exactly 15 cm is Far and exactly 10 cm is Near.
func Classify(d Distance) Event {
	cm, ok := d.Centimeters()

	switch {
	case !ok:
		return None
	case cm >= WarningThreshold:
		return Far
	case cm >= CriticalThreshold:
		return Near
	case cm > 0:
		return VeryNear
	default:
		return None
	}
}
