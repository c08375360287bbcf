package console

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/oshokin/proximity-alarm/internal/domain/proximity"
)

// Zone palette, matching the lamp colors.
var (
	ColorSafe     = lipgloss.Color("#00CC33")
	ColorWarning  = lipgloss.Color("#FFAA00")
	ColorCritical = lipgloss.Color("#FF3300")
	ColorDim      = lipgloss.Color("#808080")
)

// Pre-built styles.
var (
	StyleSafe = lipgloss.NewStyle().
			Foreground(ColorSafe).
			Bold(true)

	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	StyleCritical = lipgloss.NewStyle().
			Foreground(ColorCritical).
			Bold(true).
			Blink(true)

	StyleInvalid = lipgloss.NewStyle().
			Foreground(ColorDim)
)

// zoneStyle returns the badge style for zone.
func zoneStyle(zone proximity.Zone) lipgloss.Style {
	switch zone {
	case proximity.Warning:
		return StyleWarning
	case proximity.Critical:
		return StyleCritical
	default:
		return StyleSafe
	}
}
