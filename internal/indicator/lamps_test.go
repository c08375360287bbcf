package indicator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/proximity-alarm/internal/domain/proximity"
	"github.com/oshokin/proximity-alarm/internal/hardware"
)

// TestLamps_DrivePins verifies each zone lamp and the alert land on their pins.
func TestLamps_DrivePins(t *testing.T) {
	t.Parallel()

	sim := hardware.NewSimulator(false)
	require.NoError(t, hardware.Configure(sim))

	l := New(sim)

	l.SetLamp(proximity.Warning, true)
	l.SetAlert(true)
	l.SetLamp(proximity.Zone(42), true)

	require.True(t, sim.Level(hardware.WarningLamp))
	require.True(t, sim.Level(hardware.Alert))
	require.False(t, sim.Level(hardware.SafeLamp))
	require.False(t, sim.Level(hardware.CriticalLamp))

	l.Off()

	for _, id := range []hardware.PinID{hardware.SafeLamp, hardware.WarningLamp, hardware.CriticalLamp, hardware.Alert} {
		require.False(t, sim.Level(id), id.String())
	}
}

// TestLampFor verifies the zone to pin mapping.
func TestLampFor(t *testing.T) {
	t.Parallel()

	pin, ok := LampFor(proximity.Critical)
	require.True(t, ok)
	require.Equal(t, hardware.CriticalLamp, pin)

	_, ok = LampFor(proximity.Zone(-1))
	require.False(t, ok)
}
