package alert

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/proximity-alarm/internal/domain/proximity"
	"github.com/oshokin/proximity-alarm/internal/hardware"
)

// TestCadence_Bands verifies the pulse chosen for each band.
func TestCadence_Bands(t *testing.T) {
	t.Parallel()

	_, ok := Cadence(proximity.Invalid)
	require.False(t, ok)

	_, ok = Cadence(proximity.Centimeters(15))
	require.False(t, ok)

	p, ok := Cadence(proximity.Centimeters(12))
	require.True(t, ok)
	require.Equal(t, Pulse{On: 60 * time.Millisecond, Off: 250 * time.Millisecond}, p)

	p, ok = Cadence(proximity.Centimeters(10))
	require.True(t, ok)
	require.Equal(t, WarningPause, p.Off)

	p, ok = Cadence(proximity.Centimeters(8))
	require.True(t, ok)
	require.Equal(t, Pulse{On: 60 * time.Millisecond, Off: 120 * time.Millisecond}, p)
}

// TestCriticalPause_Floor verifies floor rounding and the 25 ms minimum.
func TestCriticalPause_Floor(t *testing.T) {
	t.Parallel()

	require.Equal(t, 149*time.Millisecond, CriticalPause(9.99))
	require.Equal(t, 37*time.Millisecond, CriticalPause(2.5))
	require.Equal(t, 30*time.Millisecond, CriticalPause(2))
	require.Equal(t, 25*time.Millisecond, CriticalPause(1.2))
	require.Equal(t, 25*time.Millisecond, CriticalPause(0))
}

// TestCriticalPause_Monotonic verifies closer obstacles never pause longer.
func TestCriticalPause_Monotonic(t *testing.T) {
	t.Parallel()

	prev := CriticalPause(2)
	for cm := 2.0; cm < proximity.CriticalThreshold; cm += 0.01 {
		pause := CriticalPause(cm)
		require.GreaterOrEqual(t, pause, prev, "at %.2f cm", cm)
		require.GreaterOrEqual(t, pause, MinCriticalPause)

		prev = pause
	}
}

// TestController_RunCycle verifies the pulse timing written to the alert pin.
func TestController_RunCycle(t *testing.T) {
	t.Parallel()

	sim := hardware.NewSimulator(false)
	require.NoError(t, hardware.Configure(sim))
	sim.ResetWrites()

	c := NewController(sim)
	c.RunCycle(context.Background(), proximity.Centimeters(8))

	require.Equal(t, []hardware.Write{
		{At: 0, Pin: hardware.Alert, High: true},
		{At: 60 * time.Millisecond, Pin: hardware.Alert, High: false},
	}, sim.Writes())
	require.Equal(t, 180*time.Millisecond, sim.Elapsed())
}

// TestController_InvalidForcesOff verifies bad readings silence the alert without sleeping.
func TestController_InvalidForcesOff(t *testing.T) {
	t.Parallel()

	sim := hardware.NewSimulator(false)
	require.NoError(t, hardware.Configure(sim))
	sim.SetOutput(hardware.Alert, true)

	c := NewController(sim)
	c.RunCycle(context.Background(), proximity.Invalid)

	require.False(t, sim.Level(hardware.Alert))
	require.Zero(t, sim.Elapsed())
}

// TestController_SafeBandIsSilent verifies no pulse and no sleep in the safe band.
func TestController_SafeBandIsSilent(t *testing.T) {
	t.Parallel()

	sim := hardware.NewSimulator(false)
	sim.ResetWrites()

	NewController(sim).RunCycle(context.Background(), proximity.Centimeters(40))

	require.Empty(t, sim.Writes())
	require.Zero(t, sim.Elapsed())
}
