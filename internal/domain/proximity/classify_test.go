package proximity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestClassify_Bands checks every band and its half-open boundaries.
func TestClassify_Bands(t *testing.T) {
	t.Parallel()

	cases := map[float64]Event{
		400:    Far,
		15:     Far,
		14.999: Near,
		12:     Near,
		10:     Near,
		9.999:  VeryNear,
		6:      VeryNear,
		0.01:   VeryNear,
		0:      None,
		-3:     None,
	}
	for cm, want := range cases {
		require.Equal(t, want, Classify(Centimeters(cm)), "distance %v", cm)
	}
}

// TestClassify_Invalid verifies the Invalid sentinel maps to None.
func TestClassify_Invalid(t *testing.T) {
	t.Parallel()

	require.Equal(t, None, Classify(Invalid))
	require.Equal(t, None, Classify(Centimeters(math.NaN())))
}

// TestDistance_Sentinel verifies Invalid and non-finite values are not valid.
func TestDistance_Sentinel(t *testing.T) {
	t.Parallel()

	require.False(t, Invalid.Valid())
	require.False(t, Centimeters(math.Inf(1)).Valid())
	require.Equal(t, "invalid", Invalid.String())

	cm, ok := Centimeters(8).Centimeters()
	require.True(t, ok)
	require.InDelta(t, 8.0, cm, 1e-9)
	require.Equal(t, "8.00 cm", Centimeters(8).String())
}

// TestZoneAndEventNames keeps diagnostic names stable.
func TestZoneAndEventNames(t *testing.T) {
	t.Parallel()

	require.Equal(t, "SAFE", Safe.String())
	require.Equal(t, "WARNING", Warning.String())
	require.Equal(t, "CRITICAL", Critical.String())
	require.Equal(t, "UNKNOWN", Zone(7).String())
	require.False(t, Zone(-1).Valid())
	require.Equal(t, "very-near", VeryNear.String())
	require.Equal(t, 3, ZoneCount)
	require.Equal(t, 4, EventCount)
}
