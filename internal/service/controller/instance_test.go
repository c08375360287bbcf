package controller

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestEnsureSingleInstance verifies absent executables and the current process do not block startup.
func TestEnsureSingleInstance(t *testing.T) {
	t.Parallel()

	require.NoError(t, ensureSingleInstance("no-such-proximity-controller"))
	require.NotEmpty(t, executableName())
}
