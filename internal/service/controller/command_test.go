package controller

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/proximity-alarm/internal/config"
	"github.com/oshokin/proximity-alarm/internal/version"
)

// writeSimulatorConfig saves a realtime simulator configuration without startup delay.
func writeSimulatorConfig(t *testing.T) string {
	t.Helper()

	cfg := config.Default()
	cfg.Backend = config.BackendSimulator
	cfg.StartupDelay = 0
	cfg.Simulator.Distances = []float64{20, 12, 6}
	cfg.Simulator.Realtime = true

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, config.Save(path, cfg))

	return path
}

// TestRun_SimulatorUntilCanceled runs the whole controller on the simulator and stops it.
func TestRun_SimulatorUntilCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	var out bytes.Buffer

	err := Run(ctx, &Options{
		ConfigPath: writeSimulatorConfig(t),
		Console:    true,
		Stdout:     &out,
	})
	require.NoError(t, err)
	require.Contains(t, out.String(), version.Banner())
	require.Contains(t, out.String(), "-> WARNING")
}

// TestRun_CanceledDuringStartupDelay verifies cancellation during the startup delay exits cleanly.
func TestRun_CanceledDuringStartupDelay(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Backend = config.BackendSimulator
	cfg.StartupDelay = time.Hour

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, config.Save(path, cfg))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	require.NoError(t, Run(ctx, &Options{ConfigPath: path}))
}

// TestRun_Errors verifies setup failures are reported.
func TestRun_Errors(t *testing.T) {
	t.Parallel()

	err := Run(context.Background(), &Options{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")})
	require.ErrorIs(t, err, os.ErrNotExist)

	err = Run(context.Background(), &Options{ConfigPath: writeSimulatorConfig(t), LogLevel: "loud"})
	require.ErrorIs(t, err, errUnknownLogLevel)
}

// TestApplyOverrides verifies command line options take precedence over the file.
func TestApplyOverrides(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	require.NoError(t, applyOverrides(cfg, &Options{Simulate: true, Console: true, LogLevel: "debug"}))
	require.Equal(t, config.BackendSimulator, cfg.Backend)
	require.True(t, cfg.Console)
	require.Equal(t, "debug", cfg.LogLevel)

	cfg = config.Default()
	require.NoError(t, applyOverrides(cfg, new(Options)))
	require.Equal(t, config.BackendGPIO, cfg.Backend)
	require.Equal(t, config.DefaultLogLevel, cfg.LogLevel)
}

// TestWait verifies the startup wait honors both the delay and cancellation.
func TestWait(t *testing.T) {
	t.Parallel()

	require.True(t, wait(context.Background(), 0))
	require.True(t, wait(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.False(t, wait(ctx, time.Hour))
	require.False(t, wait(ctx, 0))
}
