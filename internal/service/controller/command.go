package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/oshokin/proximity-alarm/internal/config"
	"github.com/oshokin/proximity-alarm/internal/console"
	"github.com/oshokin/proximity-alarm/internal/hardware"
	"github.com/oshokin/proximity-alarm/internal/logger"
	"github.com/oshokin/proximity-alarm/internal/version"
)

// Options controls the controller process and configuration overrides.
type Options struct {
	// ConfigPath specifies the path to settings YAML file.
	ConfigPath string
	// Simulate forces the simulated backend.
	Simulate bool
	// Console forces the live status line on.
	Console bool
	// LogLevel overrides the configured log level when set.
	LogLevel string
	// Stdout receives the status line; defaults to os.Stdout.
	Stdout io.Writer
}

// errUnknownLogLevel is returned for an unparsable --log-level value.
var errUnknownLogLevel = errors.New("unknown log level")

// Run loads the configuration, opens the board, waits the startup delay and
// runs the control loop until ctx is canceled.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "proximity-alarm")

	cfg, err := loadConfig(ctx, opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if err = applyOverrides(cfg, opts); err != nil {
		return err
	}

	level, _ := logger.ParseLogLevel(cfg.LogLevel)
	logger.SetLevel(level)

	board, err := openBoard(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open %s backend: %w", cfg.Backend, err)
	}

	defer func() {
		if closeErr := board.Close(); closeErr != nil {
			logger.ErrorKV(ctx, "Failed to release pins", "error", closeErr)
		}
	}()

	if err = hardware.Configure(board); err != nil {
		return fmt.Errorf("configure pins: %w", err)
	}

	logger.InfoKV(ctx, "Waiting before start", "startup_delay", cfg.StartupDelay, "backend", cfg.Backend)

	if !wait(ctx, cfg.StartupDelay) {
		return nil
	}

	var printer *console.Printer

	if cfg.Console {
		stdout := opts.Stdout
		if stdout == nil {
			stdout = os.Stdout
		}

		printer = console.New(stdout)
		// The status line already shows every sample.
		sampleLevel := max(level, zapcore.InfoLevel)
		ctx = logger.ToContext(ctx, logger.FromContext(ctx).WithOptions(logger.WithLevel(sampleLevel)))
	}

	logger.Info(ctx, version.Banner())
	printer.Line(version.Banner())

	return NewLoop(board, printer).Run(ctx)
}

// loadConfig reads settings; a missing default file falls back to defaults.
func loadConfig(ctx context.Context, path string) (*config.Config, error) {
	if path == "" {
		path = config.DefaultConfigFilename
	}

	cfg, err := config.Load(path)

	switch {
	case err == nil:
		return cfg, nil
	case errors.Is(err, os.ErrNotExist) && path == config.DefaultConfigFilename:
		logger.InfoKV(ctx, "Settings file not found, using defaults", "path", path)

		return config.Default(), nil
	default:
		return nil, err
	}
}

// applyOverrides merges command line options into cfg.
func applyOverrides(cfg *config.Config, opts *Options) error {
	if opts.Simulate {
		cfg.Backend = config.BackendSimulator
	}

	if opts.Console {
		cfg.Console = true
	}

	if opts.LogLevel != "" {
		if _, ok := logger.ParseLogLevel(opts.LogLevel); !ok {
			return fmt.Errorf("%w: %q", errUnknownLogLevel, opts.LogLevel)
		}

		cfg.LogLevel = opts.LogLevel
	}

	return nil
}

// openBoard creates the configured backend.
func openBoard(ctx context.Context, cfg *config.Config) (hardware.Board, error) {
	if cfg.Backend == config.BackendSimulator {
		logger.InfoKV(ctx, "Using simulated sensor", "distances", cfg.Simulator.Distances, "realtime", cfg.Simulator.Realtime)

		return hardware.NewSimulator(cfg.Simulator.Realtime, cfg.Simulator.Distances...), nil
	}

	if err := ensureSingleInstance(executableName()); err != nil {
		return nil, err
	}

	return hardware.OpenGPIO(ctx, cfg.Pins.ByID())
}

// wait blocks for d and reports false when ctx is canceled first.
func wait(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
