package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/proximity-alarm/internal/config"
	"github.com/oshokin/proximity-alarm/internal/service/controller"
	"github.com/oshokin/proximity-alarm/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// simulate forces the simulated sensor backend.
	simulate bool
	// consoleOutput enables the live status line.
	consoleOutput bool
	// logLevel overrides the configured log level.
	logLevel string

	// rootCmd represents the base command for running the controller.
	rootCmd = &cobra.Command{
		Use:   "proximity-alarm",
		Short: "Run the proximity warning controller.",
		Long: `Samples an ultrasonic distance sensor and warns about approaching obstacles.

Each reading is classified into a zone (safe, warning, critical) that drives
three status lamps. Inside the warning band the buzzer beeps at a fixed rate;
inside the critical band it beeps faster the closer the obstacle gets.

Pins are driven through periph.io on the host GPIO. Use --simulate to run
against the built-in sensor simulator instead. The controller waits for the
configured startup delay before sampling and runs until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &controller.Options{
				ConfigPath: configPath,
				Simulate:   simulate,
				Console:    consoleOutput,
				LogLevel:   logLevel,
			}

			return controller.Run(ctx, options)
		},
	}
)

// Execute runs the proximity-alarm CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().BoolVarP(&simulate, "simulate", "s", false, "use the built-in sensor simulator")
	rootCmd.Flags().BoolVar(&consoleOutput, "console", false, "print a live status line to stdout")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "", "log level (debug, info, warn, error)")
}
