package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/proximity-alarm/internal/hardware"
	"github.com/oshokin/proximity-alarm/internal/logger"
)

// Backend selects the hardware implementation.
type Backend string

const (
	// BackendGPIO drives real pins through periph.io.
	BackendGPIO Backend = "gpio"
	// BackendSimulator runs against the built-in sensor simulator.
	BackendSimulator Backend = "simulator"
)

// Pins holds the physical pin name of every logical pin, as understood by
// periph's gpioreg.ByName (e.g. "GPIO17" on a Raspberry Pi).
type Pins struct {
	// SafeLamp is the green lamp.
	SafeLamp string `yaml:"safe_lamp"`
	// WarningLamp is the yellow lamp.
	WarningLamp string `yaml:"warning_lamp"`
	// CriticalLamp is the red lamp.
	CriticalLamp string `yaml:"critical_lamp"`
	// Alert is the buzzer.
	Alert string `yaml:"alert"`
	// Trigger is the sensor trigger line.
	Trigger string `yaml:"trigger"`
	// Echo is the sensor echo line.
	Echo string `yaml:"echo"`
}

// Simulator configures the simulated backend.
type Simulator struct {
	// Distances is the cycled obstacle script in centimeters; 0 means no echo.
	Distances []float64 `yaml:"distances"`
	// Realtime paces simulated sleeps with the wall clock.
	Realtime bool `yaml:"realtime"`
}

// Config holds the controller settings.
type Config struct {
	// Backend selects real GPIO or the simulator.
	Backend Backend `yaml:"backend"`
	// Pins is the wiring of the logical pins.
	Pins Pins `yaml:"pins"`
	// StartupDelay is waited before the control loop starts so a console can attach.
	StartupDelay time.Duration `yaml:"startup_delay"`
	// LogLevel is the minimum level of log entries.
	LogLevel string `yaml:"log_level"`
	// Console enables the live status line on stdout.
	Console bool `yaml:"console"`
	// Simulator configures the simulated backend.
	Simulator Simulator `yaml:"simulator"`
}

const (
	// DefaultConfigFilename is the default filename for controller settings.
	DefaultConfigFilename = "proximity-alarm.yaml"

	// DefaultStartupDelay gives a diagnostic console time to attach.
	DefaultStartupDelay = 3 * time.Second

	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errUnknownBackend is returned for a backend other than gpio or simulator.
	errUnknownBackend = errors.New("unknown backend")
	// errPinNameRequired is returned when a logical pin has no name.
	errPinNameRequired = errors.New("pin name must be provided")
	// errDuplicatePin is returned when two logical pins share a physical pin.
	errDuplicatePin = errors.New("pin is assigned twice")
	// errNegativeDelay is returned for a negative startup delay.
	errNegativeDelay = errors.New("startup delay must not be negative")
	// errUnknownLogLevel is returned for an unparsable log level.
	errUnknownLogLevel = errors.New("unknown log level")
)

// Default returns the settings of the reference wiring: lamps on GPIO12, 14
// and 15, the buzzer on GPIO20, the sensor trigger on GPIO16 and echo on GPIO17.
func Default() *Config {
	return &Config{
		Backend: BackendGPIO,
		Pins: Pins{
			SafeLamp:     "GPIO12",
			WarningLamp:  "GPIO14",
			CriticalLamp: "GPIO15",
			Alert:        "GPIO20",
			Trigger:      "GPIO16",
			Echo:         "GPIO17",
		},
		StartupDelay: DefaultStartupDelay,
		LogLevel:     DefaultLogLevel,
		Simulator: Simulator{
			Distances: []float64{40, 20, 14, 12, 11, 9, 7, 5, 3, 5, 8, 12, 20, 0},
		},
	}
}

// Load reads configuration from the provided path over the defaults and validates it.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the settings, filling in the backend and log level when empty.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	switch cfg.Backend {
	case "":
		cfg.Backend = BackendGPIO
	case BackendGPIO, BackendSimulator:
	default:
		return fmt.Errorf("%w: %q", errUnknownBackend, cfg.Backend)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errUnknownLogLevel, cfg.LogLevel)
	}

	if cfg.StartupDelay < 0 {
		return errNegativeDelay
	}

	seen := make(map[string]hardware.PinID, hardware.PinCount)

	for id, name := range cfg.Pins.ByID() {
		if name == "" {
			return fmt.Errorf("%s: %w", id, errPinNameRequired)
		}

		if other, ok := seen[name]; ok {
			return fmt.Errorf("%q used by %s and %s: %w", name, other, id, errDuplicatePin)
		}

		seen[name] = id
	}

	return nil
}

// ByID returns the pin names keyed by logical pin.
func (p Pins) ByID() map[hardware.PinID]string {
	return map[hardware.PinID]string{
		hardware.SafeLamp:     p.SafeLamp,
		hardware.WarningLamp:  p.WarningLamp,
		hardware.CriticalLamp: p.CriticalLamp,
		hardware.Alert:        p.Alert,
		hardware.Trigger:      p.Trigger,
		hardware.Echo:         p.Echo,
	}
}
