package hardware

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/gpio/gpioreg"
	"periph.io/x/periph/host"

	"github.com/oshokin/proximity-alarm/internal/logger"
)

var (
	// errPinNotFound is returned when gpioreg has no pin with the given name.
	errPinNotFound = errors.New("no GPIO pin with this name")
	// errPinMissing is returned when a logical pin has no physical pin assigned.
	errPinMissing = errors.New("logical pin is not assigned")
)

// GPIO is a Board backed by periph.io pins and the system clock.
type GPIO struct {
	// pins maps each logical pin to its physical pin.
	pins [PinCount]gpio.PinIO
	// log receives pin write failures.
	log *zap.SugaredLogger
}

// OpenGPIO initializes the periph host drivers and resolves the physical pins
// by name, in the format expected by gpioreg.ByName (BCM numbers on a
// Raspberry Pi, e.g. "GPIO17").
func OpenGPIO(ctx context.Context, names map[PinID]string) (*GPIO, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("initialize periph host: %w", err)
	}

	pins := make(map[PinID]gpio.PinIO, len(names))

	for id, name := range names {
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, fmt.Errorf("%s %q: %w", id, name, errPinNotFound)
		}

		pins[id] = p
	}

	return NewGPIO(ctx, pins)
}

// NewGPIO builds a board from already resolved pins. Every logical pin must be present.
func NewGPIO(ctx context.Context, pins map[PinID]gpio.PinIO) (*GPIO, error) {
	b := &GPIO{
		log: logger.FromContext(ctx),
	}

	for id := PinID(0); id < PinID(PinCount); id++ {
		p, ok := pins[id]
		if !ok || p == nil {
			return nil, fmt.Errorf("%s: %w", id, errPinMissing)
		}

		b.pins[id] = p
	}

	return b, nil
}

// ConfigureOutput drives the pin low as an output.
func (b *GPIO) ConfigureOutput(id PinID) error {
	if err := b.pins[id].Out(gpio.Low); err != nil {
		return fmt.Errorf("configure %s as output: %w", id, err)
	}

	return nil
}

// ConfigureInput sets the pin as a pulled-down input without edge detection;
// the sensor driver polls it.
func (b *GPIO) ConfigureInput(id PinID) error {
	if err := b.pins[id].In(gpio.PullDown, gpio.NoEdge); err != nil {
		return fmt.Errorf("configure %s as input: %w", id, err)
	}

	return nil
}

// SetOutput writes a level. Failures are logged and otherwise ignored.
func (b *GPIO) SetOutput(id PinID, high bool) {
	if err := b.pins[id].Out(gpio.Level(high)); err != nil {
		b.log.Warnw("Pin write failed", "pin", id, "level", high, "error", err)
	}
}

// ReadInput returns true when the pin reads high.
func (b *GPIO) ReadInput(id PinID) bool {
	return b.pins[id].Read() == gpio.High
}

// Now returns the system monotonic time.
func (*GPIO) Now() time.Time {
	return time.Now()
}

// Sleep blocks the caller for d.
func (*GPIO) Sleep(d time.Duration) {
	time.Sleep(d)
}

// Close drives every output low and halts all pins.
func (b *GPIO) Close() error {
	var errs []error

	for _, id := range Outputs() {
		if err := b.pins[id].Out(gpio.Low); err != nil {
			errs = append(errs, fmt.Errorf("drive %s low: %w", id, err))
		}
	}

	for id, p := range b.pins {
		if err := p.Halt(); err != nil {
			errs = append(errs, fmt.Errorf("halt %s: %w", PinID(id), err))
		}
	}

	return errors.Join(errs...)
}
