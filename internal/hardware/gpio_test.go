package hardware

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/gpio/gpioreg"
	"periph.io/x/periph/conn/gpio/gpiotest"
)

// testPins returns fresh fake pins for every logical pin.
func testPins(prefix string) (map[PinID]gpio.PinIO, map[PinID]*gpiotest.Pin) {
	var (
		ios   = make(map[PinID]gpio.PinIO, PinCount)
		fakes = make(map[PinID]*gpiotest.Pin, PinCount)
	)

	for id := PinID(0); id < PinID(PinCount); id++ {
		p := &gpiotest.Pin{N: prefix + "_" + id.String(), Num: 900 + int(id), L: gpio.High}
		ios[id] = p
		fakes[id] = p
	}

	return ios, fakes
}

// TestNewGPIO_RequiresAllPins verifies a missing logical pin is rejected.
func TestNewGPIO_RequiresAllPins(t *testing.T) {
	t.Parallel()

	ios, _ := testPins("missing")
	delete(ios, Alert)

	b, err := NewGPIO(context.Background(), ios)
	require.ErrorIs(t, err, errPinMissing)
	require.Nil(t, b)
}

// TestGPIO_ConfigureWriteRead exercises configuration, writes, reads and Close on fake pins.
func TestGPIO_ConfigureWriteRead(t *testing.T) {
	t.Parallel()

	ios, fakes := testPins("rw")

	b, err := NewGPIO(context.Background(), ios)
	require.NoError(t, err)
	require.NoError(t, Configure(b))

	for _, id := range Outputs() {
		require.Equal(t, gpio.Low, fakes[id].Read(), id.String())
	}

	require.Equal(t, gpio.PullDown, fakes[Echo].P)

	b.SetOutput(WarningLamp, true)
	require.Equal(t, gpio.High, fakes[WarningLamp].Read())

	setLevel(fakes[Echo], gpio.Low)
	require.False(t, b.ReadInput(Echo))

	setLevel(fakes[Echo], gpio.High)
	require.True(t, b.ReadInput(Echo))

	before := b.Now()
	b.Sleep(time.Millisecond)
	require.GreaterOrEqual(t, ElapsedMicroseconds(before, b.Now()), uint32(1000))

	require.NoError(t, b.Close())
	require.Equal(t, gpio.Low, fakes[WarningLamp].Read())
}

// TestOpenGPIO_ResolvesByName verifies pins are looked up in the periph registry.
func TestOpenGPIO_ResolvesByName(t *testing.T) {
	t.Parallel()

	_, fakes := testPins("registry")
	names := make(map[PinID]string, PinCount)

	for id, p := range fakes {
		require.NoError(t, gpioreg.Register(p))

		names[id] = p.Name()
	}

	b, err := OpenGPIO(context.Background(), names)
	require.NoError(t, err)
	require.NotNil(t, b)

	names[Echo] = "registry_does_not_exist"

	_, err = OpenGPIO(context.Background(), names)
	require.ErrorIs(t, err, errPinNotFound)
}

// setLevel changes a fake pin level the way a wired peripheral would.
func setLevel(p *gpiotest.Pin, l gpio.Level) {
	p.Lock()
	defer p.Unlock()

	p.L = l
}
