package i2cinit

import (
	"time"

	"tinygo.org/x/drivers"
)

// HardwareHz is the clock used for hardware bus acquisition.
const HardwareHz uint32 = 100_000

// softwareHz is the descending clock ladder for the bit-banged fallback.
var softwareHz = []uint32{100_000, 50_000, 10_000}

// OpenFunc acquires a bus at the given clock frequency. Hardware
// acquisition wraps the MCU's I2C peripheral; software acquisition wraps
// a bit-banged implementation.
type OpenFunc func(hz uint32) (drivers.I2C, error)

// PullupReport is the result of probing one line for pull resistors.
type PullupReport struct {
	// External: the line read high as a plain input, so an external
	// pull-up is present.
	External bool
	// WithInternal: the line read high with the internal pull-up enabled.
	// Low here means something is actively holding the line down.
	WithInternal bool
}

// ProbePullup measures the pull-up situation on one line and releases it.
// Purely informational; the caller logs the result and moves on.
func ProbePullup(l Line) PullupReport {
	l.Input(PullNone)
	ext := l.Get()
	l.Input(PullUp)
	with := l.Get()
	l.Release()
	return PullupReport{External: ext, WithInternal: with}
}

// Initializer walks the bus-acquisition ladder once at startup:
//
//  1. pull-up diagnostic on both lines (logged, never gates anything)
//  2. hardware bus at HardwareHz
//  3. on failure: Recover, then one hardware retry
//  4. software bus at each frequency in softwareHz
//  5. nothing worked: log a power-cycle instruction and idle forever
//
// Step 5 is deliberate fail-stop. Without the sensor bus the device has
// no safe behavior, so it parks until someone power-cycles it.
type Initializer struct {
	SCL, SDA Line

	OpenHardware OpenFunc
	OpenSoftware OpenFunc

	// Halt is one iteration of the terminal idle wait. Left nil it
	// sleeps one second; tests inject a panic to observe the halt.
	Halt func()
}

// Up runs the ladder and returns the first bus that acquires. On total
// failure it never returns.
func (in *Initializer) Up() drivers.I2C {
	println("checking I2C pull-ups...")
	logPullups("SCL", ProbePullup(in.SCL))
	logPullups("SDA", ProbePullup(in.SDA))

	println("initializing I2C...")
	bus, err := in.OpenHardware(HardwareHz)
	if err == nil {
		println("  using hardware I2C")
		return bus
	}
	println("  hardware I2C failed:", err.Error())

	Recover(in.SCL, in.SDA)
	println("  retrying hardware I2C after bus recovery...")
	bus, err = in.OpenHardware(HardwareHz)
	if err == nil {
		println("  using hardware I2C (after recovery)")
		return bus
	}
	println("  hardware I2C still failed:", err.Error())

	println("  trying software I2C...")
	for _, hz := range softwareHz {
		bus, err = in.OpenSoftware(hz)
		if err == nil {
			println("  using software I2C at", hz, "Hz")
			return bus
		}
		println("  software I2C at", hz, "Hz failed:", err.Error())
	}

	println()
	println("  ERROR: could not initialize I2C after all attempts.")
	println("  The sensor may be holding SCL low and not releasing.")
	println("  Power-cycle the board (unplug USB and replug) and check wiring.")
	halt := in.Halt
	if halt == nil {
		halt = func() { time.Sleep(time.Second) }
	}
	for {
		halt()
	}
}

func logPullups(name string, r PullupReport) {
	ext, with := "NO", "low"
	if r.External {
		ext = "yes"
	}
	if r.WithInternal {
		with = "high"
	}
	println("  "+name+": external_pullup="+ext, "with_internal="+with)
}

// Scan probes every 7-bit address in the valid range and returns the ones
// that acknowledge a read. Used after bus-up to report what is actually
// wired, before committing to the sensor's address.
func Scan(bus drivers.I2C) []uint16 {
	var found []uint16
	buf := make([]byte, 1)
	for addr := uint16(0x08); addr <= 0x77; addr++ {
		if err := bus.Tx(addr, nil, buf); err == nil {
			found = append(found, addr)
		}
	}
	return found
}
