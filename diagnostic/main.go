// Package main provides a diagnostic tool to test Nunchuk I2C connectivity
// and help troubleshoot wiring and stuck-bus problems.
// Target: Raspberry Pi Pico (flash with `tinygo flash -target pico ./diagnostic`).
package main

import (
	"machine"
	"time"

	"github.com/SpicyLimes/Pico-Nunchuk/i2cinit"
	"github.com/SpicyLimes/Pico-Nunchuk/nunchuk"
)

const (
	pinSDA = machine.GP4
	pinSCL = machine.GP5
)

func main() {
	time.Sleep(2 * time.Second)
	println("=== Nunchuk I2C Diagnostic Tool ===")
	println()

	// Check the wiring before touching the peripheral
	println("Step 1: Checking pull-ups...")
	reportLine("SCL", pinLine{pinSCL})
	reportLine("SDA", pinLine{pinSDA})
	println()

	// Initialize I2C bus
	println("Step 2: Initializing I2C bus...")
	i2c := machine.I2C0
	err := i2c.Configure(machine.I2CConfig{
		Frequency: i2cinit.HardwareHz,
		SDA:       pinSDA,
		SCL:       pinSCL,
	})
	if err != nil {
		println("FAILED: Could not configure I2C:", err.Error())
		println("If a line is stuck low, the main firmware's bus recovery")
		println("will pulse SCL; here, power-cycle the board and retry.")
		return
	}
	println("SUCCESS: I2C configured at 100 KHz")
	println()

	// Test I2C connectivity
	println("Step 3: Scanning the bus...")
	found := i2cinit.Scan(i2c)
	if len(found) == 0 {
		println("ERROR: no devices found on I2C bus")
		println("Troubleshooting:")
		println("  1. Check wiring (SDA->GP4, SCL->GP5, 3V3, GND)")
		println("  2. Verify 3.3V power supply")
		println("  3. Check I2C pull-up resistors (2.2K - 10K to 3.3V)")
		return
	}
	hasNunchuk := false
	for _, addr := range found {
		println("  Device responds at 0x", formatHex(uint8(addr)))
		if addr == nunchuk.Address {
			hasNunchuk = true
		}
	}
	if !hasNunchuk {
		println("  WARNING: no device at the Nunchuk address 0x52")
	}
	println()

	// Initialize sensor
	println("Step 4: Initializing Nunchuk...")
	dev := nunchuk.New(i2c)
	if err := dev.Configure(); err != nil {
		println("FAILED:", err.Error())
		println()
		println("Troubleshooting:")
		println("  1. Power cycle the Nunchuk (unplug 3V3 and replug)")
		println("  2. Third-party Nunchuks can need a second handshake; rerun this tool")
		return
	}
	println("SUCCESS: Nunchuk initialized")
	println()

	// Read samples
	println("Step 5: Reading samples...")
	println("(Polling for 10 seconds; move the stick and press C/Z...)")
	successCount := 0
	readErrors := 0
	startTime := time.Now()

	for time.Since(startTime) < 10*time.Second {
		st, err := dev.Read()
		if err != nil {
			readErrors++
			if readErrors < 5 {
				println("  Read error:", err.Error())
			}
		} else {
			successCount++
			println("  Joy:", st.JoyX, st.JoyY,
				"Accel:", st.AccelX, st.AccelY, st.AccelZ,
				"C:", st.C, "Z:", st.Z)
		}
		time.Sleep(100 * time.Millisecond)
	}

	println()
	if successCount > 0 {
		println("=== DIAGNOSTIC PASSED ===")
		println("Received", successCount, "valid samples,", readErrors, "errors")
	} else {
		println("=== DIAGNOSTIC FAILED ===")
		println("Handshake worked but no sample reads succeeded")
		println("Check for loose SDA/SCL wires or a failing extension cable")
	}
}

func reportLine(name string, l pinLine) {
	r := i2cinit.ProbePullup(l)
	ext, with := "NO", "low"
	if r.External {
		ext = "yes"
	}
	if r.WithInternal {
		with = "high"
	}
	println("  "+name+": external_pullup="+ext, "with_internal="+with)
}

type pinLine struct {
	pin machine.Pin
}

func (l pinLine) Input(pull i2cinit.Pull) {
	mode := machine.PinInput
	if pull == i2cinit.PullUp {
		mode = machine.PinInputPullup
	}
	l.pin.Configure(machine.PinConfig{Mode: mode})
}

func (l pinLine) Output() {
	l.pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
}

func (l pinLine) Set(high bool) {
	l.pin.Set(high)
}

func (l pinLine) Get() bool {
	return l.pin.Get()
}

func (l pinLine) Release() {
	l.pin.Configure(machine.PinConfig{Mode: machine.PinInput})
}

func formatHex(b uint8) string {
	const hex = "0123456789ABCDEF"
	return string([]byte{hex[b>>4], hex[b&0x0F]})
}
