// Pico-Nunchuk: Wii Nunchuk to USB HID (mouse + keyboard) for TinkerCAD.
// Target: Raspberry Pi Pico (flash with `tinygo flash -target pico .`).
//
// Importing the mouse and keyboard packages registers a composite HID
// device with the TinyGo USB stack; no extra descriptor setup is needed.
package main

import (
	"machine"
	"machine/usb/hid/keyboard"
	"machine/usb/hid/mouse"
	"time"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/i2csoft"

	"github.com/SpicyLimes/Pico-Nunchuk/i2cinit"
	"github.com/SpicyLimes/Pico-Nunchuk/nunchuk"
	"github.com/SpicyLimes/Pico-Nunchuk/pad"
)

// I2C wiring: GP4=SDA, GP5=SCL (the I2C0 defaults on the Pico).
const (
	pinSDA = machine.GP4
	pinSCL = machine.GP5
)

// Keys the loop can emit, mapped to HID keycodes in usbOutput.
// F fits the view in TinkerCAD, D drops the selection to the workplane.
const (
	keyFitView pad.Key = iota + 1
	keyDropObject
	keyPanModifier // shift, held around the pan drag gesture
)

func main() {
	time.Sleep(2 * time.Second) // let USB enumerate and the sensor power up
	println("=== Pico-Nunchuk: Wii Nunchuk HID controller ===")
	println()

	scl := pinLine{pinSCL}
	sda := pinLine{pinSDA}

	boot := &i2cinit.Initializer{
		SCL:          scl,
		SDA:          sda,
		OpenHardware: openHardware,
		OpenSoftware: openSoftware,
	}
	bus := boot.Up() // never returns on total failure
	println()

	found := i2cinit.Scan(bus)
	print("  I2C devices found:")
	for _, addr := range found {
		print(" 0x", formatHex(uint8(addr)))
	}
	println()
	if !contains(found, nunchuk.Address) {
		println("  WARNING: Nunchuk (0x52) not found on I2C bus!")
		println("  Check wiring: SDA->GP4, SCL->GP5, 3V3, GND")
		println("  Continuing in 3 seconds...")
		time.Sleep(3 * time.Second)
	}

	dev := nunchuk.New(bus)
	if err := dev.Configure(); err != nil {
		// A late-connecting Nunchuk is allowed; reads stay no-ops until
		// it answers, so the loop just idles.
		println("  Nunchuk init failed:", err.Error())
	} else {
		println("Nunchuk initialized")
	}

	cfg := pad.DefaultConfig()
	cfg.TapKeyC = keyFitView
	cfg.TapKeyZ = keyDropObject
	cfg.PanModifier = keyPanModifier

	ctrl := pad.NewController(cfg, sensor{dev}, usbOutput{})
	println("Ready - move the joystick or press C/Z")
	ctrl.Run()
}

// openHardware acquires the RP2040's I2C0 peripheral.
func openHardware(hz uint32) (drivers.I2C, error) {
	i2c := machine.I2C0
	err := i2c.Configure(machine.I2CConfig{
		Frequency: hz,
		SDA:       pinSDA,
		SCL:       pinSCL,
	})
	if err != nil {
		return nil, err
	}
	return i2c, nil
}

// openSoftware acquires a bit-banged bus on the same pins.
func openSoftware(hz uint32) (drivers.I2C, error) {
	i2c := i2csoft.New(pinSCL, pinSDA)
	if err := i2c.Configure(i2csoft.I2CConfig{Frequency: hz}); err != nil {
		return nil, err
	}
	return i2c, nil
}

// pinLine adapts a GPIO pin to the i2cinit.Line interface.
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

// Release returns the pin to a plain input, the closest the RP2040 gets
// to unconfigured, so the I2C peripheral can claim it afterwards.
func (l pinLine) Release() {
	l.pin.Configure(machine.PinConfig{Mode: machine.PinInput})
}

// sensor adapts nunchuk.Device to the control loop's input interface.
type sensor struct {
	dev *nunchuk.Device
}

func (s sensor) Read() (pad.Sample, error) {
	st, err := s.dev.Read()
	if err != nil {
		return pad.Sample{}, err
	}
	return pad.Sample{JoyX: st.JoyX, JoyY: st.JoyY, C: st.C, Z: st.Z}, nil
}

// usbOutput adapts the TinyGo USB HID mouse and keyboard to the control
// loop's output interface.
type usbOutput struct{}

func (usbOutput) PressKey(k pad.Key) {
	_ = keyboard.Port().Down(keycode(k))
}

func (usbOutput) ReleaseKey(k pad.Key) {
	_ = keyboard.Port().Up(keycode(k))
}

func (usbOutput) PressButton(b pad.Button) {
	mouse.Port().Press(button(b))
}

func (usbOutput) ReleaseButton(b pad.Button) {
	mouse.Port().Release(button(b))
}

func (usbOutput) Move(dx, dy, scroll int) {
	m := mouse.Port()
	if dx != 0 || dy != 0 {
		m.Move(dx, dy)
	}
	if scroll != 0 {
		m.Wheel(scroll)
	}
}

func keycode(k pad.Key) keyboard.Keycode {
	switch k {
	case keyFitView:
		return keyboard.KeyF
	case keyDropObject:
		return keyboard.KeyD
	case keyPanModifier:
		return keyboard.KeyModifierLeftShift
	}
	return 0
}

func button(b pad.Button) mouse.Button {
	if b == pad.MouseRight {
		return mouse.Right
	}
	return mouse.Left
}

func contains(addrs []uint16, addr uint16) bool {
	for _, a := range addrs {
		if a == addr {
			return true
		}
	}
	return false
}

func formatHex(b uint8) string {
	const hex = "0123456789ABCDEF"
	return string([]byte{hex[b>>4], hex[b&0x0F]})
}
