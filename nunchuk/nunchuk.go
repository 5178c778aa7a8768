// Package nunchuk reads a Wii Nunchuk over I2C. It speaks the plain
// register protocol (unencrypted handshake) and decodes the 6-byte state
// report: joystick, three 10-bit accelerometer axes and the C/Z buttons.
package nunchuk

import (
	"time"

	"tinygo.org/x/drivers"
)

// Address is the Nunchuk's fixed 7-bit I2C address.
const Address uint16 = 0x52

// readDelay is the pause between requesting a report and reading it; the
// controller needs time to latch fresh data into its output registers.
const readDelay = time.Millisecond

// State is one decoded report.
type State struct {
	// JoyX and JoyY are the raw stick axes, 0-255, roughly 128 at rest.
	JoyX, JoyY uint8
	// AccelX, AccelY and AccelZ are the 10-bit accelerometer axes.
	AccelX, AccelY, AccelZ uint16
	// C and Z are the button levels, true while pressed.
	C, Z bool
}

// Device is a Nunchuk on an I2C bus.
type Device struct {
	bus  drivers.I2C
	addr uint16
	buf  [6]byte
}

// New returns a Device on the given bus at the standard address.
func New(bus drivers.I2C) *Device {
	return &Device{bus: bus, addr: Address}
}

// Configure performs the unencrypted init handshake. Must be called once
// before Read; it fails if the Nunchuk does not acknowledge.
func (d *Device) Configure() error {
	if err := d.bus.Tx(d.addr, []byte{0xF0, 0x55}, nil); err != nil {
		return err
	}
	return d.bus.Tx(d.addr, []byte{0xFB, 0x00}, nil)
}

// Read fetches and decodes one state report.
func (d *Device) Read() (State, error) {
	if err := d.bus.Tx(d.addr, []byte{0x00}, nil); err != nil {
		return State{}, err
	}
	time.Sleep(readDelay)
	if err := d.bus.Tx(d.addr, nil, d.buf[:]); err != nil {
		return State{}, err
	}

	b := d.buf[5]
	return State{
		JoyX:   d.buf[0],
		JoyY:   d.buf[1],
		AccelX: uint16(d.buf[2])<<2 | uint16(b>>2)&0x3,
		AccelY: uint16(d.buf[3])<<2 | uint16(b>>4)&0x3,
		AccelZ: uint16(d.buf[4])<<2 | uint16(b>>6)&0x3,
		// Button bits are active low.
		Z: b&0x01 == 0,
		C: b&0x02 == 0,
	}, nil
}
