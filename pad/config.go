// Package pad turns Nunchuk joystick and button samples into USB HID
// mouse and keyboard commands for driving a 3D modeling application.
//
// The package has no hardware dependencies: the sensor and the HID output
// are consumed through small interfaces so the whole control loop runs
// under plain `go test` with scripted inputs.
package pad

import "time"

// Key identifies a keyboard key to the Output sink. The values are opaque
// to this package; the sink owns the mapping to real HID keycodes.
type Key uint8

// Button is a pointer button on the Output sink.
type Button uint8

const (
	MouseLeft Button = iota + 1
	MouseRight
)

// Config holds every tunable of the control loop. A value is built once
// in main and never mutated afterwards.
type Config struct {
	// JoyCenter is the raw axis value at stick rest (0-255 scale).
	JoyCenter int
	// JoyDeadzone is the band around center treated as no input.
	JoyDeadzone int

	// DragSensitivity is the pointer speed while button C is held,
	// in counts per tick at full deflection. Also used for neutral-mode
	// horizontal panning.
	DragSensitivity int
	// OrbitSensitivity is the pointer speed while button Z is held.
	OrbitSensitivity int
	// ScrollDivisor divides the raw Y offset into a scroll delta
	// (higher = slower scrolling).
	ScrollDivisor int

	// TapMax is the longest press that still counts as a tap.
	TapMax time.Duration
	// LoopDelay is the sleep at the end of every tick.
	LoopDelay time.Duration

	// TapKeyC and TapKeyZ are sent as press-and-release on a tap of the
	// corresponding button. PanModifier is held around the neutral-mode
	// horizontal pan gesture.
	TapKeyC     Key
	TapKeyZ     Key
	PanModifier Key
}

// DefaultConfig returns the tuning used on the reference hardware.
// Key values are zero; main fills them in from its keycode table.
func DefaultConfig() Config {
	return Config{
		JoyCenter:        128,
		JoyDeadzone:      25,
		DragSensitivity:  15,
		OrbitSensitivity: 12,
		ScrollDivisor:    40,
		TapMax:           300 * time.Millisecond,
		LoopDelay:        10 * time.Millisecond,
	}
}
