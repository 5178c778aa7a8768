package pad

import "time"

// Sample is one sensor snapshot: raw joystick axes (0-255) and the two
// button levels. It is consumed within the tick that read it.
type Sample struct {
	JoyX, JoyY uint8
	C, Z       bool
}

// Sensor is the input side of the loop. Read may fail before the bus is
// up; the loop treats a failed read as a no-op tick.
type Sensor interface {
	Read() (Sample, error)
}

// Output is the HID sink. Commands are fire-and-forget; the receiving
// host keeps pointer and key state, so callers must pair every press with
// exactly one release.
type Output interface {
	PressKey(k Key)
	ReleaseKey(k Key)
	PressButton(b Button)
	ReleaseButton(b Button)
	// Move emits a relative pointer report: x/y deltas plus wheel scroll.
	Move(dx, dy, scroll int)
}

// Controller is the top-level mode dispatcher. Each tick it reads one
// Sample, advances both button trackers and emits HID commands for the
// selected mode:
//
//	C held        pointer drag with the left button down
//	Z held        orbit: pointer drag with the right button down
//	neither held  stick Y scrolls (zoom), stick X pans via an atomic
//	              modifier + right-drag gesture
//
// All state lives on the single loop; there is no locking anywhere.
type Controller struct {
	cfg    Config
	sensor Sensor
	out    Output

	btnC *Tracker
	btnZ *Tracker

	// Output latches: whether we have issued an unmatched press for the
	// left/right pointer button, so each hold releases exactly once.
	leftDown  bool
	rightDown bool
}

// NewController wires a Controller to its sensor and output sink.
func NewController(cfg Config, sensor Sensor, out Output) *Controller {
	return &Controller{
		cfg:    cfg,
		sensor: sensor,
		out:    out,
		btnC:   NewTracker(cfg.TapMax),
		btnZ:   NewTracker(cfg.TapMax),
	}
}

// Run executes ticks forever at the configured period. It never returns.
func (c *Controller) Run() {
	for {
		c.Tick(time.Now())
		time.Sleep(c.cfg.LoopDelay)
	}
}

// Tick performs one loop iteration at the given time. Exposed separately
// from Run so tests can drive synthetic clocks and sample sequences.
func (c *Controller) Tick(now time.Time) {
	s, err := c.sensor.Read()
	if err != nil {
		return
	}

	moved := c.joyActive(s.JoyX, s.JoyY)

	evC := c.btnC.Update(s.C, now, moved)
	evZ := c.btnZ.Update(s.Z, now, moved)

	if evC == EventTap {
		c.out.PressKey(c.cfg.TapKeyC)
		c.out.ReleaseKey(c.cfg.TapKeyC)
	}
	if evZ == EventTap {
		c.out.PressKey(c.cfg.TapKeyZ)
		c.out.ReleaseKey(c.cfg.TapKeyZ)
	}

	switch {
	case c.btnC.Holding():
		// Drag: left button held while the stick steers the pointer.
		mx := ScaleAxis(int(s.JoyX), c.cfg.JoyCenter, c.cfg.JoyDeadzone, c.cfg.DragSensitivity)
		my := -ScaleAxis(int(s.JoyY), c.cfg.JoyCenter, c.cfg.JoyDeadzone, c.cfg.DragSensitivity)
		if !c.leftDown {
			c.out.PressButton(MouseLeft)
			c.leftDown = true
		}
		if mx != 0 || my != 0 {
			c.out.Move(mx, my, 0)
		}

	case c.btnZ.Holding():
		// Orbit: right button held, usually bound to view rotation.
		mx := ScaleAxis(int(s.JoyX), c.cfg.JoyCenter, c.cfg.JoyDeadzone, c.cfg.OrbitSensitivity)
		my := -ScaleAxis(int(s.JoyY), c.cfg.JoyCenter, c.cfg.JoyDeadzone, c.cfg.OrbitSensitivity)
		if !c.rightDown {
			c.out.PressButton(MouseRight)
			c.rightDown = true
		}
		if mx != 0 || my != 0 {
			c.out.Move(mx, my, 0)
		}

	case moved:
		// Neutral: vertical deflection zooms via the scroll wheel.
		sy := int(s.JoyY) - c.cfg.JoyCenter
		if sy > c.cfg.JoyDeadzone || sy < -c.cfg.JoyDeadzone {
			if scroll := sy / c.cfg.ScrollDivisor; scroll != 0 {
				c.out.Move(0, 0, scroll)
			}
		}
		// Horizontal deflection pans: one complete modifier + right-drag
		// gesture per tick, so no button state outlives the tick.
		sx := ScaleAxis(int(s.JoyX), c.cfg.JoyCenter, c.cfg.JoyDeadzone, c.cfg.DragSensitivity)
		if sx != 0 {
			c.out.PressKey(c.cfg.PanModifier)
			c.out.PressButton(MouseRight)
			c.out.Move(sx, 0, 0)
			c.out.ReleaseButton(MouseRight)
			c.out.ReleaseKey(c.cfg.PanModifier)
		}
	}

	// Unlatch after dispatch so the release lands on the HoldEnd tick.
	if evC == EventHoldEnd && c.leftDown {
		c.out.ReleaseButton(MouseLeft)
		c.leftDown = false
	}
	if evZ == EventHoldEnd && c.rightDown {
		c.out.ReleaseButton(MouseRight)
		c.rightDown = false
	}
}

func (c *Controller) joyActive(jx, jy uint8) bool {
	dx := int(jx) - c.cfg.JoyCenter
	dy := int(jy) - c.cfg.JoyCenter
	return dx > c.cfg.JoyDeadzone || dx < -c.cfg.JoyDeadzone ||
		dy > c.cfg.JoyDeadzone || dy < -c.cfg.JoyDeadzone
}
