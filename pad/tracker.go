package pad

import "time"

// Event is the discrete outcome of one Tracker update.
type Event uint8

const (
	EventNone Event = iota
	// EventTap: released within TapMax with the stick never leaving the
	// dead zone during the press.
	EventTap
	// EventHoldStart: the press just crossed TapMax. Emitted exactly once
	// per press episode.
	EventHoldStart
	// EventHoldEnd: a press that produced EventHoldStart was released.
	EventHoldEnd
)

// Tracker disambiguates taps from holds for one physical button.
// It is fed one sample per tick by the control loop and is not safe for
// concurrent use (the loop is the only writer).
type Tracker struct {
	tapMax time.Duration

	pressed   bool
	pressTime time.Time
	moved     bool // stick left the dead zone at some point during this press
	held      bool // press duration crossed tapMax during this press
}

// NewTracker returns a Tracker with the given tap duration threshold.
func NewTracker(tapMax time.Duration) *Tracker {
	return &Tracker{tapMax: tapMax}
}

// Update feeds the current button level, the sample time and whether the
// stick is outside the dead zone this tick. It returns the event produced
// by the transition, if any.
func (t *Tracker) Update(pressed bool, now time.Time, moved bool) Event {
	switch {
	case pressed && !t.pressed:
		// Button just pressed. Flags reset here and only here.
		t.pressed = true
		t.pressTime = now
		t.moved = false
		t.held = false

	case pressed && t.pressed:
		if moved {
			t.moved = true
		}
		if now.Sub(t.pressTime) > t.tapMax && !t.held {
			t.held = true
			return EventHoldStart
		}

	case !pressed && t.pressed:
		t.pressed = false
		if t.held {
			return EventHoldEnd
		}
		if now.Sub(t.pressTime) <= t.tapMax && !t.moved {
			return EventTap
		}
		// A press released past TapMax (or with stick movement) that never
		// crossed the hold threshold on a pressed tick produces nothing.
	}
	return EventNone
}

// Holding reports whether the button is down and the press has crossed the
// tap threshold, i.e. the button is acting as a mode modifier.
func (t *Tracker) Holding() bool {
	return t.pressed && t.held
}
