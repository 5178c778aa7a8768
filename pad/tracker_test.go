package pad

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tapMax = 300 * time.Millisecond

// drive feeds the tracker one update per 10ms tick over the given span,
// collecting every non-None event with its tick index.
func drive(t *Tracker, start time.Time, span time.Duration, pressed func(tick int) bool, moved func(tick int) bool) map[int]Event {
	events := map[int]Event{}
	ticks := int(span / (10 * time.Millisecond))
	for i := 0; i <= ticks; i++ {
		now := start.Add(time.Duration(i) * 10 * time.Millisecond)
		if ev := t.Update(pressed(i), now, moved(i)); ev != EventNone {
			events[i] = ev
		}
	}
	return events
}

func TestTrackerTap(t *testing.T) {
	tr := NewTracker(tapMax)
	start := time.Now()

	// Pressed for ticks 0-9 (100ms), released on tick 10, stick still.
	events := drive(tr, start, 200*time.Millisecond,
		func(i int) bool { return i < 10 },
		func(i int) bool { return false },
	)

	require.Len(t, events, 1)
	assert.Equal(t, EventTap, events[10])
}

func TestTrackerHold(t *testing.T) {
	for _, moving := range []bool{false, true} {
		name := "stick still"
		if moving {
			name = "stick moving"
		}
		t.Run(name, func(t *testing.T) {
			tr := NewTracker(tapMax)
			start := time.Now()

			// Pressed for ticks 0-49 (0.5s), released on tick 50. A hold
			// fires regardless of stick movement.
			events := drive(tr, start, 600*time.Millisecond,
				func(i int) bool { return i < 50 },
				func(i int) bool { return moving },
			)

			require.Len(t, events, 2)
			// 300ms is tick 30; strictly-greater means tick 31 crosses first.
			assert.Equal(t, EventHoldStart, events[31])
			assert.Equal(t, EventHoldEnd, events[50])
		})
	}
}

func TestTrackerShortPressWithMovementDropsTap(t *testing.T) {
	tr := NewTracker(tapMax)
	start := time.Now()

	events := drive(tr, start, 200*time.Millisecond,
		func(i int) bool { return i < 10 },
		func(i int) bool { return i == 5 }, // one excursion outside the dead zone
	)

	assert.Empty(t, events)
}

func TestTrackerLateReleaseWithoutHoldTickIsSilent(t *testing.T) {
	// The press crosses the tap threshold between samples: the press tick
	// is the only pressed update, and the release arrives past TapMax.
	// No hold ever started, the tap window expired: nothing is emitted.
	tr := NewTracker(tapMax)
	start := time.Now()

	assert.Equal(t, EventNone, tr.Update(true, start, false))
	assert.Equal(t, EventNone, tr.Update(false, start.Add(400*time.Millisecond), true))
}

func TestTrackerHoldStartFiresOnce(t *testing.T) {
	tr := NewTracker(tapMax)
	start := time.Now()

	starts := 0
	for i := 0; i < 100; i++ {
		now := start.Add(time.Duration(i) * 10 * time.Millisecond)
		if tr.Update(true, now, false) == EventHoldStart {
			starts++
		}
	}
	assert.Equal(t, 1, starts)
	assert.True(t, tr.Holding())
}

func TestTrackerFlagsResetOnEachPress(t *testing.T) {
	tr := NewTracker(tapMax)
	start := time.Now()

	// First episode: a hold with movement, setting both sticky flags.
	tr.Update(true, start, true)
	tr.Update(true, start.Add(400*time.Millisecond), true)
	require.True(t, tr.Holding())
	require.Equal(t, EventHoldEnd, tr.Update(false, start.Add(500*time.Millisecond), false))

	// Second episode starts clean: a quick still press is a tap again.
	start = start.Add(time.Second)
	assert.Equal(t, EventNone, tr.Update(true, start, false))
	assert.False(t, tr.Holding())
	assert.Equal(t, EventTap, tr.Update(false, start.Add(100*time.Millisecond), false))
}

func TestTrackerHoldingRequiresPress(t *testing.T) {
	tr := NewTracker(tapMax)
	start := time.Now()

	tr.Update(true, start, false)
	assert.False(t, tr.Holding(), "press not yet past the threshold")
	tr.Update(true, start.Add(400*time.Millisecond), false)
	assert.True(t, tr.Holding())
	tr.Update(false, start.Add(500*time.Millisecond), false)
	assert.False(t, tr.Holding(), "released")
}
