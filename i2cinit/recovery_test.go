package i2cinit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLine records every operation into a shared log so tests can assert
// cross-line ordering. Get returns the scripted levels in order, then
// repeats the last one.
type fakeLine struct {
	name string
	log  *[]string
	gets []bool
	geti int
}

func (l *fakeLine) record(op string) {
	*l.log = append(*l.log, l.name+"."+op)
}

func (l *fakeLine) Input(pull Pull) {
	if pull == PullUp {
		l.record("input(up)")
	} else {
		l.record("input(none)")
	}
}

func (l *fakeLine) Output() { l.record("output") }

func (l *fakeLine) Set(high bool) {
	if high {
		l.record("set(high)")
	} else {
		l.record("set(low)")
	}
}

func (l *fakeLine) Get() bool {
	l.record("get")
	if len(l.gets) == 0 {
		return false
	}
	v := l.gets[l.geti]
	if l.geti < len(l.gets)-1 {
		l.geti++
	}
	return v
}

func (l *fakeLine) Release() { l.record("release") }

func newFakePair(sdaGets []bool) (scl, sda *fakeLine, log *[]string) {
	log = &[]string{}
	scl = &fakeLine{name: "scl", log: log}
	sda = &fakeLine{name: "sda", log: log, gets: sdaGets}
	return scl, sda, log
}

func TestRecoverStopsPulsingWhenSDAReleases(t *testing.T) {
	// SDA reads high on the third pulse.
	scl, sda, log := newFakePair([]bool{false, false, true})

	Recover(scl, sda)

	assert.Equal(t, []string{
		"scl.output",
		"sda.input(up)",
		// three pulses, checking SDA after each
		"scl.set(low)", "scl.set(high)", "sda.get",
		"scl.set(low)", "scl.set(high)", "sda.get",
		"scl.set(low)", "scl.set(high)", "sda.get",
		// stop condition: SDA low -> high while SCL high
		"sda.output",
		"sda.set(low)",
		"scl.set(high)",
		"sda.set(high)",
		// both lines handed back
		"scl.release",
		"sda.release",
	}, *log)
}

func TestRecoverSendsAllNinePulsesWhenBusStaysStuck(t *testing.T) {
	scl, sda, log := newFakePair([]bool{false})

	Recover(scl, sda)

	pulses := 0
	for _, op := range *log {
		if op == "scl.set(low)" {
			pulses++
		}
	}
	assert.Equal(t, 9, pulses)

	// The stop condition still runs on a stuck bus.
	n := len(*log)
	require.GreaterOrEqual(t, n, 6)
	assert.Equal(t, []string{
		"sda.output",
		"sda.set(low)",
		"scl.set(high)",
		"sda.set(high)",
		"scl.release",
		"sda.release",
	}, (*log)[n-6:])
}
