// Package i2cinit brings the sensor's I2C bus online. It diagnoses the
// wiring, recovers a bus whose peer is holding a line low, and walks a
// descending ladder of acquisition strategies until one yields a usable
// bus handle — or halts the device when none does.
//
// The package touches hardware only through the Line interface and the
// injected acquisition functions, so the whole state machine runs under
// plain `go test` with scripted fakes.
package i2cinit

// Pull selects the input pull resistor for a Line.
type Pull uint8

const (
	PullNone Pull = iota
	PullUp
)

// Line is direct control over one bus wire. Implementations wrap a GPIO
// pin; Release must return the wire to an unconfigured/hi-Z state so a
// bus peripheral can take it over afterwards.
type Line interface {
	Input(pull Pull)
	Output()
	Set(high bool)
	Get() bool
	Release()
}
