package bench

import (
	"iter"

	"github.com/seqlogic/dffsim/logic"
)

// Monitor counts the rising and falling edges of one watched signal.
// It also exposes a pulse variable that goes high for the timestep
// following an observed edge, so edge activity shows up in a waveform.
type Monitor struct {
	Signal  string // Name of the watched signal.
	Rising  int    // Count of rising edges observed.
	Falling int    // Count of falling edges observed.

	last  logic.Level
	pulse logic.Level
	first bool
}

// Observe feeds the monitor the signal's level at the end of a timestep
// and returns the edge seen, if any.
func (mon *Monitor) Observe(level logic.Level) (edge logic.Edge) {
	if !mon.first {
		mon.first = true
		mon.last = level
		mon.pulse = logic.Lo
		return
	}

	edge = logic.EdgeBetween(mon.last, level)
	mon.last = level

	switch edge {
	case logic.Rising:
		mon.Rising++
		mon.pulse = logic.Hi
	case logic.Falling:
		mon.Falling++
		mon.pulse = logic.Hi
	default:
		mon.pulse = logic.Lo
	}

	return
}

// Edges returns the total count of edges observed.
func (mon *Monitor) Edges() int {
	return mon.Rising + mon.Falling
}

// Vars iterates the monitor's pulse variable.
func (mon *Monitor) Vars() iter.Seq2[string, logic.Level] {
	return func(yield func(string, logic.Level) bool) {
		yield(mon.Signal+"_edge", mon.pulse)
	}
}
