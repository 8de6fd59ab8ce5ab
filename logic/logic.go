// Package logic provides the signal-level value types shared by the
// register model and the testbench: four-state levels and edge kinds.
package logic

// Level is the value of a single-bit signal.
//
// Undefined models the state of a register before the first reset or
// clock edge; HiZ exists for completeness of external drivers.
type Level uint8

const (
	Lo Level = iota
	Hi
	HiZ
	Undefined
)

// FromBool converts a bool to a driven level.
func FromBool(value bool) Level {
	if value {
		return Hi
	}
	return Lo
}

// Bool reports the level as a bool; anything other than Hi is false.
func (l Level) Bool() bool {
	return l == Hi
}

func (l Level) String() string {
	switch l {
	case Lo:
		return "0"
	case Hi:
		return "1"
	case HiZ:
		return "z"
	}
	return "x"
}

// Vcd returns the VCD value character for the level.
func (l Level) Vcd() byte {
	return l.String()[0]
}

// Edge is the kind of transition between two successive levels of a signal.
type Edge uint8

const (
	None Edge = iota
	Rising
	Falling
)

func (e Edge) String() string {
	switch e {
	case Rising:
		return "rising"
	case Falling:
		return "falling"
	}
	return "none"
}

// EdgeBetween classifies the transition from one level to another.
// Only a full 0 to 1 swing is a rising edge; transitions through or
// from HiZ/Undefined are not edges.
func EdgeBetween(from, to Level) Edge {
	switch {
	case from == Lo && to == Hi:
		return Rising
	case from == Hi && to == Lo:
		return Falling
	}
	return None
}
