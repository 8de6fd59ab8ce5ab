package dff

import (
	"fmt"
	"iter"
	"log"

	"github.com/seqlogic/dffsim/logic"
)

// Signal names, matching the RTL port list.
const (
	SigClk    = "clk"
	SigResetb = "resetb"
	SigDinA   = "dinA"
	SigDinB   = "dinB"
	SigDoutA  = "doutA"
	SigDoutB  = "doutB"
)

// Pins is a snapshot of the register's input pins.
type Pins struct {
	Clk    logic.Level // Clock; the rising edge samples dinA.
	Resetb logic.Level // Asynchronous reset, active low.
	DinA   logic.Level // Data captured into both outputs.

	// DinB is declared in the port list but never read: the RTL drives
	// doutB from dinA, not dinB. Likely a defect in the original design,
	// preserved here rather than silently fixed.
	DinB logic.Level
}

// UndrivenPins returns a pin snapshot with every input undriven.
func UndrivenPins() Pins {
	return Pins{
		Clk:    logic.Undefined,
		Resetb: logic.Undefined,
		DinA:   logic.Undefined,
		DinB:   logic.Undefined,
	}
}

// Register is the simulation model of the two-bit register.
type Register struct {
	Verbose bool // Set to enable verbose logging.

	Edges int // Count of triggering events seen since creation.

	pins  Pins
	doutA logic.Level
	doutB logic.Level
}

// NewRegister creates a register with all pins undriven and both outputs
// undefined. A harness should assert reset once at start to establish a
// known state.
func NewRegister() (reg *Register) {
	reg = &Register{
		pins:  UndrivenPins(),
		doutA: logic.Undefined,
		doutB: logic.Undefined,
	}

	return
}

// Pins returns the most recently applied pin snapshot.
func (reg *Register) Pins() Pins {
	return reg.pins
}

// DoutA returns the registered copy of dinA, or Lo under reset.
func (reg *Register) DoutA() logic.Level {
	return reg.doutA
}

// DoutB returns the second registered copy of dinA (not dinB), or Lo
// under reset.
func (reg *Register) DoutB() logic.Level {
	return reg.doutB
}

// Apply delivers a new pin snapshot and runs the update function exactly
// once if the snapshot carries a triggering event: a rising edge on clk,
// or resetb entering its asserted (low) state. Steady pins and falling
// clock edges leave the outputs untouched. The current output levels are
// returned.
func (reg *Register) Apply(pins Pins) (doutA, doutB logic.Level) {
	prior := reg.pins
	reg.pins = pins

	clkRising := pins.Clk == logic.Hi && prior.Clk != logic.Hi
	resetAsserted := pins.Resetb == logic.Lo && prior.Resetb != logic.Lo

	if clkRising || resetAsserted {
		reg.Edges++
		reg.update()
		if reg.Verbose {
			log.Printf("dff: clk:%v resetb:%v dinA:%v -> doutA:%v doutB:%v",
				pins.Clk, pins.Resetb, pins.DinA, reg.doutA, reg.doutB)
		}
	}

	doutA = reg.doutA
	doutB = reg.doutB
	return
}

// update is the transition function. The reset branch is checked first,
// so a clock edge that coincides with resetb held low still yields the
// reset outcome.
func (reg *Register) update() {
	if reg.pins.Resetb == logic.Lo {
		reg.doutA = logic.Lo
		reg.doutB = logic.Lo
		return
	}

	reg.doutA = reg.pins.DinA
	reg.doutB = reg.pins.DinA // doutB mirrors dinA; see Pins.DinB
}

// SetDinA drives the data input without touching clock or reset.
func (reg *Register) SetDinA(level logic.Level) {
	pins := reg.pins
	pins.DinA = level
	reg.Apply(pins)
}

// SetDinB drives the unused data input without touching clock or reset.
func (reg *Register) SetDinB(level logic.Level) {
	pins := reg.pins
	pins.DinB = level
	reg.Apply(pins)
}

// ClockTick produces one full clock period: clk low, then high. The
// rising edge samples dinA unless reset is asserted.
func (reg *Register) ClockTick() (doutA, doutB logic.Level) {
	pins := reg.pins
	pins.Clk = logic.Lo
	reg.Apply(pins)
	pins.Clk = logic.Hi
	return reg.Apply(pins)
}

// AssertReset drives resetb low. Takes effect immediately; no clock edge
// is required.
func (reg *Register) AssertReset() (doutA, doutB logic.Level) {
	pins := reg.pins
	pins.Resetb = logic.Lo
	return reg.Apply(pins)
}

// ReleaseReset drives resetb high. The outputs keep their reset value
// until the next rising clock edge.
func (reg *Register) ReleaseReset() {
	pins := reg.pins
	pins.Resetb = logic.Hi
	reg.Apply(pins)
}

// Vars iterates the register's signals and their current levels, inputs
// first, in port-list order.
func (reg *Register) Vars() iter.Seq2[string, logic.Level] {
	return func(yield func(string, logic.Level) bool) {
		vars := [](struct {
			name  string
			level logic.Level
		}){
			{SigClk, reg.pins.Clk},
			{SigResetb, reg.pins.Resetb},
			{SigDinA, reg.pins.DinA},
			{SigDinB, reg.pins.DinB},
			{SigDoutA, reg.doutA},
			{SigDoutB, reg.doutB},
		}
		for _, v := range vars {
			if !yield(v.name, v.level) {
				return
			}
		}
	}
}

// String returns the current register state as a string.
func (reg *Register) String() (text string) {
	for name, level := range reg.Vars() {
		text += fmt.Sprintf("% 7s: %v\n", name, level)
	}

	return
}
