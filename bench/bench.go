// Package bench provides the testbench harness for the dffsim register:
// a clock generator, edge monitors, stimulus from vector files or
// Starlark scripts, and optional VCD waveform tracing.
package bench

import (
	"iter"
	"log"

	"github.com/seqlogic/dffsim/dff"
	"github.com/seqlogic/dffsim/internal"
	"github.com/seqlogic/dffsim/logic"
	"github.com/seqlogic/dffsim/wave"
)

// Bench drives a single register under test. Inputs are driven by name,
// one change per timestep, so a stimulus sequence is exactly
// reproducible.
type Bench struct {
	Verbose bool // Set to enable verbose logging.

	Reg   *dff.Register // The register under test.
	Clock Clock         // Square-wave generator for the clk pin.

	tracer   *wave.Tracer
	monitors []*Monitor
	steps    int
}

// NewBench creates a bench around a fresh register.
func NewBench() (b *Bench) {
	b = &Bench{
		Reg: dff.NewRegister(),
	}

	return
}

// Steps returns the number of timesteps elapsed since creation.
func (b *Bench) Steps() int {
	return b.steps
}

// Vars iterates every traced signal: the register's pins and outputs,
// followed by the pulse signal of each attached monitor.
func (b *Bench) Vars() iter.Seq2[string, logic.Level] {
	seqs := []iter.Seq2[string, logic.Level]{b.Reg.Vars()}
	for _, mon := range b.monitors {
		seqs = append(seqs, mon.Vars())
	}

	return internal.IterSeq2Concat(seqs...)
}

// Trace attaches a waveform tracer. Every signal in Vars is registered;
// monitors must be attached first.
func (b *Bench) Trace(tracer *wave.Tracer) (err error) {
	for name := range b.Vars() {
		err = tracer.Register(name)
		if err != nil {
			return
		}
	}

	b.tracer = tracer

	return
}

// Watch attaches an edge monitor to a named signal.
func (b *Bench) Watch(name string) (mon *Monitor, err error) {
	_, err = b.Get(name)
	if err != nil {
		return
	}

	mon = &Monitor{Signal: name}
	level, _ := b.Get(name)
	mon.Observe(level) // baseline, not counted
	b.monitors = append(b.monitors, mon)

	return
}

// Get returns the current level of a named signal, input or output.
func (b *Bench) Get(name string) (level logic.Level, err error) {
	pins := b.Reg.Pins()

	switch name {
	case dff.SigClk:
		level = pins.Clk
	case dff.SigResetb:
		level = pins.Resetb
	case dff.SigDinA:
		level = pins.DinA
	case dff.SigDinB:
		level = pins.DinB
	case dff.SigDoutA:
		level = b.Reg.DoutA()
	case dff.SigDoutB:
		level = b.Reg.DoutB()
	default:
		err = ErrSignalUnknown
	}

	return
}

// Set drives a named input signal and advances one timestep. Outputs
// cannot be driven.
func (b *Bench) Set(name string, level logic.Level) (err error) {
	pins := b.Reg.Pins()

	switch name {
	case dff.SigClk:
		pins.Clk = level
	case dff.SigResetb:
		pins.Resetb = level
	case dff.SigDinA:
		pins.DinA = level
	case dff.SigDinB:
		pins.DinB = level
	case dff.SigDoutA, dff.SigDoutB:
		err = ErrSignalDriven
		return
	default:
		err = ErrSignalUnknown
		return
	}

	if b.Verbose {
		log.Printf("bench: #%d %s <= %v", b.steps, name, level)
	}

	b.Reg.Apply(pins)

	return b.step()
}

// step ends a timestep: monitors observe their signals, and the tracer,
// if any, dumps the deltas.
func (b *Bench) step() (err error) {
	b.steps++

	for _, mon := range b.monitors {
		level, _ := b.Get(mon.Signal)
		edge := mon.Observe(level)
		if edge != logic.None && b.Verbose {
			log.Printf("bench: #%d %s %v edge", b.steps, mon.Signal, edge)
		}
	}

	if b.tracer == nil {
		return
	}

	for name, level := range b.Vars() {
		err = b.tracer.LogValue(name, level)
		if err != nil {
			return
		}
	}

	return b.tracer.AdvanceTimestep()
}

// Tick produces one full clock period, low then high, on the clk pin.
// The register samples dinA at the rising edge unless reset is asserted.
func (b *Bench) Tick() (err error) {
	for range 2 {
		err = b.Set(dff.SigClk, b.Clock.Next())
		if err != nil {
			return
		}
	}

	return
}

// TickN produces n full clock periods.
func (b *Bench) TickN(n int) (err error) {
	for range n {
		err = b.Tick()
		if err != nil {
			return
		}
	}

	return
}

// Reset runs the canonical reset sequence: assert resetb, run one clock
// period with reset held, then release. Both outputs are low afterwards.
func (b *Bench) Reset() (err error) {
	err = b.Set(dff.SigResetb, logic.Lo)
	if err != nil {
		return
	}

	err = b.Tick()
	if err != nil {
		return
	}

	return b.Set(dff.SigResetb, logic.Hi)
}

// Outputs returns the current output levels.
func (b *Bench) Outputs() (doutA, doutB logic.Level) {
	doutA = b.Reg.DoutA()
	doutB = b.Reg.DoutB()
	return
}
