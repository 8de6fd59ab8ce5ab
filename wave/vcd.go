// Package wave records signal activity as a Value Change Dump (VCD)
// waveform, viewable in any VCD-capable waveform viewer.
//
// A Tracer collects the instantaneous value of every registered signal
// and dumps only the deltas at each timestep.
package wave

import (
	"fmt"
	"io"

	"github.com/seqlogic/dffsim/logic"
)

// VCD identifier codes are single printable characters.
const (
	idFirst = byte('!')
	idLast  = byte('~')
)

// Tracer writes a VCD waveform of single-bit signals.
type Tracer struct {
	Out       io.Writer // Destination for the VCD text.
	Module    string    // VCD scope name; "dff" if empty.
	Timescale string    // VCD timescale; "1us" if empty.

	names   []string
	ids     map[string]byte
	last    map[string]logic.Level
	pending map[string]logic.Level
	time    uint64
	started bool
}

// NewTracer creates a tracer that writes VCD text to out.
func NewTracer(out io.Writer) (tr *Tracer) {
	tr = &Tracer{
		Out:     out,
		ids:     map[string]byte{},
		last:    map[string]logic.Level{},
		pending: map[string]logic.Level{},
	}

	return
}

// Register adds a single-bit signal to the trace. All signals must be
// registered before the first AdvanceTimestep.
func (tr *Tracer) Register(name string) (err error) {
	if tr.started {
		err = ErrHeaderWritten
		return
	}
	if _, ok := tr.ids[name]; ok {
		err = ErrSignalDuplicate
		return
	}

	id := idFirst + byte(len(tr.names))
	if id > idLast {
		err = ErrSignalLimit
		return
	}

	tr.names = append(tr.names, name)
	tr.ids[name] = id
	tr.pending[name] = logic.Undefined

	return
}

// LogValue records the instantaneous level of a registered signal. The
// value is dumped at the next AdvanceTimestep, and only if it changed.
func (tr *Tracer) LogValue(name string, level logic.Level) (err error) {
	if _, ok := tr.ids[name]; !ok {
		err = ErrSignalUnregistered
		return
	}

	tr.pending[name] = level

	return
}

// AdvanceTimestep emits a timestamp and the values that changed since
// the previous step. The first call writes the VCD header and a full
// $dumpvars section.
func (tr *Tracer) AdvanceTimestep() (err error) {
	if !tr.started {
		err = tr.header()
		if err != nil {
			return
		}
		tr.started = true
	}

	var changes string
	for _, name := range tr.names {
		level := tr.pending[name]
		if level == tr.last[name] {
			continue
		}
		tr.last[name] = level
		changes += fmt.Sprintf("%c%c\n", level.Vcd(), tr.ids[name])
	}

	if len(changes) > 0 {
		_, err = fmt.Fprintf(tr.Out, "#%d\n%s", tr.time, changes)
		if err != nil {
			return
		}
	}
	tr.time++

	return
}

// header writes the declaration section and the initial $dumpvars.
func (tr *Tracer) header() (err error) {
	module := tr.Module
	if module == "" {
		module = "dff"
	}
	timescale := tr.Timescale
	if timescale == "" {
		timescale = "1us"
	}

	_, err = fmt.Fprintf(tr.Out, "$timescale %s $end\n$scope module %s $end\n", timescale, module)
	if err != nil {
		return
	}
	for _, name := range tr.names {
		_, err = fmt.Fprintf(tr.Out, "$var wire 1 %c %s $end\n", tr.ids[name], name)
		if err != nil {
			return
		}
	}
	_, err = fmt.Fprintf(tr.Out, "$upscope $end\n$enddefinitions $end\n$dumpvars\n")
	if err != nil {
		return
	}
	for _, name := range tr.names {
		level := tr.pending[name]
		tr.last[name] = level
		_, err = fmt.Fprintf(tr.Out, "%c%c\n", level.Vcd(), tr.ids[name])
		if err != nil {
			return
		}
	}
	_, err = fmt.Fprintf(tr.Out, "$end\n")

	return
}
