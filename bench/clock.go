package bench

import (
	"github.com/seqlogic/dffsim/logic"
)

// Clock generates a square wave one half-period at a time. The first
// half-period is high, so each full period delivers its rising edge
// first, the way a testbench clock generator starts.
type Clock struct {
	Level  logic.Level // Level of the most recent half-period.
	Halves int         // Count of half-periods generated.
}

// Next toggles the clock and returns the new level.
func (ck *Clock) Next() logic.Level {
	if ck.Level == logic.Hi {
		ck.Level = logic.Lo
	} else {
		ck.Level = logic.Hi
	}
	ck.Halves++

	return ck.Level
}
