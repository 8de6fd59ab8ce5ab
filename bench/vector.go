package bench

import (
	"bufio"
	"io"
	"strings"

	"github.com/seqlogic/dffsim/dff"
	"github.com/seqlogic/dffsim/logic"
)

// Input columns of a stimulus vector, in file order.
var vectorColumns = []string{dff.SigResetb, dff.SigDinA, dff.SigDinB}

// parseLevel parses a single vector field as a level.
func parseLevel(field string) (level logic.Level, err error) {
	switch field {
	case "0":
		level = logic.Lo
	case "1":
		level = logic.Hi
	case "z", "Z":
		level = logic.HiZ
	case "x", "X":
		level = logic.Undefined
	default:
		err = ErrLevelInvalid
	}

	return
}

// RunVectors applies a line-oriented stimulus file to the bench. Each
// non-comment line carries three fields, "resetb dinA dinB", which are
// driven in order and followed by one full clock period. Blank lines and
// lines starting with '#' are skipped.
func (b *Bench) RunVectors(in io.Reader) (err error) {
	scanner := bufio.NewScanner(in)

	var lineno int
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != len(vectorColumns) {
			return ErrVectorSyntax{LineNo: lineno, Line: line, Err: ErrVectorFields}
		}

		for n, field := range fields {
			var level logic.Level
			level, err = parseLevel(field)
			if err != nil {
				return ErrVectorSyntax{LineNo: lineno, Line: line, Err: err}
			}
			err = b.Set(vectorColumns[n], level)
			if err != nil {
				return ErrVectorSyntax{LineNo: lineno, Line: line, Err: err}
			}
		}

		err = b.Tick()
		if err != nil {
			return
		}
	}

	return scanner.Err()
}
