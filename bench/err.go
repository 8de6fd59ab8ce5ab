package bench

import (
	"errors"

	"github.com/seqlogic/dffsim/logic"
	"github.com/seqlogic/dffsim/translate"
)

var f = translate.From

var (
	// Signal access errors
	ErrSignalUnknown = errors.New(f("signal unknown"))
	ErrSignalDriven  = errors.New(f("signal is an output, not drivable"))
	ErrLevelInvalid  = errors.New(f("level invalid"))

	// Vector file errors
	ErrVectorFields = errors.New(f("expected 'resetb dinA dinB' fields"))
)

// ErrVectorSyntax indicates a malformed line in a stimulus vector file.
type ErrVectorSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrVectorSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrVectorSyntax) Unwrap() error {
	return err.Err
}

// ErrExpect indicates a failed expect() in a scripted testbench.
type ErrExpect struct {
	Signal string
	Want   logic.Level
	Got    logic.Level
}

func (err ErrExpect) Error() string {
	return f("expect %v == %v, got %v", err.Signal, err.Want, err.Got)
}
