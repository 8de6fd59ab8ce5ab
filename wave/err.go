package wave

import (
	"errors"

	"github.com/seqlogic/dffsim/translate"
)

var f = translate.From

var (
	// Tracer errors
	ErrSignalDuplicate    = errors.New(f("signal already registered"))
	ErrSignalLimit        = errors.New(f("too many signals"))
	ErrSignalUnregistered = errors.New(f("signal not registered"))
	ErrHeaderWritten      = errors.New(f("header already written"))
)
