package bench

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/seqlogic/dffsim/logic"
)

// levelOf converts a Starlark value to a level: bools, the ints 0 and 1,
// or the strings "0", "1", "x", "z".
func levelOf(value starlark.Value) (level logic.Level, err error) {
	switch value := value.(type) {
	case starlark.Bool:
		level = logic.FromBool(bool(value))
	case starlark.Int:
		v64, ok := value.Int64()
		switch {
		case ok && v64 == 0:
			level = logic.Lo
		case ok && v64 == 1:
			level = logic.Hi
		default:
			err = ErrLevelInvalid
		}
	case starlark.String:
		level, err = parseLevel(string(value))
	default:
		err = ErrLevelInvalid
	}

	return
}

// levelValue converts a level to a Starlark value: 0 or 1 for driven
// levels, "x" or "z" otherwise.
func levelValue(level logic.Level) starlark.Value {
	switch level {
	case logic.Lo:
		return starlark.MakeInt(0)
	case logic.Hi:
		return starlark.MakeInt(1)
	}

	return starlark.String(level.String())
}

// RunScript executes a Starlark testbench against the bench. The script
// sees the builtins set(sig, v), get(sig), tick(n=1), reset() and
// expect(sig, v), plus the constants LO and HI. A failed expect aborts
// the script with an ErrExpect.
func (b *Bench) RunScript(name string, src any) (err error) {
	thread := starlark.Thread{Name: name}
	opts := syntax.FileOptions{}

	pred := starlark.StringDict{
		"LO":     starlark.MakeInt(0),
		"HI":     starlark.MakeInt(1),
		"set":    starlark.NewBuiltin("set", b.stSet),
		"get":    starlark.NewBuiltin("get", b.stGet),
		"tick":   starlark.NewBuiltin("tick", b.stTick),
		"reset":  starlark.NewBuiltin("reset", b.stReset),
		"expect": starlark.NewBuiltin("expect", b.stExpect),
	}

	_, err = starlark.ExecFileOptions(&opts, &thread, name, src, pred)

	return
}

func (b *Bench) stSet(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	var value starlark.Value
	err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 2, &name, &value)
	if err != nil {
		return nil, err
	}

	level, err := levelOf(value)
	if err != nil {
		return nil, err
	}

	return starlark.None, b.Set(name, level)
}

func (b *Bench) stGet(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &name)
	if err != nil {
		return nil, err
	}

	level, err := b.Get(name)
	if err != nil {
		return nil, err
	}

	return levelValue(level), nil
}

func (b *Bench) stTick(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	n := 1
	err := starlark.UnpackArgs(fn.Name(), args, kwargs, "n?", &n)
	if err != nil {
		return nil, err
	}

	return starlark.None, b.TickN(n)
}

func (b *Bench) stReset(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0)
	if err != nil {
		return nil, err
	}

	return starlark.None, b.Reset()
}

func (b *Bench) stExpect(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	var value starlark.Value
	err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 2, &name, &value)
	if err != nil {
		return nil, err
	}

	want, err := levelOf(value)
	if err != nil {
		return nil, err
	}

	got, err := b.Get(name)
	if err != nil {
		return nil, err
	}

	if got != want {
		return nil, ErrExpect{Signal: name, Want: want, Got: got}
	}

	return starlark.None, nil
}
