package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdgeBetween(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		from Level
		to   Level
		edge Edge
	}){
		{"rising", Lo, Hi, Rising},
		{"falling", Hi, Lo, Falling},
		{"steady_lo", Lo, Lo, None},
		{"steady_hi", Hi, Hi, None},
		{"from_undefined", Undefined, Hi, None},
		{"from_highz", HiZ, Lo, None},
		{"to_highz", Hi, HiZ, None},
	}

	for _, entry := range table {
		assert.Equal(entry.edge, EdgeBetween(entry.from, entry.to), entry.name)
	}
}

func TestLevelBool(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Hi, FromBool(true))
	assert.Equal(Lo, FromBool(false))
	assert.True(Hi.Bool())
	assert.False(Lo.Bool())
	assert.False(HiZ.Bool())
	assert.False(Undefined.Bool())
}

func TestLevelString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("0", Lo.String())
	assert.Equal("1", Hi.String())
	assert.Equal("z", HiZ.String())
	assert.Equal("x", Undefined.String())
	assert.Equal(byte('x'), Undefined.Vcd())
}
