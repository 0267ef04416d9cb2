package ctl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWord_Decode(t *testing.T) {
	assert := assert.New(t)

	word := MakeDecode(0x82, 0x55, BUS_INC, 2, true, 0x3ff)
	assert.Equal(MODE_DECODE, word.Mode())
	assert.Equal(uint8(0x82), word.FlagMask())
	assert.Equal(uint8(0x55), word.AluOp())
	assert.False(word.AluNotNeeded())
	assert.Equal(BUS_INC, word.BusSel())
	assert.Equal(uint8(2), word.DataOut())
	assert.True(word.WriteEnable())
	assert.Equal(uint16(0x3ff), word.RegBits())
	assert.True(word.Defined())
}

func TestWord_Jump(t *testing.T) {
	assert := assert.New(t)

	word := MakeJump(0x1a5, 0x12, BUS_HOLD, 0, false, 0)
	assert.Equal(MODE_JUMP, word.Mode())
	assert.Equal(uint8(0xa5), word.AddrLow())
	assert.Equal(uint8(0x12), word.AluOp())
	assert.False(word.AluNotNeeded())
	assert.True(word.Defined())
}

func TestWord_Save(t *testing.T) {
	assert := assert.New(t)

	word := MakeSave(0x1c0, 0x15, BUS_ZPX, 0, false, 0)
	assert.Equal(MODE_SAVE, word.Mode())
	assert.Equal(uint8(0xc0), word.AddrLow())
	assert.Equal(uint8(0x15), word.Finisher())
	assert.True(word.AluNotNeeded())
	assert.True(word.Defined())
}

func TestWord_Finish(t *testing.T) {
	assert := assert.New(t)

	word := MakeFinish(0x7f, BUS_STK, 1, false, 0x7ff)
	assert.Equal(MODE_FINISH, word.Mode())
	assert.Equal(uint8(0x7f), word.AluOp())
	assert.Equal(uint8(1), word.DataOut())
	assert.Equal(uint16(0x7ff), word.RegBits())
	assert.True(word.Defined())
}

func TestWord_Width(t *testing.T) {
	assert := assert.New(t)

	words := []Word{
		MakeDecode(0xff, 0x7f, 15, 3, true, 0xffff),
		MakeJump(0xffff, 0xff, 15, 3, true, 0xffff),
		MakeSave(0xffff, 0xff, 15, 3, true, 0xffff),
		MakeFinish(0xff, 15, 3, true, 0xffff),
	}
	for _, word := range words {
		assert.Zero(word &^ WORD_MASK)
	}
}

func TestWord_Undefined(t *testing.T) {
	assert := assert.New(t)

	// The save variant is the only mode that may claim the ALU field
	// for a finisher pointer.
	word := makeWord(MODE_DECODE, 0, 0, true, BUS_INC, 0, false, 0)
	assert.False(word.Defined())

	word = makeWord(MODE_SAVE, 0, 0, false, BUS_INC, 0, false, 0)
	assert.False(word.Defined())
}
