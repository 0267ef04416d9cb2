package ctl

// Word is a single 36-bit microcode control word.
//
// Layout (bit 35 is the MSB):
//
//	[35:34] next-address mode
//	[33:26] flag-update selector (decode cycles) / jump target low byte
//	[25:19] ALU fields: 2 carry-in, 2 shift, 3 adder/logic.
//	        [23:19] double as the finisher pointer when the ALU is unneeded.
//	[18]    ALU not needed this cycle
//	[17:14] address-bus operation selector
//	[13:12] data-output source selector
//	[11]    write enable (visible one cycle after the word is read)
//	[10:0]  register-file / ALU-destination bits, forwarded unchanged
type Word uint64

const (
	WORD_BITS = 36                     // Width of a control word.
	WORD_MASK = Word(1<<WORD_BITS - 1) // All valid word bits.
)

// Mode selects how the next microcode index is formed.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_DECODE = Mode(0) // decode
	MODE_JUMP   = Mode(1) // jump
	MODE_FINISH = Mode(2) // finish
	MODE_SAVE   = Mode(3) // save
)

const (
	shiftMode    = 34
	shiftAddr    = 26
	shiftAlu     = 19
	shiftNoAlu   = 18
	shiftBus     = 14
	shiftDataOut = 12
	shiftWrite   = 11
	shiftReg     = 0
)

// makeWord assembles a control word from raw field values.
func makeWord(mode Mode, addr uint8, alu uint8, noAlu bool, bus BusSel, dout uint8, we bool, reg uint16) (word Word) {
	word = (Word(mode&3) << shiftMode) |
		(Word(addr) << shiftAddr) |
		(Word(alu&0x7f) << shiftAlu) |
		(Word(bus&0xf) << shiftBus) |
		(Word(dout&3) << shiftDataOut) |
		(Word(reg&0x7ff) << shiftReg)
	if noAlu {
		word |= 1 << shiftNoAlu
	}
	if we {
		word |= 1 << shiftWrite
	}
	return
}

// MakeDecode creates a sync-cycle word. The next index is formed from the
// opcode byte; 'flags' is the flag-update selector for the instruction
// that just completed.
func MakeDecode(flags uint8, alu uint8, bus BusSel, dout uint8, we bool, reg uint16) Word {
	return makeWord(MODE_DECODE, flags, alu, false, bus, dout, we, reg)
}

// MakeJump creates an in-region jump word. Only the low byte of the target
// is stored; the next index is forced into the Sequencer Region.
func MakeJump(target uint16, alu uint8, bus BusSel, dout uint8, we bool, reg uint16) Word {
	return makeWord(MODE_JUMP, uint8(target), alu, false, bus, dout, we, reg)
}

// MakeSave creates the jump variant that also records a finisher pointer.
// The ALU field holds the pointer, so the ALU is unavailable this cycle.
func MakeSave(target uint16, finisher uint8, bus BusSel, dout uint8, we bool, reg uint16) Word {
	return makeWord(MODE_SAVE, uint8(target), finisher&0x1f, true, bus, dout, we, reg)
}

// MakeFinish creates a word whose successor is the finisher slot selected
// by the previously saved pointer.
func MakeFinish(alu uint8, bus BusSel, dout uint8, we bool, reg uint16) Word {
	return makeWord(MODE_FINISH, 0, alu, false, bus, dout, we, reg)
}

// Mode returns the next-address mode field.
func (word Word) Mode() Mode {
	return Mode((word >> shiftMode) & 3)
}

// FlagMask returns the flag-update selector. Meaningful only on decode
// cycles; otherwise the same bits are the jump target low byte.
func (word Word) FlagMask() uint8 {
	return uint8(word >> shiftAddr)
}

// AddrLow returns the low byte of the in-region jump target.
func (word Word) AddrLow() uint8 {
	return uint8(word >> shiftAddr)
}

// AluOp returns the 7-bit compound ALU operation code. Meaningful only
// when AluNotNeeded is false.
func (word Word) AluOp() uint8 {
	return uint8((word >> shiftAlu) & 0x7f)
}

// Finisher returns the 5-bit finisher pointer overlaid on the ALU field.
// Meaningful only when AluNotNeeded is true.
func (word Word) Finisher() uint8 {
	return uint8((word >> shiftAlu) & 0x1f)
}

// AluNotNeeded reports whether the ALU field holds a finisher pointer
// instead of an operation code.
func (word Word) AluNotNeeded() bool {
	return (word>>shiftNoAlu)&1 != 0
}

// BusSel returns the address-bus operation selector.
func (word Word) BusSel() BusSel {
	return BusSel((word >> shiftBus) & 0xf)
}

// DataOut returns the data-output source selector.
func (word Word) DataOut() uint8 {
	return uint8((word >> shiftDataOut) & 3)
}

// WriteEnable returns the write-enable bit as stored. The externally
// visible value is delayed by one cycle; see Sequencer.
func (word Word) WriteEnable() bool {
	return (word>>shiftWrite)&1 != 0
}

// RegBits returns the forwarded register-file / ALU-destination bits.
func (word Word) RegBits() uint16 {
	return uint16(word & 0x7ff)
}

// Defined reports whether the (mode, AluNotNeeded) combination is one of
// the four cases the sequencer implements. The save jump variant is the
// only one that may carry a finisher pointer in the ALU field.
func (word Word) Defined() bool {
	return (word.Mode() == MODE_SAVE) == word.AluNotNeeded()
}
