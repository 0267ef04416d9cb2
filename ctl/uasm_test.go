package ctl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func parseSource(t *testing.T, asm *Assembler, lines ...string) (image []uint64, err error) {
	t.Helper()
	image, err = asm.Parse(strings.NewReader(strings.Join(lines, "\n")))
	return
}

func TestAssembler_Basic(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	image, err := parseSource(t, asm,
		"; basic microprogram",
		".equ NZ 0x82",
		".org $(RESET_INDEX)",
		"reset:  decode bus=pc",
		".org 0xea",
		"        save next=cont fin=fin_nz bus=zpx",
		".org 0x120",
		"cont:   finish alu=0x12 bus=inc we",
		".org $(FINISH_BASE + 5)",
		"fin_nz: decode flags=$(NZ) bus=inc",
	)
	assert.NoError(err)
	assert.Len(image, STORE_SIZE)

	assert.Equal(uint64(MakeDecode(0, 0, BUS_PC, 0, false, 0)), image[RESET_INDEX])
	assert.Equal(uint64(MakeSave(0x120, 5, BUS_ZPX, 0, false, 0)), image[0xea])
	assert.Equal(uint64(MakeFinish(0x12, BUS_INC, 0, true, 0)), image[0x120])
	assert.Equal(uint64(MakeDecode(0x82, 0, BUS_INC, 0, false, 0)), image[FINISH_BASE|5])

	assert.Equal(0x120, asm.Label["cont"])

	// The assembler can only emit the four defined (mode, aluNotNeeded)
	// combinations, so every Decode Region entry is well-formed.
	for opcode := range DECODE_SIZE {
		assert.True(Word(image[opcode]).Defined(), "opcode %02x", opcode)
	}
}

func TestAssembler_Fill(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	image, err := parseSource(t, asm,
		".fill panic",
		".org 0x140",
		"panic:  jump next=panic bus=hold",
	)
	assert.NoError(err)

	// Every unassigned slot routes to the illegal-instruction path.
	fill := uint64(MakeJump(0x140, 0, BUS_HOLD, 0, false, 0))
	assert.Equal(fill, image[0x00])
	assert.Equal(fill, image[0xff])
	assert.Equal(fill, image[0x1ff])
	assert.Equal(uint64(MakeJump(0x140, 0, BUS_HOLD, 0, false, 0)), image[0x140])
}

func TestAssembler_Fill_Default(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	image, err := parseSource(t, asm,
		"decode bus=inc",
	)
	assert.NoError(err)

	// Without .fill, unassigned slots jump to the reset entry.
	assert.Equal(uint64(MakeJump(RESET_INDEX, 0, BUS_HOLD, 0, false, 0)), image[0x55])
}

func TestAssembler_Predefine(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("START", "0x140")
	image, err := parseSource(t, asm,
		"jump next=START bus=$(BUS_HOLD)",
	)
	assert.NoError(err)
	assert.Equal(uint64(MakeJump(0x140, 0, BUS_HOLD, 0, false, 0)), image[0])
}

func TestAssembler_Reparse(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	lines := []string{
		".equ NZ 0x82",
		"top: decode flags=NZ bus=inc",
	}

	first, err := parseSource(t, asm, lines...)
	assert.NoError(err)

	// Parse resets all equate, label and slot state.
	second, err := parseSource(t, asm, lines...)
	assert.NoError(err)
	assert.Equal(first, second)
}

func TestAssembler_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		lines []string
		want  error
	}){
		{"equ_syntax", []string{".equ ONLY"}, ErrEquateSyntax},
		{"equ_duplicate", []string{".equ A 1", ".equ A 2"}, ErrEquateDuplicate},
		{"org_syntax", []string{".org"}, ErrOrgSyntax},
		{"org_range", []string{".org 0x200"}, ErrIndexRange},
		{"fill_syntax", []string{".fill"}, ErrFillSyntax},
		{"fill_missing", []string{".fill nowhere"}, ErrLabelMissing("nowhere")},
		{"label_duplicate", []string{"a: decode bus=inc", "a: decode bus=inc"}, ErrLabelDuplicate},
		{"mode_invalid", []string{"warp next=0x100"}, ErrModeInvalid},
		{"field_invalid", []string{"jump next=0x100 flags=1"}, ErrFieldInvalid},
		{"field_duplicate", []string{"decode bus=inc bus=pc"}, ErrFieldDuplicate},
		{"field_unknown", []string{"decode tone=1"}, ErrFieldInvalid},
		{"jump_without_next", []string{"jump bus=inc"}, ErrFieldInvalid},
		{"save_without_fin", []string{"save next=0x100"}, ErrFieldInvalid},
		{"save_with_alu", []string{"save next=0x100 fin=1 alu=2"}, ErrFieldInvalid},
		{"target_range", []string{"jump next=0x50"}, ErrTargetRange},
		{"target_label_range", []string{".org 0x50", "lo: decode bus=inc", ".org 0x100", "jump next=lo"}, ErrTargetRange},
		{"finisher_range", []string{"save next=0x100 fin=0x120"}, ErrFinisherRange},
		{"label_missing", []string{"jump next=nowhere"}, ErrLabelMissing("nowhere")},
		{"slot_collision", []string{".org 5", "decode bus=inc", ".org 5", "decode bus=inc"}, ErrSlotCollision},
	}

	for _, entry := range table {
		asm := &Assembler{}
		_, err := parseSource(t, asm, entry.lines...)
		assert.ErrorIs(err, entry.want, entry.name)
	}
}

func TestAssembler_Expression(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	image, err := parseSource(t, asm,
		".equ BASE 0x40",
		".org $(BASE + 2)",
		"decode flags=$(BASE | 0x03) bus=inc",
	)
	assert.NoError(err)
	assert.Equal(uint64(MakeDecode(0x43, 0, BUS_INC, 0, false, 0)), image[0x42])

	_, err = parseSource(t, asm,
		"decode flags=$(NOPE +) bus=inc",
	)
	assert.Error(err)
}
