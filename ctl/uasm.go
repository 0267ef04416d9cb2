package ctl

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// modeMap maps mode names in microcode source.
var modeMap = map[string]Mode{
	"decode": MODE_DECODE,
	"jump":   MODE_JUMP,
	"save":   MODE_SAVE,
	"finish": MODE_FINISH,
}

// fixup is a deferred label reference in a next= or fin= field.
type fixup struct {
	LineNo int
	Line   string
	Index  int
	Field  string
	Label  string
}

// Assembler builds a 512-word microprogram image from line-based source.
//
// Each non-directive line assembles one control word: a mode name
// (decode, jump, save, finish) followed by field assignments (next=,
// fin=, flags=, alu=, bus=, dout=, reg=) and the bare 'we' flag.
// Directives: .equ NAME VALUE, .org INDEX, .fill TARGET. Lines may be
// prefixed with 'name:' labels, and $(...) expressions are evaluated at
// parse time.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	Label  map[string]int    // Map of labels to microprogram indexes.
	Equate map[string]string // Map of equates.

	predefine map[string]string

	word    [STORE_SIZE]Word
	present [STORE_SIZE]bool
	index   int
	fixups  []fixup
	fill    string // Target for unassigned slots; empty means RESET_INDEX.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value int, err error) {
	v64, err := strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}
	value = int(v64)
	return
}

// parenEval does parse-time $(...) evaluations.
func (asm *Assembler) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var v int
		v, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be labels
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt(v)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int(st_int64)
	return
}

// parseLine expands a source line into field words.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	re := regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%#v", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	// Equate substitution on values, not on field keys.
	for n, word := range words {
		key, value, hasValue := strings.Cut(word, "=")
		if !hasValue {
			equate, ok := asm.Equate[word]
			if ok {
				words[n] = equate
			}
			continue
		}
		equate, ok := asm.Equate[value]
		if ok {
			words[n] = key + "=" + equate
		}
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		if asm.Label == nil {
			asm.Label = make(map[string]int, 16)
		}
		asm.Label[label] = asm.index
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	return
}

// place assigns a word to the current slot and advances.
func (asm *Assembler) place(word Word) (err error) {
	if asm.index < 0 || asm.index >= STORE_SIZE {
		err = ErrIndexRange
		return
	}
	if asm.present[asm.index] {
		err = ErrSlotCollision
		return
	}
	asm.word[asm.index] = word
	asm.present[asm.index] = true
	asm.index += 1
	return
}

// parseWords evaluates the words of a single source line.
func (asm *Assembler) parseWords(words []string, lineno int, line string) (err error) {
	if len(words) == 0 {
		return
	}

	switch words[0] {
	case ".org":
		if len(words) != 2 {
			err = ErrOrgSyntax
			return
		}
		var index int
		index, err = asm.valueOf(words[1])
		if err != nil {
			return
		}
		if index < 0 || index >= STORE_SIZE {
			err = ErrIndexRange
			return
		}
		asm.index = index
		return
	case ".fill":
		if len(words) != 2 {
			err = ErrFillSyntax
			return
		}
		asm.fill = words[1]
		return
	}

	mode, ok := modeMap[words[0]]
	if !ok {
		err = ErrModeInvalid
		return
	}

	var flags, alu, fin, dout uint8
	var bus BusSel
	var reg uint16
	var we bool
	next := -1

	index := asm.index
	seen := map[string]bool{}

	for _, field := range words[1:] {
		key, value, hasValue := strings.Cut(field, "=")
		if seen[key] {
			err = ErrFieldDuplicate
			return
		}
		seen[key] = true

		if key == "we" {
			if hasValue {
				err = ErrFieldInvalid
				return
			}
			we = true
			continue
		}
		if !hasValue {
			err = ErrFieldInvalid
			return
		}

		var v int
		switch key {
		case "flags":
			if mode != MODE_DECODE {
				err = ErrFieldInvalid
				return
			}
			v, err = asm.valueOf(value)
			flags = uint8(v)
		case "alu":
			if mode == MODE_SAVE {
				err = ErrFieldInvalid
				return
			}
			v, err = asm.valueOf(value)
			alu = uint8(v & 0x7f)
		case "fin":
			if mode != MODE_SAVE {
				err = ErrFieldInvalid
				return
			}
			v, err = asm.valueOf(value)
			if err != nil {
				asm.fixups = append(asm.fixups, fixup{lineno, line, index, key, value})
				err = nil
				continue
			}
			fin, err = finisherOf(v)
		case "next":
			if mode != MODE_JUMP && mode != MODE_SAVE {
				err = ErrFieldInvalid
				return
			}
			v, err = asm.valueOf(value)
			if err != nil {
				asm.fixups = append(asm.fixups, fixup{lineno, line, index, key, value})
				err = nil
				next = SEQ_BASE
				continue
			}
			if v < SEQ_BASE || v >= STORE_SIZE {
				err = ErrTargetRange
				return
			}
			next = v
		case "bus":
			sel, is_name := busMap[value]
			if is_name {
				bus = sel
				continue
			}
			v, err = asm.valueOf(value)
			bus = BusSel(v & 0xf)
		case "dout":
			v, err = asm.valueOf(value)
			dout = uint8(v & 3)
		case "reg":
			v, err = asm.valueOf(value)
			reg = uint16(v & 0x7ff)
		default:
			err = ErrFieldInvalid
			return
		}
		if err != nil {
			return
		}
	}

	var word Word
	switch mode {
	case MODE_DECODE:
		word = MakeDecode(flags, alu, bus, dout, we, reg)
	case MODE_JUMP:
		if next < 0 {
			err = ErrFieldInvalid
			return
		}
		word = MakeJump(uint16(next), alu, bus, dout, we, reg)
	case MODE_SAVE:
		if next < 0 || !seen["fin"] {
			err = ErrFieldInvalid
			return
		}
		word = MakeSave(uint16(next), fin, bus, dout, we, reg)
	case MODE_FINISH:
		word = MakeFinish(alu, bus, dout, we, reg)
	}

	err = asm.place(word)

	return
}

// finisherOf converts a numeric fin= value to a 5-bit pointer: either a
// raw pointer, or the index of a finisher slot.
func finisherOf(v int) (fin uint8, err error) {
	if v >= 0 && v < FINISH_SIZE {
		fin = uint8(v)
		return
	}
	if v < FINISH_BASE || v >= FINISH_BASE+FINISH_SIZE {
		err = ErrFinisherRange
		return
	}
	fin = uint8(v - FINISH_BASE)
	return
}

// patchAddr replaces the jump target low byte of a word.
func patchAddr(word Word, addr uint8) Word {
	return (word &^ (Word(0xff) << shiftAddr)) | (Word(addr) << shiftAddr)
}

// patchFinisher replaces the finisher pointer of a word.
func patchFinisher(word Word, fin uint8) Word {
	return (word &^ (Word(0x1f) << shiftAlu)) | (Word(fin&0x1f) << shiftAlu)
}

// Parse parses microcode source into a complete 512-word image.
// Unassigned slots are filled with a jump to the .fill target, so every
// index resolves to a defined word; the default target is the reset
// entry.
func (asm *Assembler) Parse(input io.Reader) (image []uint64, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	clear(asm.Label)
	clear(asm.word[:])
	clear(asm.present[:])
	asm.index = 0
	asm.fixups = asm.fixups[:0]
	asm.fill = ""

	asm.Equate = make(map[string]string, 64)
	for attr, val := range Defines() {
		asm.Equate[attr] = val
	}
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line, _, _ = strings.Cut(text, ";")
		line = strings.TrimSpace(line)

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno, line)
		if err != nil {
			return
		}
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	// Final linking of labels in next= and fin= fields.
	for _, fix := range asm.fixups {
		lineno = fix.LineNo
		line = fix.Line

		target, ok := asm.Label[fix.Label]
		if !ok {
			err = ErrLabelMissing(fix.Label)
			return
		}
		switch fix.Field {
		case "next":
			if target < SEQ_BASE || target >= STORE_SIZE {
				err = ErrTargetRange
				return
			}
			asm.word[fix.Index] = patchAddr(asm.word[fix.Index], uint8(target))
		case "fin":
			var fin uint8
			fin, err = finisherOf(target)
			if err != nil {
				return
			}
			asm.word[fix.Index] = patchFinisher(asm.word[fix.Index], fin)
		}
	}
	lineno = 0
	line = ""

	// Fill unassigned slots with the illegal-instruction path.
	fill := RESET_INDEX
	if len(asm.fill) != 0 {
		fill, err = asm.valueOf(asm.fill)
		if err != nil {
			var ok bool
			fill, ok = asm.Label[asm.fill]
			if !ok {
				err = ErrLabelMissing(asm.fill)
				return
			}
			err = nil
		}
		if fill < SEQ_BASE || fill >= STORE_SIZE {
			err = ErrTargetRange
			return
		}
	}
	fillWord := MakeJump(uint16(fill), 0, BUS_HOLD, 0, false, 0)

	image = make([]uint64, STORE_SIZE)
	for n := range asm.word {
		if !asm.present[n] {
			asm.word[n] = fillWord
		}
		image[n] = uint64(asm.word[n])
	}

	return
}
