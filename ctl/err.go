package ctl

import (
	"errors"

	"github.com/Arlet/verilog-65C02/translate"
)

var f = translate.From

var (
	// Store / image errors
	ErrConfiguration = errors.New(f("configuration"))
	ErrImageLoaded   = errors.New(f("image already loaded"))

	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrOrgSyntax       = errors.New(f(".org syntax"))
	ErrFillSyntax      = errors.New(f(".fill syntax"))
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrModeInvalid     = errors.New(f("mode invalid"))
	ErrFieldInvalid    = errors.New(f("field invalid"))
	ErrFieldDuplicate  = errors.New(f("field duplicated"))
	ErrTargetRange     = errors.New(f("jump target outside sequencer region"))
	ErrFinisherRange   = errors.New(f("finisher outside finisher slots"))
	ErrSlotCollision   = errors.New(f("slot already assigned"))
	ErrIndexRange      = errors.New(f("index outside microprogram"))
)

type ErrImageCount int

func (ec ErrImageCount) Error() string {
	return f("image has %v words, want %v", int(ec), STORE_SIZE)
}

type ErrWordWidth int

func (ew ErrWordWidth) Error() string {
	return f("word %v wider than %v bits", int(ew), WORD_BITS)
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
