package ctl

import (
	"fmt"
)

// BusSel is the 4-bit address-bus operation selector carried in a
// control word.
type BusSel int

//go:generate go tool stringer -linecomment -type=BusSel
const (
	BUS_INC    = BusSel(0)  // inc
	BUS_ZPX    = BusSel(1)  // zpx
	BUS_PC     = BusSel(2)  // pc
	BUS_ABSX_R = BusSel(3)  // absx+ret
	BUS_STK    = BusSel(4)  // stk
	BUS_HOLD   = BusSel(5)  // hold
	BUS_ABSX   = BusSel(6)  // absx
	BUS_STKI   = BusSel(7)  // stk+1
	BUS_BRT    = BusSel(8)  // brt
	BUS_BRF    = BusSel(9)  // brf
	BUS_STKPC  = BusSel(10) // stk,pc
	BUS_STKR   = BusSel(11) // stk+ret1
	BUS_VEC    = BusSel(12) // vec
	BUS_BRA    = BusSel(13) // bra
)

// AbhOp is the high-byte operation code of the expanded vector.
type AbhOp int

//go:generate go tool stringer -linecomment -type=AbhOp
const (
	ABH_HOLD = AbhOp(0) // hold
	ABH_INC  = AbhOp(1) // inc
	ABH_DATA = AbhOp(2) // data
	ABH_PCH  = AbhOp(3) // pch
	ABH_ZERO = AbhOp(4) // zero
	ABH_ONE  = AbhOp(5) // one
	ABH_FF   = AbhOp(6) // ff
	ABH_DEC  = AbhOp(7) // dec
)

// AblFn is the low-byte function select, the upper 4 bits of the 5-bit
// low-byte operation code. The remaining bit is the explicit carry-in.
type AblFn int

//go:generate go tool stringer -linecomment -type=AblFn
const (
	ABL_HOLD  = AblFn(0) // hold
	ABL_DATA  = AblFn(1) // data
	ABL_DATAX = AblFn(2) // data+x
	ABL_PCL   = AblFn(3) // pcl
	ABL_SP    = AblFn(4) // sp
	ABL_IDX   = AblFn(5) // x
	ABL_SUM   = AblFn(6) // abl+data
)

// AblOp is the complete 5-bit low-byte operation code.
type AblOp int

// MakeAblOp combines a function select with the carry-in bit.
func MakeAblOp(fn AblFn, carry bool) (op AblOp) {
	op = AblOp(fn&0xf) << 1
	if carry {
		op |= 1
	}
	return
}

// Fn returns the function select bits.
func (op AblOp) Fn() AblFn {
	return AblFn((op >> 1) & 0xf)
}

// Carry returns the explicit carry-in bit.
func (op AblOp) Carry() bool {
	return op&1 != 0
}

func (op AblOp) String() string {
	if op.Carry() {
		return op.Fn().String() + "+1"
	}
	return op.Fn().String()
}

// BusOp is the expanded 12-bit address-bus control vector.
type BusOp struct {
	PcIncrement bool  // Advance the program counter.
	PcLoad      bool  // Load the program counter from the address bus.
	AhlLoad     bool  // Latch the address high byte from the data bus.
	Abh         AbhOp // High-byte operation.
	Abl         AblOp // Low-byte operation, including carry-in.
}

// Vector packs the control fields into the 12-bit wire form:
// increment, load, latch, then the high and low operation codes.
func (op BusOp) Vector() (vector uint16) {
	if op.PcIncrement {
		vector |= 1 << 11
	}
	if op.PcLoad {
		vector |= 1 << 10
	}
	if op.AhlLoad {
		vector |= 1 << 9
	}
	vector |= uint16(op.Abh&0xf) << 5
	vector |= uint16(op.Abl & 0x1f)
	return
}

func (op BusOp) String() string {
	flags := ""
	if op.PcIncrement {
		flags += "+"
	}
	if op.PcLoad {
		flags += "L"
	}
	if op.AhlLoad {
		flags += "H"
	}
	return fmt.Sprintf("{%v,%v}%v", op.Abh, op.Abl, flags)
}

// busTable is the authoritative selector-to-vector contract. The three
// relative-branch rows are completed by Expand; every other row is a
// fixed literal mapping. Selectors 14 and 15 expand to the hold row.
var busTable = [16]BusOp{
	BUS_INC:    {PcIncrement: true, Abh: ABH_INC, Abl: MakeAblOp(ABL_HOLD, true)},
	BUS_ZPX:    {Abh: ABH_ZERO, Abl: MakeAblOp(ABL_DATAX, false)},
	BUS_PC:     {PcLoad: true, Abh: ABH_PCH, Abl: MakeAblOp(ABL_PCL, false)},
	BUS_ABSX_R: {AhlLoad: true, Abh: ABH_DATA, Abl: MakeAblOp(ABL_DATAX, false)},
	BUS_STK:    {Abh: ABH_ONE, Abl: MakeAblOp(ABL_SP, false)},
	BUS_HOLD:   {Abh: ABH_HOLD, Abl: MakeAblOp(ABL_HOLD, false)},
	BUS_ABSX:   {AhlLoad: true, Abh: ABH_DATA, Abl: MakeAblOp(ABL_DATAX, false)},
	BUS_STKI:   {Abh: ABH_ONE, Abl: MakeAblOp(ABL_SP, true)},
	BUS_STKPC:  {Abh: ABH_ONE, Abl: MakeAblOp(ABL_SP, false)},
	BUS_STKR:   {Abh: ABH_ONE, Abl: MakeAblOp(ABL_SP, true)},
	BUS_VEC:    {Abh: ABH_FF, Abl: MakeAblOp(ABL_IDX, false)},
	14:         {Abh: ABH_HOLD, Abl: MakeAblOp(ABL_HOLD, false)},
	15:         {Abh: ABH_HOLD, Abl: MakeAblOp(ABL_HOLD, false)},
}

// branchTarget is the taken outcome of the relative-branch rows. The high
// byte subtracts one for a negative displacement, else adds zero; the low
// byte adds the displacement with carry-in set.
func branchTarget(sign bool) (op BusOp) {
	op = BusOp{Abh: ABH_INC, Abl: MakeAblOp(ABL_SUM, true)}
	if sign {
		op.Abh = ABH_DEC
	}
	return
}

// Expand maps a selector plus the branch-taken decision and the sign of
// the data byte (the branch-displacement direction) to the full vector.
// It is total: unmapped selectors expand to the hold row.
func Expand(selector BusSel, taken bool, sign bool) BusOp {
	selector &= 0xf
	switch selector {
	case BUS_BRT:
		if !taken {
			return busTable[BUS_INC]
		}
		return branchTarget(sign)
	case BUS_BRF:
		if taken {
			return busTable[BUS_INC]
		}
		return branchTarget(sign)
	case BUS_BRA:
		return branchTarget(sign)
	}
	return busTable[selector]
}

// busMap maps address-bus selector names as used in microcode source.
var busMap = map[string]BusSel{
	"inc":      BUS_INC,
	"zpx":      BUS_ZPX,
	"pc":       BUS_PC,
	"absx+ret": BUS_ABSX_R,
	"stk":      BUS_STK,
	"hold":     BUS_HOLD,
	"absx":     BUS_ABSX,
	"stk+1":    BUS_STKI,
	"brt":      BUS_BRT,
	"brf":      BUS_BRF,
	"stk,pc":   BUS_STKPC,
	"stk+ret1": BUS_STKR,
	"vec":      BUS_VEC,
	"bra":      BUS_BRA,
}

var _bus_defines = map[string]string{
	"BUS_INC":    fmt.Sprintf("%d", BUS_INC),
	"BUS_ZPX":    fmt.Sprintf("%d", BUS_ZPX),
	"BUS_PC":     fmt.Sprintf("%d", BUS_PC),
	"BUS_ABSX_R": fmt.Sprintf("%d", BUS_ABSX_R),
	"BUS_STK":    fmt.Sprintf("%d", BUS_STK),
	"BUS_HOLD":   fmt.Sprintf("%d", BUS_HOLD),
	"BUS_ABSX":   fmt.Sprintf("%d", BUS_ABSX),
	"BUS_STKI":   fmt.Sprintf("%d", BUS_STKI),
	"BUS_BRT":    fmt.Sprintf("%d", BUS_BRT),
	"BUS_BRF":    fmt.Sprintf("%d", BUS_BRF),
	"BUS_STKPC":  fmt.Sprintf("%d", BUS_STKPC),
	"BUS_STKR":   fmt.Sprintf("%d", BUS_STKR),
	"BUS_VEC":    fmt.Sprintf("%d", BUS_VEC),
	"BUS_BRA":    fmt.Sprintf("%d", BUS_BRA),
}
