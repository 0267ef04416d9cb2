package ctl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAblOp(t *testing.T) {
	assert := assert.New(t)

	op := MakeAblOp(ABL_SUM, true)
	assert.Equal(ABL_SUM, op.Fn())
	assert.True(op.Carry())
	assert.Equal(AblOp(0x0d), op)

	op = MakeAblOp(ABL_SP, false)
	assert.Equal(ABL_SP, op.Fn())
	assert.False(op.Carry())
}

func TestBusOp_Vector(t *testing.T) {
	assert := assert.New(t)

	op := BusOp{PcIncrement: true, Abh: ABH_INC, Abl: MakeAblOp(ABL_HOLD, true)}
	assert.Equal(uint16(0x821), op.Vector())

	op = BusOp{PcLoad: true, Abh: ABH_PCH, Abl: MakeAblOp(ABL_PCL, false)}
	assert.Equal(uint16(0x400|uint16(ABH_PCH)<<5|uint16(MakeAblOp(ABL_PCL, false))), op.Vector())

	op = BusOp{AhlLoad: true, Abh: ABH_DATA, Abl: MakeAblOp(ABL_DATAX, false)}
	assert.Equal(uint16(0x200|uint16(ABH_DATA)<<5|uint16(MakeAblOp(ABL_DATAX, false))), op.Vector())
}

// TestExpand verifies every selector against the fixed table contract,
// for all four (taken, sign) input combinations.
func TestExpand(t *testing.T) {
	assert := assert.New(t)

	increment := BusOp{PcIncrement: true, Abh: ABH_INC, Abl: MakeAblOp(ABL_HOLD, true)}
	hold := BusOp{Abh: ABH_HOLD, Abl: MakeAblOp(ABL_HOLD, false)}
	forward := BusOp{Abh: ABH_INC, Abl: MakeAblOp(ABL_SUM, true)}
	backward := BusOp{Abh: ABH_DEC, Abl: MakeAblOp(ABL_SUM, true)}

	fixed := map[BusSel]BusOp{
		BUS_INC:    increment,
		BUS_ZPX:    {Abh: ABH_ZERO, Abl: MakeAblOp(ABL_DATAX, false)},
		BUS_PC:     {PcLoad: true, Abh: ABH_PCH, Abl: MakeAblOp(ABL_PCL, false)},
		BUS_ABSX_R: {AhlLoad: true, Abh: ABH_DATA, Abl: MakeAblOp(ABL_DATAX, false)},
		BUS_STK:    {Abh: ABH_ONE, Abl: MakeAblOp(ABL_SP, false)},
		BUS_HOLD:   hold,
		BUS_ABSX:   {AhlLoad: true, Abh: ABH_DATA, Abl: MakeAblOp(ABL_DATAX, false)},
		BUS_STKI:   {Abh: ABH_ONE, Abl: MakeAblOp(ABL_SP, true)},
		BUS_STKPC:  {Abh: ABH_ONE, Abl: MakeAblOp(ABL_SP, false)},
		BUS_STKR:   {Abh: ABH_ONE, Abl: MakeAblOp(ABL_SP, true)},
		BUS_VEC:    {Abh: ABH_FF, Abl: MakeAblOp(ABL_IDX, false)},
		14:         hold,
		15:         hold,
	}

	for selector := BusSel(0); selector < 16; selector++ {
		for _, taken := range []bool{false, true} {
			for _, sign := range []bool{false, true} {
				var want BusOp
				switch selector {
				case BUS_BRT:
					want = increment
					if taken {
						want = forward
						if sign {
							want = backward
						}
					}
				case BUS_BRF:
					want = increment
					if !taken {
						want = forward
						if sign {
							want = backward
						}
					}
				case BUS_BRA:
					want = forward
					if sign {
						want = backward
					}
				default:
					want = fixed[selector]
				}
				got := Expand(selector, taken, sign)
				assert.Equal(want, got, "selector %04b taken:%v sign:%v", selector, taken, sign)
			}
		}
	}
}

// TestExpand_Branch pins the branch rows called out in the interface
// contract directly.
func TestExpand_Branch(t *testing.T) {
	assert := assert.New(t)

	// Taken, negative displacement: high byte subtracts one.
	op := Expand(0b1000, true, true)
	assert.Equal(ABH_DEC, op.Abh)
	assert.Equal(ABL_SUM, op.Abl.Fn())
	assert.True(op.Abl.Carry())
	assert.False(op.PcIncrement)

	// Not taken: identical to the increment row, whatever the sign.
	for _, sign := range []bool{false, true} {
		op = Expand(0b1000, false, sign)
		assert.Equal(Expand(BUS_INC, false, sign), op)
		assert.True(op.PcIncrement)
	}
}
