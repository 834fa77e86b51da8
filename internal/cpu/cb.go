package cpu

import "github.com/copperhead-emu/sm83/internal/registers"

// shiftOp is one of the 8 rotate/shift/swap operations addressed by
// CB 0x00-0x3F.
type shiftOp func(c *CPU, v uint8) uint8

func (c *CPU) rlc(v uint8) uint8 {
	carry := v&0x80 != 0
	result := v<<1 | boolToBit(carry)
	c.setShiftFlags(result, carry)
	return result
}

func (c *CPU) rrc(v uint8) uint8 {
	carry := v&0x01 != 0
	result := v>>1 | boolToBit(carry)<<7
	c.setShiftFlags(result, carry)
	return result
}

func (c *CPU) rl(v uint8) uint8 {
	oldCarry := boolToBit(c.IsSet(registers.FlagC))
	carry := v&0x80 != 0
	result := v<<1 | oldCarry
	c.setShiftFlags(result, carry)
	return result
}

func (c *CPU) rr(v uint8) uint8 {
	oldCarry := boolToBit(c.IsSet(registers.FlagC))
	carry := v&0x01 != 0
	result := v>>1 | oldCarry<<7
	c.setShiftFlags(result, carry)
	return result
}

func (c *CPU) sla(v uint8) uint8 {
	carry := v&0x80 != 0
	result := v << 1
	c.setShiftFlags(result, carry)
	return result
}

func (c *CPU) sra(v uint8) uint8 {
	carry := v&0x01 != 0
	result := v>>1 | v&0x80
	c.setShiftFlags(result, carry)
	return result
}

func (c *CPU) swap(v uint8) uint8 {
	result := v<<4 | v>>4
	c.Assign(registers.FlagZ, result == 0)
	c.Clear(registers.FlagN)
	c.Clear(registers.FlagH)
	c.Clear(registers.FlagC)
	return result
}

func (c *CPU) srl(v uint8) uint8 {
	carry := v&0x01 != 0
	result := v >> 1
	c.setShiftFlags(result, carry)
	return result
}

func (c *CPU) setShiftFlags(result uint8, carry bool) {
	c.Assign(registers.FlagZ, result == 0)
	c.Clear(registers.FlagN)
	c.Clear(registers.FlagH)
	c.Assign(registers.FlagC, carry)
}

var shiftOps = [8]shiftOp{
	(*CPU).rlc, (*CPU).rrc, (*CPU).rl, (*CPU).rr,
	(*CPU).sla, (*CPU).sra, (*CPU).swap, (*CPU).srl,
}

var shiftNames = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}

func init() {
	for row := uint8(0); row < 8; row++ {
		for src := uint8(0); src < 8; src++ {
			opcode := row*8 + src
			row, src := row, src
			mCycles := uint8(2)
			if src == r8HL {
				mCycles = 4
			}
			defineCB(opcode, shiftNames[row]+" "+r8Names[src], mCycles, func(c *CPU) uint8 {
				c.writeR8(src, shiftOps[row](c, c.readR8(src)))
				return noBranch()
			})
		}
	}

	for bit := uint8(0); bit < 8; bit++ {
		for src := uint8(0); src < 8; src++ {
			bit, src := bit, src
			mCycles := uint8(2)
			if src == r8HL {
				mCycles = 3
			}
			defineCB(0x40+bit*8+src, "BIT "+hexByte(bit)+", "+r8Names[src], mCycles, func(c *CPU) uint8 {
				v := c.readR8(src)
				c.Assign(registers.FlagZ, v&(1<<bit) == 0)
				c.Clear(registers.FlagN)
				c.Set(registers.FlagH)
				return noBranch()
			})

			mCyclesRW := uint8(2)
			if src == r8HL {
				mCyclesRW = 4
			}
			defineCB(0x80+bit*8+src, "RES "+hexByte(bit)+", "+r8Names[src], mCyclesRW, func(c *CPU) uint8 {
				c.writeR8(src, c.readR8(src)&^(1<<bit))
				return noBranch()
			})
			defineCB(0xC0+bit*8+src, "SET "+hexByte(bit)+", "+r8Names[src], mCyclesRW, func(c *CPU) uint8 {
				c.writeR8(src, c.readR8(src)|(1<<bit))
				return noBranch()
			})
		}
	}
}
