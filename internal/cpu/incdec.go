package cpu

import "github.com/copperhead-emu/sm83/internal/registers"

// inc8 increments v and sets Z/N/H; C is left untouched, matching the
// SM83's INC r8/INC (HL) flag behavior.
func (c *CPU) inc8(v uint8) uint8 {
	result := v + 1
	c.Assign(registers.FlagZ, result == 0)
	c.Clear(registers.FlagN)
	c.Assign(registers.FlagH, v&0xF == 0xF)
	return result
}

func (c *CPU) dec8(v uint8) uint8 {
	result := v - 1
	c.Assign(registers.FlagZ, result == 0)
	c.Set(registers.FlagN)
	c.Assign(registers.FlagH, v&0xF == 0x0)
	return result
}

// addHL16 adds v to HL, setting N/H/C from the 16-bit addition; Z is
// left untouched.
func (c *CPU) addHL16(v uint16) uint16 {
	hl := c.Load16(registers.HL)
	result := hl + v
	c.Clear(registers.FlagN)
	c.Assign(registers.FlagH, (hl&0xFFF)+(v&0xFFF) > 0xFFF)
	c.Assign(registers.FlagC, uint32(hl)+uint32(v) > 0xFFFF)
	return result
}

// addSPSigned computes SP + e8 for ADD SP,e8 and LD HL,SP+e8. Both
// forms clear Z and N and derive H/C from the low byte of SP, treating
// the addition as 8-bit for flag purposes even though the result is
// 16-bit (spec.md §4.C.4).
func (c *CPU) addSPSigned() uint16 {
	e := c.readOffset8()
	sp := c.SP
	result := uint16(int32(sp) + int32(e))
	c.Clear(registers.FlagZ)
	c.Clear(registers.FlagN)
	c.Assign(registers.FlagH, (sp&0xF)+(uint16(uint8(e))&0xF) > 0xF)
	c.Assign(registers.FlagC, (sp&0xFF)+uint16(uint8(e)) > 0xFF)
	return result
}

func init() {
	for i := uint8(0); i < 8; i++ {
		i := i
		mCycles := uint8(1)
		if i == r8HL {
			mCycles = 3
		}
		define(0x04+i*0x08, "INC "+r8Names[i], 1, mCycles, func(c *CPU) uint8 {
			c.writeR8(i, c.inc8(c.readR8(i)))
			return noBranch()
		})
		define(0x05+i*0x08, "DEC "+r8Names[i], 1, mCycles, func(c *CPU) uint8 {
			c.writeR8(i, c.dec8(c.readR8(i)))
			return noBranch()
		})
	}

	names16 := [4]string{"BC", "DE", "HL", "SP"}
	for i := uint8(0); i < 4; i++ {
		i := i
		define(0x03+i*0x10, "INC "+names16[i], 1, 2, func(c *CPU) uint8 {
			if i == 3 {
				c.SP++
			} else {
				c.Store16(r16ToReg[i], c.Load16(r16ToReg[i])+1)
			}
			return noBranch()
		})
		define(0x0B+i*0x10, "DEC "+names16[i], 1, 2, func(c *CPU) uint8 {
			if i == 3 {
				c.SP--
			} else {
				c.Store16(r16ToReg[i], c.Load16(r16ToReg[i])-1)
			}
			return noBranch()
		})
		define(0x09+i*0x10, "ADD HL, "+names16[i], 1, 2, func(c *CPU) uint8 {
			var operand uint16
			if i == 3 {
				operand = c.SP
			} else {
				operand = c.Load16(r16ToReg[i])
			}
			c.Store16(registers.HL, c.addHL16(operand))
			return noBranch()
		})
	}

	define(0xE8, "ADD SP, e8", 2, 4, func(c *CPU) uint8 {
		c.SP = c.addSPSigned()
		return noBranch()
	})
}
