package cpu

import "github.com/copperhead-emu/sm83/internal/registers"

var condNames = [4]string{"NZ", "Z", "NC", "C"}
var conds = [4]registers.Cond{registers.CondNZ, registers.CondZ, registers.CondNC, registers.CondC}

func init() {
	define(0x00, "NOP", 1, 1, func(c *CPU) uint8 { return noBranch() })

	define(0x10, "STOP", 2, 1, func(c *CPU) uint8 {
		c.readImm8() // consume the mandatory second byte
		c.Mode = ModeStopped
		return noBranch()
	})

	define(0x76, "HALT", 1, 1, func(c *CPU) uint8 {
		if !c.IME && c.hasPendingInterrupt() {
			c.haltBug = true
			return noBranch()
		}
		c.Mode = ModeHalted
		return noBranch()
	})

	define(0xF3, "DI", 1, 1, func(c *CPU) uint8 {
		c.IME = false
		c.pendingIME = 0
		return noBranch()
	})
	define(0xFB, "EI", 1, 1, func(c *CPU) uint8 {
		c.pendingIME = 2
		return noBranch()
	})

	define(0x18, "JR e8", 2, 3, func(c *CPU) uint8 {
		e := c.readOffset8()
		c.PC = uint16(int32(c.PC) + int32(e))
		return noBranch()
	})
	define(0xC3, "JP a16", 3, 4, func(c *CPU) uint8 {
		c.PC = c.readImm16()
		return noBranch()
	})
	define(0xE9, "JP HL", 1, 1, func(c *CPU) uint8 {
		c.PC = c.Load16(registers.HL)
		return noBranch()
	})
	define(0xCD, "CALL a16", 3, 6, func(c *CPU) uint8 {
		target := c.readImm16()
		c.pushWord(c.PC)
		c.PC = target
		return noBranch()
	})
	define(0xC9, "RET", 1, 4, func(c *CPU) uint8 {
		c.PC = c.popWord()
		return noBranch()
	})
	define(0xD9, "RETI", 1, 4, func(c *CPU) uint8 {
		c.PC = c.popWord()
		c.IME = true
		c.pendingIME = 0
		return noBranch()
	})

	for i := uint8(0); i < 4; i++ {
		i := i
		define(0x20+i*0x08, "JR "+condNames[i]+", e8", 2, 2, func(c *CPU) uint8 {
			e := c.readOffset8()
			if !c.Test(conds[i]) {
				return noBranch()
			}
			c.PC = uint16(int32(c.PC) + int32(e))
			return 1
		})
		define(0xC2+i*0x08, "JP "+condNames[i]+", a16", 3, 3, func(c *CPU) uint8 {
			target := c.readImm16()
			if !c.Test(conds[i]) {
				return noBranch()
			}
			c.PC = target
			return 1
		})
		define(0xC4+i*0x08, "CALL "+condNames[i]+", a16", 3, 3, func(c *CPU) uint8 {
			target := c.readImm16()
			if !c.Test(conds[i]) {
				return noBranch()
			}
			c.pushWord(c.PC)
			c.PC = target
			return 3
		})
		define(0xC0+i*0x08, "RET "+condNames[i], 1, 2, func(c *CPU) uint8 {
			if !c.Test(conds[i]) {
				return noBranch()
			}
			c.PC = c.popWord()
			return 3
		})
	}

	for i := uint8(0); i < 8; i++ {
		vector := uint16(i) * 0x08
		define(0xC7+i*0x08, "RST "+hexByte(uint8(vector))+"H", 1, 4, func(c *CPU) uint8 {
			c.pushWord(c.PC)
			c.PC = vector
			return noBranch()
		})
	}

	// 0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD are
	// left undefined: their table entries stay the zero Instruction, so
	// Step reports IllegalOpcodeError for each.
}
