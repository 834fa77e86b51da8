package cpu

import "github.com/copperhead-emu/sm83/internal/registers"

// r8 indexes the 8 operand slots used throughout the unprefixed and
// CB-prefixed tables: B, C, D, E, H, L, (HL), A. Index 6 is not a
// register at all; it means "read/write through HL" and costs extra
// m-cycles wherever it appears (spec.md §4.C.3).
const (
	r8B = iota
	r8C
	r8D
	r8E
	r8H
	r8L
	r8HL
	r8A
)

var r8Names = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

var r8ToReg = [8]registers.Reg8{registers.B, registers.C, registers.D, registers.E, registers.H, registers.L, 0, registers.A}

// readR8 fetches the value named by an r8 index, dereferencing HL for
// index 6.
func (c *CPU) readR8(i uint8) uint8 {
	if i == r8HL {
		return c.loadIndirHL()
	}
	return c.Load8(r8ToReg[i])
}

// writeR8 stores into the location named by an r8 index.
func (c *CPU) writeR8(i uint8, v uint8) {
	if i == r8HL {
		c.storeIndirHL(v)
		return
	}
	c.Store8(r8ToReg[i], v)
}

// r16ToReg services the four opcode-encoded 16-bit register operands
// used by LD/INC/DEC/ADD HL, in encoding order BC, DE, HL, SP. Index 3
// (SP) has no register-pair view; callers handle it through c.SP.
var r16ToReg = [4]registers.Reg16{registers.BC, registers.DE, registers.HL, 0}

func init() {
	generateLoadRegisterToRegisterInstructions()
	generateLoadImmediate8Instructions()
	generateLoadRegister16Immediate()

	define(0x02, "LD (BC), A", 1, 2, func(c *CPU) uint8 {
		c.storeIndir(registers.IndirBC, c.Load8(registers.A))
		return noBranch()
	})
	define(0x12, "LD (DE), A", 1, 2, func(c *CPU) uint8 {
		c.storeIndir(registers.IndirDE, c.Load8(registers.A))
		return noBranch()
	})
	define(0x22, "LD (HL+), A", 1, 2, func(c *CPU) uint8 {
		c.storeIndir(registers.IndirHLI, c.Load8(registers.A))
		return noBranch()
	})
	define(0x32, "LD (HL-), A", 1, 2, func(c *CPU) uint8 {
		c.storeIndir(registers.IndirHLD, c.Load8(registers.A))
		return noBranch()
	})
	define(0x0A, "LD A, (BC)", 1, 2, func(c *CPU) uint8 {
		c.Store8(registers.A, c.loadIndir(registers.IndirBC))
		return noBranch()
	})
	define(0x1A, "LD A, (DE)", 1, 2, func(c *CPU) uint8 {
		c.Store8(registers.A, c.loadIndir(registers.IndirDE))
		return noBranch()
	})
	define(0x2A, "LD A, (HL+)", 1, 2, func(c *CPU) uint8 {
		c.Store8(registers.A, c.loadIndir(registers.IndirHLI))
		return noBranch()
	})
	define(0x3A, "LD A, (HL-)", 1, 2, func(c *CPU) uint8 {
		c.Store8(registers.A, c.loadIndir(registers.IndirHLD))
		return noBranch()
	})

	define(0x08, "LD (a16), SP", 3, 5, func(c *CPU) uint8 {
		addr := c.readImm16()
		c.bus.WriteByte(addr, uint8(c.SP))
		c.bus.WriteByte(addr+1, uint8(c.SP>>8))
		return noBranch()
	})
	define(0xF9, "LD SP, HL", 1, 2, func(c *CPU) uint8 {
		c.SP = c.Load16(registers.HL)
		return noBranch()
	})
	define(0xF8, "LD HL, SP+e8", 2, 3, func(c *CPU) uint8 {
		c.Store16(registers.HL, c.addSPSigned())
		return noBranch()
	})

	define(0xE0, "LDH (a8), A", 2, 3, func(c *CPU) uint8 {
		c.bus.WriteByte(hramAddr(c.readImm8()), c.Load8(registers.A))
		return noBranch()
	})
	define(0xF0, "LDH A, (a8)", 2, 3, func(c *CPU) uint8 {
		c.Store8(registers.A, c.bus.ReadByte(hramAddr(c.readImm8())))
		return noBranch()
	})
	define(0xE2, "LD (C), A", 1, 2, func(c *CPU) uint8 {
		c.bus.WriteByte(hramAddr(c.Load8(registers.C)), c.Load8(registers.A))
		return noBranch()
	})
	define(0xF2, "LD A, (C)", 1, 2, func(c *CPU) uint8 {
		c.Store8(registers.A, c.bus.ReadByte(hramAddr(c.Load8(registers.C))))
		return noBranch()
	})
	define(0xEA, "LD (a16), A", 3, 4, func(c *CPU) uint8 {
		c.bus.WriteByte(c.readImm16(), c.Load8(registers.A))
		return noBranch()
	})
	define(0xFA, "LD A, (a16)", 3, 4, func(c *CPU) uint8 {
		c.Store8(registers.A, c.bus.ReadByte(c.readImm16()))
		return noBranch()
	})
}

// generateLoadRegisterToRegisterInstructions fills 0x40-0x7F, the
// 8x8 grid of LD dst, src forms. 0x76 is HALT, not LD (HL), (HL), and
// is defined separately in control.go.
func generateLoadRegisterToRegisterInstructions() {
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			opcode := 0x40 + dst*8 + src
			if opcode == 0x76 {
				continue
			}
			dst, src := dst, src
			mCycles := uint8(1)
			if dst == r8HL || src == r8HL {
				mCycles = 2
			}
			name := "LD " + r8Names[dst] + ", " + r8Names[src]
			define(opcode, name, 1, mCycles, func(c *CPU) uint8 {
				c.writeR8(dst, c.readR8(src))
				return noBranch()
			})
		}
	}
}

// generateLoadImmediate8Instructions fills the LD r, d8 column: 0x06,
// 0x0E, 0x16, 0x1E, 0x26, 0x2E, 0x36, 0x3E.
func generateLoadImmediate8Instructions() {
	for dst := uint8(0); dst < 8; dst++ {
		opcode := 0x06 + dst*8
		dst := dst
		mCycles := uint8(2)
		if dst == r8HL {
			mCycles = 3
		}
		name := "LD " + r8Names[dst] + ", d8"
		define(opcode, name, 2, mCycles, func(c *CPU) uint8 {
			c.writeR8(dst, c.readImm8())
			return noBranch()
		})
	}
}

// generateLoadRegister16Immediate fills LD BC/DE/HL/SP, d16.
func generateLoadRegister16Immediate() {
	names := [4]string{"BC", "DE", "HL", "SP"}
	for i := uint8(0); i < 4; i++ {
		opcode := 0x01 + i*0x10
		i := i
		define(opcode, "LD "+names[i]+", d16", 3, 3, func(c *CPU) uint8 {
			v := c.readImm16()
			if i == 3 {
				c.SP = v
			} else {
				c.Store16(r16ToReg[i], v)
			}
			return noBranch()
		})
	}
}
