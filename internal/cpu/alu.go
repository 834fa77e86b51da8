package cpu

import "github.com/copperhead-emu/sm83/internal/registers"

// add8 adds a and b (plus carry-in) and sets Z/N/H/C accordingly,
// returning the result. Shared by ADD and ADC.
func (c *CPU) add8(a, b uint8, carryIn bool) uint8 {
	var cin uint8
	if carryIn {
		cin = 1
	}
	result := a + b + cin
	c.Assign(registers.FlagZ, result == 0)
	c.Clear(registers.FlagN)
	c.Assign(registers.FlagH, (a&0xF)+(b&0xF)+cin > 0xF)
	c.Assign(registers.FlagC, uint16(a)+uint16(b)+uint16(cin) > 0xFF)
	return result
}

// sub8 subtracts b (plus borrow-in) from a and sets Z/N/H/C
// accordingly. Shared by SUB, SBC, and CP (which discards the result).
func (c *CPU) sub8(a, b uint8, borrowIn bool) uint8 {
	var bin uint8
	if borrowIn {
		bin = 1
	}
	result := a - b - bin
	c.Assign(registers.FlagZ, result == 0)
	c.Set(registers.FlagN)
	c.Assign(registers.FlagH, int(a&0xF)-int(b&0xF)-int(bin) < 0)
	c.Assign(registers.FlagC, int(a)-int(b)-int(bin) < 0)
	return result
}

func (c *CPU) and8(a, b uint8) uint8 {
	result := a & b
	c.Assign(registers.FlagZ, result == 0)
	c.Clear(registers.FlagN)
	c.Set(registers.FlagH)
	c.Clear(registers.FlagC)
	return result
}

func (c *CPU) or8(a, b uint8) uint8 {
	result := a | b
	c.Assign(registers.FlagZ, result == 0)
	c.Clear(registers.FlagN)
	c.Clear(registers.FlagH)
	c.Clear(registers.FlagC)
	return result
}

func (c *CPU) xor8(a, b uint8) uint8 {
	result := a ^ b
	c.Assign(registers.FlagZ, result == 0)
	c.Clear(registers.FlagN)
	c.Clear(registers.FlagH)
	c.Clear(registers.FlagC)
	return result
}

// aluOp is one row of the 0x80-0xBF grid: ADD, ADC, SUB, SBC, AND,
// XOR, OR, CP, selected by bits 3-5 of the opcode.
type aluOp func(c *CPU, operand uint8)

var aluOps = [8]aluOp{
	func(c *CPU, v uint8) { c.Store8(registers.A, c.add8(c.Load8(registers.A), v, false)) },
	func(c *CPU, v uint8) { c.Store8(registers.A, c.add8(c.Load8(registers.A), v, c.IsSet(registers.FlagC))) },
	func(c *CPU, v uint8) { c.Store8(registers.A, c.sub8(c.Load8(registers.A), v, false)) },
	func(c *CPU, v uint8) { c.Store8(registers.A, c.sub8(c.Load8(registers.A), v, c.IsSet(registers.FlagC))) },
	func(c *CPU, v uint8) { c.Store8(registers.A, c.and8(c.Load8(registers.A), v)) },
	func(c *CPU, v uint8) { c.Store8(registers.A, c.xor8(c.Load8(registers.A), v)) },
	func(c *CPU, v uint8) { c.Store8(registers.A, c.or8(c.Load8(registers.A), v)) },
	func(c *CPU, v uint8) { c.sub8(c.Load8(registers.A), v, false) },
}

var aluNames = [8]string{"ADD A,", "ADC A,", "SUB", "SBC A,", "AND", "XOR", "OR", "CP"}

func init() {
	for row := uint8(0); row < 8; row++ {
		for src := uint8(0); src < 8; src++ {
			opcode := 0x80 + row*8 + src
			row, src := row, src
			mCycles := uint8(1)
			if src == r8HL {
				mCycles = 2
			}
			define(opcode, aluNames[row]+" "+r8Names[src], 1, mCycles, func(c *CPU) uint8 {
				aluOps[row](c, c.readR8(src))
				return noBranch()
			})
		}
		row := row
		define(0xC6+row*8, aluNames[row]+" d8", 2, 2, func(c *CPU) uint8 {
			aluOps[row](c, c.readImm8())
			return noBranch()
		})
	}
}
