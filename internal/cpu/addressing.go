package cpu

import "github.com/copperhead-emu/sm83/internal/registers"

// readImm8 reads the byte at PC and advances PC by one. Every operand
// and opcode fetch goes through this so PC bookkeeping lives in one
// place.
func (c *CPU) readImm8() uint8 {
	v := c.bus.ReadByte(c.PC)
	c.PC++
	return v
}

// readImm16 reads the little-endian 16-bit immediate at PC and
// advances PC by two: bus[PC] is the low byte, bus[PC+1] the high
// byte. This is the opposite byte order from bus.ReadWord, which
// composes big-endian across two bus addresses; readImm16 is specific
// to how the SM83 encodes immediates in the instruction stream
// (spec.md §6).
func (c *CPU) readImm16() uint16 {
	lo := c.readImm8()
	hi := c.readImm8()
	return uint16(hi)<<8 | uint16(lo)
}

// readOffset8 reads a signed 8-bit displacement, used by JR and the
// SP-relative instructions.
func (c *CPU) readOffset8() int8 {
	return int8(c.readImm8())
}

func (c *CPU) loadIndirHL() uint8 {
	return c.bus.ReadByte(c.Load16(registers.HL))
}

func (c *CPU) storeIndirHL(v uint8) {
	c.bus.WriteByte(c.Load16(registers.HL), v)
}

func (c *CPU) loadIndir(r registers.Reg16Indir) uint8 {
	return c.bus.ReadByte(c.Load16Indir(r))
}

func (c *CPU) storeIndir(r registers.Reg16Indir, v uint8) {
	c.bus.WriteByte(c.Load16Indir(r), v)
}

// hramAddr forms the zero-page address used by LDH and the (C) forms
// of LD.
func hramAddr(offset uint8) uint16 {
	return 0xFF00 | uint16(offset)
}
