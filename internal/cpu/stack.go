package cpu

import "github.com/copperhead-emu/sm83/internal/registers"

// pushWord pushes v onto the stack the way CALL/RST/interrupt dispatch
// do: high byte to the newly-decremented SP, then low byte to SP after
// a second decrement, leaving the low byte at the final SP and the
// high byte at SP+1. This is the stack's own byte order and is
// independent of bus.ReadWord/WriteWord's big-endian convention for
// plain memory words.
func (c *CPU) pushWord(v uint16) {
	c.SP--
	c.bus.WriteByte(c.SP, uint8(v>>8))
	c.SP--
	c.bus.WriteByte(c.SP, uint8(v))
}

// popWord is the exact inverse of pushWord: low byte at SP, high byte
// at SP+1.
func (c *CPU) popWord() uint16 {
	lo := c.bus.ReadByte(c.SP)
	hi := c.bus.ReadByte(c.SP + 1)
	c.SP += 2
	return uint16(hi)<<8 | uint16(lo)
}

func init() {
	stackRegs := [4]registers.Reg16Stack{registers.StackBC, registers.StackDE, registers.StackHL, registers.StackAF}
	names := [4]string{"BC", "DE", "HL", "AF"}
	for i := uint8(0); i < 4; i++ {
		i := i
		define(0xC1+i*0x10, "POP "+names[i], 1, 3, func(c *CPU) uint8 {
			c.Store16Stack(stackRegs[i], c.popWord())
			return noBranch()
		})
		define(0xC5+i*0x10, "PUSH "+names[i], 1, 4, func(c *CPU) uint8 {
			c.pushWord(c.Load16Stack(stackRegs[i]))
			return noBranch()
		})
	}
}
