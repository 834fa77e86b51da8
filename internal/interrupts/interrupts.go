// Package interrupts holds the named interrupt bits and vectors the
// SM83 core dispatches against. IF/IE state itself lives on the bus
// (bus.IF, bus.IE) — this package only names the bits and factors out
// the priority scan so the core and its tests share one
// implementation of "lowest-numbered pending bit wins", rather than
// each duplicating the bit walk the teacher's Service.Vector did
// inline against its own Flag/Enable fields.
package interrupts

// Interrupt source bits within IF and IE, lowest bit highest priority.
const (
	VBlank uint8 = 1 << iota
	LCD
	Timer
	Serial
	Joypad
)

// Vectors gives the service address for each interrupt source, indexed
// by bit position (0 = VBlank .. 4 = Joypad).
var Vectors = [5]uint16{0x0040, 0x0048, 0x0050, 0x0058, 0x0060}

// Pending scans ifReg&ieReg for the lowest-numbered set bit and
// reports its bit mask and vector. ok is false when no interrupt is
// both requested and enabled.
func Pending(ifReg, ieReg uint8) (bit uint8, vector uint16, ok bool) {
	masked := ifReg & ieReg & 0x1F
	if masked == 0 {
		return 0, 0, false
	}
	for i := 0; i < 5; i++ {
		b := uint8(1 << i)
		if masked&b != 0 {
			return b, Vectors[i], true
		}
	}
	panic("interrupts: unreachable")
}
