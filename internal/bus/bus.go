// Package bus defines the memory-bus contract the SM83 core consumes.
//
// The bus is the CPU's only window onto the outside world: cartridge
// ROM, work RAM, VRAM, and the memory-mapped I/O registers all live
// behind it. This package specifies the contract only; the backing
// store (RAM banks, MBC, PPU/APU register plumbing) belongs to
// whichever collaborator embeds the core.
package bus

// IOReg names a memory-mapped I/O position the CPU cares about
// directly, addressed independently of the general 16-bit address
// space so a Bus implementation can special-case it without a switch
// over raw addresses.
type IOReg uint16

const (
	// IF is the interrupt-flag register: pending, requested interrupts.
	IF IOReg = 0xFF0F
	// IE is the interrupt-enable register.
	IE IOReg = 0xFFFF
)

// Bus is the memory-mapped address space the CPU reads instructions
// and operands from, and through which it performs all loads, stores,
// and interrupt bookkeeping. All operations are synchronous and total:
// a Bus implementation never fails a read or write, and address
// arithmetic wraps modulo 2^16.
type Bus interface {
	// ReadByte returns the byte at addr.
	ReadByte(addr uint16) uint8
	// WriteByte stores v at addr.
	WriteByte(addr uint16, v uint8)

	// ReadIO returns the current value of the named I/O register.
	ReadIO(reg IOReg) uint8
	// WriteIO stores v to the named I/O register.
	WriteIO(reg IOReg, v uint8)
}

// ReadWord composes a 16-bit value from two consecutive bus bytes,
// high byte at addr, low byte at addr+1 — the bus-level big-endian
// composition rule. This is distinct from the SM83's little-endian
// encoding of instruction immediates, which is a property of how the
// CPU walks PC, not of the bus.
func ReadWord(b Bus, addr uint16) uint16 {
	hi := b.ReadByte(addr)
	lo := b.ReadByte(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// WriteWord stores a 16-bit value across two consecutive bus bytes,
// high byte at addr, low byte at addr+1.
func WriteWord(b Bus, addr uint16, v uint16) {
	b.WriteByte(addr, uint8(v>>8))
	b.WriteByte(addr+1, uint8(v))
}
