package bus

// FlatMemory is a trivial Bus backed by a single 64KiB array. It has
// none of a real Game Boy's bank switching, echo-RAM mirroring, or
// unusable-region behavior — it exists so the CPU core can be
// exercised and tested without depending on a real MMU, which is a
// collaborator's concern (see spec §1). Embedders wiring a real
// cartridge/MBC/PPU/APU stack provide their own Bus instead.
type FlatMemory struct {
	mem [0x10000]uint8
}

// NewFlatMemory returns a zeroed FlatMemory.
func NewFlatMemory() *FlatMemory {
	return &FlatMemory{}
}

func (m *FlatMemory) ReadByte(addr uint16) uint8 {
	return m.mem[addr]
}

func (m *FlatMemory) WriteByte(addr uint16, v uint8) {
	m.mem[addr] = v
}

func (m *FlatMemory) ReadIO(reg IOReg) uint8 {
	return m.mem[uint16(reg)]
}

func (m *FlatMemory) WriteIO(reg IOReg, v uint8) {
	m.mem[uint16(reg)] = v
}

// LoadBytes copies data into memory starting at addr, for setting up
// test fixtures and small standalone programs.
func (m *FlatMemory) LoadBytes(addr uint16, data []uint8) {
	copy(m.mem[addr:], data)
}

var _ Bus = (*FlatMemory)(nil)
