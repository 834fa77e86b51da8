package cpu

import (
	"testing"

	"github.com/copperhead-emu/sm83/internal/bus"
	"github.com/copperhead-emu/sm83/internal/interrupts"
	"github.com/copperhead-emu/sm83/internal/registers"
)

func newTestCPU(program ...uint8) (*CPU, *bus.FlatMemory) {
	mem := bus.NewFlatMemory()
	mem.LoadBytes(0x0100, program)
	c := NewCPU(mem, nil)
	return c, mem
}

func TestNewCPUPowerOnState(t *testing.T) {
	c, _ := newTestCPU()
	if c.PC != 0x0100 {
		t.Errorf("PC = %#04x, want 0x0100", c.PC)
	}
	if c.SP != 0xFFFE {
		t.Errorf("SP = %#04x, want 0xFFFE", c.SP)
	}
	if !c.IME {
		t.Error("IME should start true")
	}
	if c.Mode != ModeRunning {
		t.Errorf("Mode = %v, want running", c.Mode)
	}
	if c.Load8(registers.A) != 0x01 {
		t.Errorf("A = %#02x, want 0x01", c.Load8(registers.A))
	}
	if c.F() != 0x80 {
		t.Errorf("F = %#02x, want 0x80", c.F())
	}
}

// S1: LD B, d8 loads the immediate into B, advances PC by its length,
// and charges exactly 2 m-cycles.
func TestLDBImmediate(t *testing.T) {
	c, _ := newTestCPU(0x06, 0x42)
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.Load8(registers.B) != 0x42 {
		t.Errorf("B = %#02x, want 0x42", c.Load8(registers.B))
	}
	if c.PC != 0x0102 {
		t.Errorf("PC = %#04x, want 0x0102", c.PC)
	}
	if c.MCycles != 2 {
		t.Errorf("MCycles = %d, want 2", c.MCycles)
	}
}

// S2: ADD A, B sets half-carry and carry correctly at the boundary.
func TestADDHalfAndFullCarry(t *testing.T) {
	c, _ := newTestCPU(0x80) // ADD A, B
	c.Store8(registers.A, 0x0F)
	c.Store8(registers.B, 0x01)
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.Load8(registers.A) != 0x10 {
		t.Errorf("A = %#02x, want 0x10", c.Load8(registers.A))
	}
	if !c.IsSet(registers.FlagH) {
		t.Error("half-carry should be set")
	}
	if c.IsSet(registers.FlagC) {
		t.Error("carry should not be set")
	}

	c2, _ := newTestCPU(0x80)
	c2.Store8(registers.A, 0xFF)
	c2.Store8(registers.B, 0x01)
	if err := c2.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c2.Load8(registers.A) != 0x00 {
		t.Errorf("A = %#02x, want 0x00", c2.Load8(registers.A))
	}
	if !c2.IsSet(registers.FlagZ) || !c2.IsSet(registers.FlagH) || !c2.IsSet(registers.FlagC) {
		t.Error("Z, H, and C should all be set on 0xFF + 0x01")
	}
}

// S3: DEC A on 0x01 sets Z, clears H, leaves C untouched.
func TestDECSetsZero(t *testing.T) {
	c, _ := newTestCPU(0x3D) // DEC A
	c.Store8(registers.A, 0x01)
	c.Set(registers.FlagC)
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.Load8(registers.A) != 0x00 {
		t.Errorf("A = %#02x, want 0x00", c.Load8(registers.A))
	}
	if !c.IsSet(registers.FlagZ) {
		t.Error("Z should be set")
	}
	if c.IsSet(registers.FlagH) {
		t.Error("H should be clear (no borrow from bit 4)")
	}
	if !c.IsSet(registers.FlagC) {
		t.Error("C should be untouched by DEC")
	}
}

// S4: CALL n16 pushes the return address and jumps; a matching RET
// restores PC and SP exactly.
func TestCallThenRet(t *testing.T) {
	mem := bus.NewFlatMemory()
	mem.LoadBytes(0x0100, []uint8{0xCD, 0x00, 0x02}) // CALL 0x0200
	mem.LoadBytes(0x0200, []uint8{0xC9})             // RET
	c := NewCPU(mem, nil)
	startSP := c.SP

	if err := c.Step(); err != nil {
		t.Fatalf("Step (CALL): %v", err)
	}
	if c.PC != 0x0200 {
		t.Errorf("PC after CALL = %#04x, want 0x0200", c.PC)
	}
	if c.SP != startSP-2 {
		t.Errorf("SP after CALL = %#04x, want %#04x", c.SP, startSP-2)
	}

	if err := c.Step(); err != nil {
		t.Fatalf("Step (RET): %v", err)
	}
	if c.PC != 0x0103 {
		t.Errorf("PC after RET = %#04x, want 0x0103", c.PC)
	}
	if c.SP != startSP {
		t.Errorf("SP after RET = %#04x, want %#04x", c.SP, startSP)
	}
}

// S5: CB SWAP A exchanges nibbles and clears N/H/C.
func TestCBSwap(t *testing.T) {
	c, _ := newTestCPU(0xCB, 0x37) // SWAP A
	c.Store8(registers.A, 0xA5)
	c.Set(registers.FlagN)
	c.Set(registers.FlagH)
	c.Set(registers.FlagC)
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.Load8(registers.A) != 0x5A {
		t.Errorf("A = %#02x, want 0x5A", c.Load8(registers.A))
	}
	if c.IsSet(registers.FlagN) || c.IsSet(registers.FlagH) || c.IsSet(registers.FlagC) {
		t.Error("SWAP should clear N, H, and C")
	}
	if c.PC != 0x0102 {
		t.Errorf("PC = %#04x, want 0x0102 (CB is 2 bytes)", c.PC)
	}
}

// S6: a pending, enabled VBlank interrupt is serviced instead of the
// next opcode fetch, pushing PC and jumping to 0x0040.
func TestVBlankInterruptDispatch(t *testing.T) {
	mem := bus.NewFlatMemory()
	mem.LoadBytes(0x0100, []uint8{0x00}) // NOP, should not run
	mem.WriteIO(bus.IE, interrupts.VBlank)
	mem.WriteIO(bus.IF, interrupts.VBlank)
	c := NewCPU(mem, nil)
	startSP := c.SP

	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.PC != 0x0040 {
		t.Errorf("PC = %#04x, want 0x0040", c.PC)
	}
	if c.SP != startSP-2 {
		t.Errorf("SP = %#04x, want %#04x", c.SP, startSP-2)
	}
	if c.IME {
		t.Error("IME should be cleared during dispatch")
	}
	if mem.ReadIO(bus.IF)&interrupts.VBlank != 0 {
		t.Error("VBlank bit in IF should be cleared")
	}
	lo, hi := mem.ReadByte(c.SP), mem.ReadByte(c.SP+1)
	if pushed := uint16(hi)<<8 | uint16(lo); pushed != 0x0100 {
		t.Errorf("pushed return address = %#04x, want 0x0100", pushed)
	}
	if c.MCycles != 5 {
		t.Errorf("MCycles = %d, want 5", c.MCycles)
	}
}

func TestInterruptDisabledByIMENotServiced(t *testing.T) {
	mem := bus.NewFlatMemory()
	mem.LoadBytes(0x0100, []uint8{0x00}) // NOP
	mem.WriteIO(bus.IE, interrupts.VBlank)
	mem.WriteIO(bus.IF, interrupts.VBlank)
	c := NewCPU(mem, nil)
	c.IME = false

	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.PC != 0x0101 {
		t.Errorf("PC = %#04x, want 0x0101 (NOP executed, not interrupt)", c.PC)
	}
}

func TestHaltReleasedByPendingInterrupt(t *testing.T) {
	mem := bus.NewFlatMemory()
	mem.LoadBytes(0x0100, []uint8{0x76, 0x00}) // HALT, NOP
	c := NewCPU(mem, nil)

	if err := c.Step(); err != nil {
		t.Fatalf("Step (HALT): %v", err)
	}
	if c.Mode != ModeHalted {
		t.Fatalf("Mode = %v, want halted", c.Mode)
	}

	if err := c.Step(); err != nil {
		t.Fatalf("Step (still halted): %v", err)
	}
	if c.Mode != ModeHalted {
		t.Fatalf("Mode = %v, want still halted", c.Mode)
	}

	mem.WriteIO(bus.IE, interrupts.Timer)
	mem.WriteIO(bus.IF, interrupts.Timer)
	c.IME = false

	if err := c.Step(); err != nil {
		t.Fatalf("Step (release): %v", err)
	}
	if c.Mode != ModeRunning {
		t.Error("halt should release on pending interrupt regardless of IME")
	}
}

func TestHaltBugRefetchesOpcode(t *testing.T) {
	mem := bus.NewFlatMemory()
	mem.LoadBytes(0x0100, []uint8{0x76, 0x3C}) // HALT, INC A
	mem.WriteIO(bus.IE, interrupts.Timer)
	mem.WriteIO(bus.IF, interrupts.Timer)
	c := NewCPU(mem, nil)
	c.IME = false

	if err := c.Step(); err != nil { // HALT: IME clear, interrupt already pending -> halt bug
		t.Fatalf("Step (HALT): %v", err)
	}
	if c.Mode != ModeRunning {
		t.Fatalf("halt bug should keep the core running, got %v", c.Mode)
	}
	if !c.haltBug {
		t.Fatal("haltBug flag should be armed")
	}

	if err := c.Step(); err != nil { // INC A is fetched, PC rewinds onto it, then it executes
		t.Fatalf("Step (INC A #1): %v", err)
	}
	if c.Load8(registers.A) != 0x02 {
		t.Errorf("A = %#02x, want 0x02", c.Load8(registers.A))
	}
	if c.PC != 0x0101 {
		t.Errorf("PC = %#04x, want 0x0101 (rewound onto INC A)", c.PC)
	}

	if err := c.Step(); err != nil { // INC A executes a second time from the same byte
		t.Fatalf("Step (INC A #2): %v", err)
	}
	if c.Load8(registers.A) != 0x03 {
		t.Errorf("A = %#02x, want 0x03 (opcode fetched twice)", c.Load8(registers.A))
	}
}

func TestEIDelaysInterruptByOneInstruction(t *testing.T) {
	mem := bus.NewFlatMemory()
	mem.LoadBytes(0x0100, []uint8{0xFB, 0x00, 0x00}) // EI, NOP, NOP
	mem.WriteIO(bus.IE, interrupts.VBlank)
	mem.WriteIO(bus.IF, interrupts.VBlank)
	c := NewCPU(mem, nil)
	c.IME = false

	if err := c.Step(); err != nil { // EI
		t.Fatalf("Step (EI): %v", err)
	}
	if c.IME {
		t.Error("IME should not be enabled immediately after EI")
	}

	if err := c.Step(); err != nil { // the instruction right after EI must still run
		t.Fatalf("Step (post-EI NOP): %v", err)
	}
	if c.PC != 0x0102 {
		t.Errorf("PC = %#04x, want 0x0102 (post-EI instruction executed, not interrupted)", c.PC)
	}

	if err := c.Step(); err != nil { // now IME is live and the interrupt fires before the next opcode
		t.Fatalf("Step (dispatch): %v", err)
	}
	if c.PC != 0x0040 {
		t.Errorf("PC = %#04x, want 0x0040 (interrupt now dispatched)", c.PC)
	}
}

func TestPushPopRoundTrip(t *testing.T) {
	c, _ := newTestCPU()
	c.Store16Stack(registers.StackBC, 0x1234)
	c.pushWord(c.Load16Stack(registers.StackBC))
	got := c.popWord()
	if got != 0x1234 {
		t.Errorf("round trip = %#04x, want 0x1234", got)
	}
}

func TestIllegalOpcode(t *testing.T) {
	c, _ := newTestCPU(0xD3)
	err := c.Step()
	illegal, ok := err.(*IllegalOpcodeError)
	if !ok {
		t.Fatalf("err = %v, want *IllegalOpcodeError", err)
	}
	if illegal.Opcode != 0xD3 || illegal.CBPrefixed {
		t.Errorf("got %+v", illegal)
	}
}
