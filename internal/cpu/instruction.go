package cpu

// Instruction is an immutable dispatch-table entry: everything the
// core needs to know about an opcode before it runs the executor.
//
// Length and MCycles describe the instruction when it does not take a
// conditional branch; Exec returns the number of additional m-cycles
// to charge when it does (0 otherwise), per the surcharges in
// spec.md §4.C.5. A zero-value Instruction (nil Exec) marks an
// illegal opcode.
type Instruction struct {
	Name    string
	Length  uint8
	MCycles uint8
	Exec    func(c *CPU) uint8
}

// TStates is the T-state cost of the instruction when no conditional
// branch is taken.
func (i Instruction) TStates() uint8 { return i.MCycles * 4 }

// unprefixedTable and cbTable are populated by init() functions spread
// across this package's operation-family files (load.go, alu.go,
// incdec.go, stack.go, bitops.go, control.go, cb.go), one family per
// file, mirroring the table's own organization in spec.md §4.C.2.
var (
	unprefixedTable [256]Instruction
	cbTable         [256]Instruction
)

// define registers an unprefixed opcode. Panics on a double
// registration, which would indicate a bug in the table construction
// itself, not a runtime condition callers need to recover from.
func define(opcode uint8, name string, length, mCycles uint8, exec func(c *CPU) uint8) {
	if unprefixedTable[opcode].Exec != nil {
		panic("cpu: opcode 0x" + hexByte(opcode) + " already defined")
	}
	unprefixedTable[opcode] = Instruction{Name: name, Length: length, MCycles: mCycles, Exec: exec}
}

// defineCB registers a CB-prefixed opcode.
func defineCB(opcode uint8, name string, mCycles uint8, exec func(c *CPU) uint8) {
	if cbTable[opcode].Exec != nil {
		panic("cpu: CB opcode 0x" + hexByte(opcode) + " already defined")
	}
	cbTable[opcode] = Instruction{Name: name, Length: 2, MCycles: mCycles, Exec: exec}
}

const hexDigits = "0123456789ABCDEF"

func hexByte(b uint8) string {
	return string([]byte{hexDigits[b>>4], hexDigits[b&0xF]})
}

// noBranch is the common return value for executors that never take a
// conditional-branch surcharge.
func noBranch() uint8 { return 0 }
