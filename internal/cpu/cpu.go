// Package cpu implements the SM83 fetch-decode-execute core: register
// file, instruction dispatch tables, and interrupt service, driven one
// Step at a time against a bus.Bus supplied by the embedding emulator.
package cpu

import (
	"github.com/copperhead-emu/sm83/internal/bus"
	"github.com/copperhead-emu/sm83/internal/interrupts"
	"github.com/copperhead-emu/sm83/internal/registers"
	"github.com/copperhead-emu/sm83/pkg/log"
)

// Mode tracks the three run states a Step can find the core in.
type Mode uint8

const (
	ModeRunning Mode = iota
	ModeHalted
	ModeStopped
)

func (m Mode) String() string {
	switch m {
	case ModeRunning:
		return "running"
	case ModeHalted:
		return "halted"
	case ModeStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// CPU is the SM83 instruction-processing core. It owns no memory of its
// own beyond the register file; all loads and stores go through bus.
type CPU struct {
	registers.File

	PC uint16
	SP uint16

	IME  bool
	Mode Mode

	MCycles uint64
	TStates uint64

	bus bus.Bus
	log log.Logger

	// pendingIME counts down the EI delay: EI arms this to 2, and IME
	// becomes true once it reaches 0 at the top of a later Step. See
	// DESIGN.md for why a countdown rather than a single flag.
	pendingIME uint8

	// haltBug marks that HALT was executed with IME clear and an
	// interrupt already pending: the byte at PC is fetched again on
	// the following Step instead of being consumed, per the DMG quirk
	// in spec.md §4.D.
	haltBug bool
}

// NewCPU returns a core wired to b, in the documented DMG post-boot-ROM
// power-on state (spec.md §3).
func NewCPU(b bus.Bus, l log.Logger) *CPU {
	if l == nil {
		l = log.NewNullLogger()
	}
	c := &CPU{bus: b, log: l}
	c.Reset()
	return c
}

// Reset restores power-on register and mode state without touching the
// bus (the caller owns cartridge/IO reset).
func (c *CPU) Reset() {
	c.File.Reset()
	c.PC = 0x0100
	c.SP = 0xFFFE
	c.IME = true
	c.Mode = ModeRunning
	c.MCycles = 0
	c.TStates = 0
	c.pendingIME = 0
	c.haltBug = false
}

// hasPendingInterrupt reports whether the bus currently exposes a
// requested and enabled interrupt, independent of IME.
func (c *CPU) hasPendingInterrupt() bool {
	_, _, ok := interrupts.Pending(c.bus.ReadIO(bus.IF), c.bus.ReadIO(bus.IE))
	return ok
}

// tick advances the cycle counters by n m-cycles.
func (c *CPU) tick(n uint8) {
	c.MCycles += uint64(n)
	c.TStates += uint64(n) * 4
}

// Step executes one Step of the fetch-decode-execute loop: it services
// an interrupt, advances one m-cycle while halted or stopped, or
// decodes and runs exactly one instruction. It returns a non-nil error
// only for an IllegalOpcodeError; the caller decides how to handle it.
func (c *CPU) Step() error {
	if c.pendingIME > 0 {
		c.pendingIME--
		if c.pendingIME == 0 {
			c.IME = true
		}
	}

	if c.Mode != ModeRunning {
		c.tick(1)
		if !c.hasPendingInterrupt() {
			return nil
		}
		c.Mode = ModeRunning
	}

	if c.IME && c.hasPendingInterrupt() {
		c.serviceInterrupt()
		return nil
	}

	return c.step()
}

// serviceInterrupt runs the fixed 5 m-cycle dispatch sequence: clear
// IME and the serviced IF bit, push PC, jump to the vector.
func (c *CPU) serviceInterrupt() {
	bit, vector, ok := interrupts.Pending(c.bus.ReadIO(bus.IF), c.bus.ReadIO(bus.IE))
	if !ok {
		return
	}
	c.IME = false
	c.bus.WriteIO(bus.IF, c.bus.ReadIO(bus.IF)&^bit)

	c.pushWord(c.PC)
	c.log.Debugf("cpu: servicing interrupt bit=%#02x vector=%#04x from pc=%#04x", bit, vector, c.PC)
	c.PC = vector
	c.tick(5)
}

// step decodes and executes exactly one instruction at PC.
func (c *CPU) step() error {
	startPC := c.PC
	opcode := c.readImm8()

	if c.haltBug {
		c.haltBug = false
		c.PC--
	}

	table := &unprefixedTable
	cbPrefixed := false
	if opcode == 0xCB {
		opcode = c.readImm8()
		table = &cbTable
		cbPrefixed = true
	}

	instr := table[opcode]
	if instr.Exec == nil {
		c.log.Errorf("cpu: illegal opcode 0x%02X at 0x%04X (cb=%v)", opcode, startPC, cbPrefixed)
		return &IllegalOpcodeError{Opcode: opcode, CBPrefixed: cbPrefixed, PC: startPC}
	}

	extra := instr.Exec(c)
	c.tick(instr.MCycles + extra)
	return nil
}
