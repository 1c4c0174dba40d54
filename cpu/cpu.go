// Package cpu implements the MOS 6502 instruction interpreter: the
// addressing-mode decoders, the opcode dispatch table, the per-family
// instruction semantics, and the step/interrupt loop that ties them to a
// caller-supplied memory map.
package cpu

import (
	"fmt"

	"github.com/sixfiveohtwo/mos6502/irq"
	"github.com/sixfiveohtwo/mos6502/mmu"
	"github.com/sixfiveohtwo/mos6502/registers"
)

// Interrupt and reset vectors, little-endian words stored at these fixed
// addresses.
const (
	NMIVector   = uint16(0xFFFA)
	ResetVector = uint16(0xFFFC)
	IRQVector   = uint16(0xFFFE)
)

// UnknownOpcodeError is returned by Step when the fetched opcode has no
// entry in the dispatch table. The CPU's PC has already advanced past the
// opcode byte when this is returned; the PC field holds the address the
// opcode was fetched from.
type UnknownOpcodeError struct {
	Opcode uint8
	PC     uint16
}

// Error implements the error interface.
func (e UnknownOpcodeError) Error() string {
	return fmt.Sprintf("cpu: unknown opcode 0x%02X at 0x%04X", e.Opcode, e.PC)
}

// CPU is a MOS 6502 bound to a memory map. It has no concept of a
// containing machine: the host drives it one Step at a time and may
// raise NMI/IRQ between steps.
type CPU struct {
	Reg registers.Registers
	Mem *mmu.MMU

	cycles uint64

	nmi irq.Latch
	irq irq.Latch

	// penalty accumulates page-cross / branch-taken cycle additions for
	// the instruction currently being decoded and executed.
	penalty int
}

// New constructs a CPU bound to mem. If pc is non-nil it overrides the
// program counter the reset vector would otherwise supply; this is handy
// for tests that want to execute a short sequence without wiring up a
// full reset vector. The CPU is returned already reset.
func New(mem *mmu.MMU, pc *uint16) *CPU {
	c := &CPU{Mem: mem}
	c.Reset()
	if pc != nil {
		c.Reg.PC = *pc
	}
	return c
}

// A returns the accumulator.
func (c *CPU) A() uint8 { return c.Reg.A }

// X returns the X index register.
func (c *CPU) X() uint8 { return c.Reg.X }

// Y returns the Y index register.
func (c *CPU) Y() uint8 { return c.Reg.Y }

// SP returns the stack pointer.
func (c *CPU) SP() uint8 { return c.Reg.SP }

// PC returns the program counter.
func (c *CPU) PC() uint16 { return c.Reg.PC }

// P returns the status register.
func (c *CPU) P() uint8 { return c.Reg.P }

// Cycles returns the running total of cycles accounted since
// construction. Reset does not clear it.
func (c *CPU) Cycles() uint64 { return c.cycles }

// Reset reinitializes the register file to the documented power-on state
// and loads PC from the reset vector.
func (c *CPU) Reset() {
	c.Reg.Reset()
	c.Reg.PC = c.Mem.ReadWord(ResetVector)
	c.nmi.Clear()
	c.irq.Clear()
}

// NMI edge-triggers a non-maskable interrupt: it will be serviced at the
// start of the next Step regardless of the I flag.
func (c *CPU) NMI() {
	c.nmi.Set()
}

// IRQ triggers a maskable interrupt: it will be serviced at the start of
// the next Step if the I flag is clear. Modeled as an edge trigger (the
// request is consumed once serviced) rather than true level-sensitive
// hardware behavior.
func (c *CPU) IRQ() {
	c.irq.Set()
}

// Step executes exactly one unit of CPU work: either servicing a pending
// interrupt, or fetching, decoding, and executing the next instruction.
// It returns the number of cycles that work took. Interrupts are checked
// at the top of every Step, honoring NMI/IRQ only at instruction
// boundaries; RESET is performed by Reset, not by Step.
func (c *CPU) Step() (uint64, error) {
	if c.nmi.Raised() {
		c.nmi.Clear()
		c.serviceInterrupt(NMIVector, false)
		c.cycles += 7
		return 7, nil
	}
	if c.irq.Raised() && !c.Reg.GetFlag(registers.Interrupt) {
		c.irq.Clear()
		c.serviceInterrupt(IRQVector, false)
		c.cycles += 7
		return 7, nil
	}

	op := c.Mem.Read(c.Reg.PC)
	c.Reg.PC++
	c.penalty = 0

	entry := opcodeTable[op]
	if entry.exec == nil {
		return 0, UnknownOpcodeError{Opcode: op, PC: c.Reg.PC - 1}
	}

	addr, penalty := c.decode(entry.mode)
	c.penalty += penalty
	entry.exec(c, entry.mode, addr)

	n := uint64(entry.cycles + c.penalty)
	c.cycles += n
	return n, nil
}

// serviceInterrupt pushes PC and P (with B set according to brk) and
// loads PC from vector. Used by both the IRQ/NMI loop and BRK, whose
// only behavioral difference is whether B is set in the pushed P and
// which vector is consulted.
func (c *CPU) serviceInterrupt(vector uint16, brk bool) {
	c.pushWord(c.Reg.PC)
	p := c.Reg.P | registers.Unused
	if brk {
		p |= registers.Break
	} else {
		p &^= registers.Break
	}
	c.push(p)
	c.Reg.SetFlag(registers.Interrupt)
	c.Reg.PC = c.Mem.ReadWord(vector)
}

// push writes b to the stack and moves SP down by one.
func (c *CPU) push(b uint8) {
	c.Mem.Write(c.Reg.PushAddr(), b)
}

// pop reads the next byte off the stack and moves SP up by one.
func (c *CPU) pop() uint8 {
	return c.Mem.Read(c.Reg.PopAddr())
}

// pushWord pushes w as two bytes, high byte first, so a matching popWord
// yields w back (low byte popped first, then high).
func (c *CPU) pushWord(w uint16) {
	c.push(uint8(w >> 8))
	c.push(uint8(w & 0xFF))
}

// popWord composes two pops (low byte first, then high) into a word.
func (c *CPU) popWord() uint16 {
	lo := c.pop()
	hi := c.pop()
	return uint16(hi)<<8 | uint16(lo)
}
