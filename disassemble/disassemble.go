// Package disassemble renders the instruction at a given address as
// human-readable text. It is a read-only collaborator kept outside the
// instruction-execution core: it queries cpu's opcode table through
// exported introspection rather than re-executing anything.
package disassemble

import (
	"fmt"

	"github.com/sixfiveohtwo/mos6502/cpu"
	"github.com/sixfiveohtwo/mos6502/mmu"
)

// Step disassembles the instruction at pc and returns its text along
// with the number of bytes (opcode plus operand) the real PC would
// advance past it. It always reads the two bytes after pc, whatever the
// mode; unmapped addresses there simply read as 0.
//
// This does not interpret control flow: a JMP's destination is printed
// but not followed, and memory containing a JMP target is disassembled
// in place exactly as it's laid out.
func Step(pc uint16, mem *mmu.MMU) (string, int) {
	opcode := mem.Read(pc)
	b1 := mem.Read(pc + 1)
	b2 := mem.Read(pc + 2)

	mnemonic, mode, ok := cpu.OpcodeInfo(opcode)
	if !ok {
		return fmt.Sprintf("%.4X %.2X      UNIMPLEMENTED", pc, opcode), 1
	}

	count := 1 + cpu.OperandBytes(mode)
	out := fmt.Sprintf("%.4X %.2X ", pc, opcode)
	switch mode {
	case cpu.ModeImplied:
		out += fmt.Sprintf("        %s           ", mnemonic)
	case cpu.ModeAcc:
		out += fmt.Sprintf("        %s A         ", mnemonic)
	case cpu.ModeImm:
		out += fmt.Sprintf("%.2X      %s #%.2X       ", b1, mnemonic, b1)
	case cpu.ModeZP:
		out += fmt.Sprintf("%.2X      %s %.2X        ", b1, mnemonic, b1)
	case cpu.ModeZPX:
		out += fmt.Sprintf("%.2X      %s %.2X,X      ", b1, mnemonic, b1)
	case cpu.ModeZPY:
		out += fmt.Sprintf("%.2X      %s %.2X,Y      ", b1, mnemonic, b1)
	case cpu.ModeIZX:
		out += fmt.Sprintf("%.2X      %s (%.2X,X)    ", b1, mnemonic, b1)
	case cpu.ModeIZY:
		out += fmt.Sprintf("%.2X      %s (%.2X),Y    ", b1, mnemonic, b1)
	case cpu.ModeAbs:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X      ", b1, b2, mnemonic, b2, b1)
	case cpu.ModeAbsX:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X,X    ", b1, b2, mnemonic, b2, b1)
	case cpu.ModeAbsY:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X,Y    ", b1, b2, mnemonic, b2, b1)
	case cpu.ModeInd:
		out += fmt.Sprintf("%.2X %.2X   %s (%.2X%.2X)    ", b1, b2, mnemonic, b2, b1)
	case cpu.ModeRel:
		target := pc + 2 + uint16(int16(int8(b1)))
		out += fmt.Sprintf("%.2X      %s %.2X (%.4X) ", b1, mnemonic, b1, target)
	default:
		panic(fmt.Sprintf("disassemble: unhandled mode %d", mode))
	}
	return out, count
}
