package cpu

// opcodeEntry binds one opcode byte to the instruction family it
// dispatches to, the addressing mode that supplies its operand, and its
// base cycle cost (before any page-cross/branch-taken penalty). A dense
// 256-entry array indexed directly by opcode byte, rather than a
// closure-per-opcode table or a 256-case switch: a single dispatch site
// interprets (mnemonic, mode, cycles) per entry.
type opcodeEntry struct {
	mnemonic string
	mode     addrMode
	cycles   int
	exec     execFunc
}

// opcodeTable is indexed directly by the fetched opcode byte. Unmapped
// entries (exec == nil) are undocumented opcodes; these are not
// implemented and fault Step with UnknownOpcodeError.
var opcodeTable [256]opcodeEntry

func reg(op uint8, mnemonic string, mode addrMode, cycles int, exec execFunc) {
	opcodeTable[op] = opcodeEntry{mnemonic: mnemonic, mode: mode, cycles: cycles, exec: exec}
}

func init() {
	// ADC
	reg(0x69, "ADC", modeImm, 2, opADC)
	reg(0x65, "ADC", modeZP, 3, opADC)
	reg(0x75, "ADC", modeZPX, 4, opADC)
	reg(0x6D, "ADC", modeAbs, 4, opADC)
	reg(0x7D, "ADC", modeAbsX, 4, opADC)
	reg(0x79, "ADC", modeAbsY, 4, opADC)
	reg(0x61, "ADC", modeIZX, 6, opADC)
	reg(0x71, "ADC", modeIZY, 5, opADC)

	// AND
	reg(0x29, "AND", modeImm, 2, opAND)
	reg(0x25, "AND", modeZP, 3, opAND)
	reg(0x35, "AND", modeZPX, 4, opAND)
	reg(0x2D, "AND", modeAbs, 4, opAND)
	reg(0x3D, "AND", modeAbsX, 4, opAND)
	reg(0x39, "AND", modeAbsY, 4, opAND)
	reg(0x21, "AND", modeIZX, 6, opAND)
	reg(0x31, "AND", modeIZY, 5, opAND)

	// ASL
	reg(0x0A, "ASL", modeAcc, 2, opASL)
	reg(0x06, "ASL", modeZP, 5, opASL)
	reg(0x16, "ASL", modeZPX, 6, opASL)
	reg(0x0E, "ASL", modeAbs, 6, opASL)
	reg(0x1E, "ASL", modeAbsX, 7, opASL)

	// Branches
	reg(0x90, "BCC", modeRel, 2, opBCC)
	reg(0xB0, "BCS", modeRel, 2, opBCS)
	reg(0xF0, "BEQ", modeRel, 2, opBEQ)
	reg(0x30, "BMI", modeRel, 2, opBMI)
	reg(0xD0, "BNE", modeRel, 2, opBNE)
	reg(0x10, "BPL", modeRel, 2, opBPL)
	reg(0x50, "BVC", modeRel, 2, opBVC)
	reg(0x70, "BVS", modeRel, 2, opBVS)

	// BIT
	reg(0x24, "BIT", modeZP, 3, opBIT)
	reg(0x2C, "BIT", modeAbs, 4, opBIT)

	// BRK
	reg(0x00, "BRK", modeImplied, 7, opBRK)

	// Flag ops
	reg(0x18, "CLC", modeImplied, 2, opCLC)
	reg(0xD8, "CLD", modeImplied, 2, opCLD)
	reg(0x58, "CLI", modeImplied, 2, opCLI)
	reg(0xB8, "CLV", modeImplied, 2, opCLV)
	reg(0x38, "SEC", modeImplied, 2, opSEC)
	reg(0xF8, "SED", modeImplied, 2, opSED)
	reg(0x78, "SEI", modeImplied, 2, opSEI)

	// CMP / CPX / CPY
	reg(0xC9, "CMP", modeImm, 2, opCMP)
	reg(0xC5, "CMP", modeZP, 3, opCMP)
	reg(0xD5, "CMP", modeZPX, 4, opCMP)
	reg(0xCD, "CMP", modeAbs, 4, opCMP)
	reg(0xDD, "CMP", modeAbsX, 4, opCMP)
	reg(0xD9, "CMP", modeAbsY, 4, opCMP)
	reg(0xC1, "CMP", modeIZX, 6, opCMP)
	reg(0xD1, "CMP", modeIZY, 5, opCMP)
	reg(0xE0, "CPX", modeImm, 2, opCPX)
	reg(0xE4, "CPX", modeZP, 3, opCPX)
	reg(0xEC, "CPX", modeAbs, 4, opCPX)
	reg(0xC0, "CPY", modeImm, 2, opCPY)
	reg(0xC4, "CPY", modeZP, 3, opCPY)
	reg(0xCC, "CPY", modeAbs, 4, opCPY)

	// DEC / DEX / DEY
	reg(0xC6, "DEC", modeZP, 5, opDEC)
	reg(0xD6, "DEC", modeZPX, 6, opDEC)
	reg(0xCE, "DEC", modeAbs, 6, opDEC)
	reg(0xDE, "DEC", modeAbsX, 7, opDEC)
	reg(0xCA, "DEX", modeImplied, 2, opDEX)
	reg(0x88, "DEY", modeImplied, 2, opDEY)

	// EOR
	reg(0x49, "EOR", modeImm, 2, opEOR)
	reg(0x45, "EOR", modeZP, 3, opEOR)
	reg(0x55, "EOR", modeZPX, 4, opEOR)
	reg(0x4D, "EOR", modeAbs, 4, opEOR)
	reg(0x5D, "EOR", modeAbsX, 4, opEOR)
	reg(0x59, "EOR", modeAbsY, 4, opEOR)
	reg(0x41, "EOR", modeIZX, 6, opEOR)
	reg(0x51, "EOR", modeIZY, 5, opEOR)

	// INC / INX / INY
	reg(0xE6, "INC", modeZP, 5, opINC)
	reg(0xF6, "INC", modeZPX, 6, opINC)
	reg(0xEE, "INC", modeAbs, 6, opINC)
	reg(0xFE, "INC", modeAbsX, 7, opINC)
	reg(0xE8, "INX", modeImplied, 2, opINX)
	reg(0xC8, "INY", modeImplied, 2, opINY)

	// JMP / JSR
	reg(0x4C, "JMP", modeAbs, 3, opJMP)
	reg(0x6C, "JMP", modeInd, 5, opJMP)
	reg(0x20, "JSR", modeAbs, 6, opJSR)

	// LDA / LDX / LDY
	reg(0xA9, "LDA", modeImm, 2, opLDA)
	reg(0xA5, "LDA", modeZP, 3, opLDA)
	reg(0xB5, "LDA", modeZPX, 4, opLDA)
	reg(0xAD, "LDA", modeAbs, 4, opLDA)
	reg(0xBD, "LDA", modeAbsX, 4, opLDA)
	reg(0xB9, "LDA", modeAbsY, 4, opLDA)
	reg(0xA1, "LDA", modeIZX, 6, opLDA)
	reg(0xB1, "LDA", modeIZY, 5, opLDA)
	reg(0xA2, "LDX", modeImm, 2, opLDX)
	reg(0xA6, "LDX", modeZP, 3, opLDX)
	reg(0xB6, "LDX", modeZPY, 4, opLDX)
	reg(0xAE, "LDX", modeAbs, 4, opLDX)
	reg(0xBE, "LDX", modeAbsY, 4, opLDX)
	reg(0xA0, "LDY", modeImm, 2, opLDY)
	reg(0xA4, "LDY", modeZP, 3, opLDY)
	reg(0xB4, "LDY", modeZPX, 4, opLDY)
	reg(0xAC, "LDY", modeAbs, 4, opLDY)
	reg(0xBC, "LDY", modeAbsX, 4, opLDY)

	// LSR
	reg(0x4A, "LSR", modeAcc, 2, opLSR)
	reg(0x46, "LSR", modeZP, 5, opLSR)
	reg(0x56, "LSR", modeZPX, 6, opLSR)
	reg(0x4E, "LSR", modeAbs, 6, opLSR)
	reg(0x5E, "LSR", modeAbsX, 7, opLSR)

	// NOP
	reg(0xEA, "NOP", modeImplied, 2, opNOP)

	// ORA
	reg(0x09, "ORA", modeImm, 2, opORA)
	reg(0x05, "ORA", modeZP, 3, opORA)
	reg(0x15, "ORA", modeZPX, 4, opORA)
	reg(0x0D, "ORA", modeAbs, 4, opORA)
	reg(0x1D, "ORA", modeAbsX, 4, opORA)
	reg(0x19, "ORA", modeAbsY, 4, opORA)
	reg(0x01, "ORA", modeIZX, 6, opORA)
	reg(0x11, "ORA", modeIZY, 5, opORA)

	// Stack
	reg(0x48, "PHA", modeImplied, 3, opPHA)
	reg(0x08, "PHP", modeImplied, 3, opPHP)
	reg(0x68, "PLA", modeImplied, 4, opPLA)
	reg(0x28, "PLP", modeImplied, 4, opPLP)

	// ROL / ROR
	reg(0x2A, "ROL", modeAcc, 2, opROL)
	reg(0x26, "ROL", modeZP, 5, opROL)
	reg(0x36, "ROL", modeZPX, 6, opROL)
	reg(0x2E, "ROL", modeAbs, 6, opROL)
	reg(0x3E, "ROL", modeAbsX, 7, opROL)
	reg(0x6A, "ROR", modeAcc, 2, opROR)
	reg(0x66, "ROR", modeZP, 5, opROR)
	reg(0x76, "ROR", modeZPX, 6, opROR)
	reg(0x6E, "ROR", modeAbs, 6, opROR)
	reg(0x7E, "ROR", modeAbsX, 7, opROR)

	// RTI / RTS
	reg(0x40, "RTI", modeImplied, 6, opRTI)
	reg(0x60, "RTS", modeImplied, 6, opRTS)

	// SBC
	reg(0xE9, "SBC", modeImm, 2, opSBC)
	reg(0xE5, "SBC", modeZP, 3, opSBC)
	reg(0xF5, "SBC", modeZPX, 4, opSBC)
	reg(0xED, "SBC", modeAbs, 4, opSBC)
	reg(0xFD, "SBC", modeAbsX, 4, opSBC)
	reg(0xF9, "SBC", modeAbsY, 4, opSBC)
	reg(0xE1, "SBC", modeIZX, 6, opSBC)
	reg(0xF1, "SBC", modeIZY, 5, opSBC)

	// STA / STX / STY
	reg(0x85, "STA", modeZP, 3, opSTA)
	reg(0x95, "STA", modeZPX, 4, opSTA)
	reg(0x8D, "STA", modeAbs, 4, opSTA)
	reg(0x9D, "STA", modeAbsX, 5, opSTA)
	reg(0x99, "STA", modeAbsY, 5, opSTA)
	reg(0x81, "STA", modeIZX, 6, opSTA)
	reg(0x91, "STA", modeIZY, 6, opSTA)
	reg(0x86, "STX", modeZP, 3, opSTX)
	reg(0x96, "STX", modeZPY, 4, opSTX)
	reg(0x8E, "STX", modeAbs, 4, opSTX)
	reg(0x84, "STY", modeZP, 3, opSTY)
	reg(0x94, "STY", modeZPX, 4, opSTY)
	reg(0x8C, "STY", modeAbs, 4, opSTY)

	// Transfers
	reg(0xAA, "TAX", modeImplied, 2, opTAX)
	reg(0xA8, "TAY", modeImplied, 2, opTAY)
	reg(0xBA, "TSX", modeImplied, 2, opTSX)
	reg(0x8A, "TXA", modeImplied, 2, opTXA)
	reg(0x9A, "TXS", modeImplied, 2, opTXS)
	reg(0x98, "TYA", modeImplied, 2, opTYA)
}
