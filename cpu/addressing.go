package cpu

// addrMode names a 6502 addressing mode. Mirrors the mnemonics used in
// the opcode table and in disassembly.
type addrMode int

const (
	modeImplied addrMode = iota
	modeAcc              // operates on the accumulator directly, no operand byte
	modeImm              // #i — operand is the byte itself, not an address
	modeZP               // d
	modeZPX              // d,x
	modeZPY              // d,y
	modeAbs              // a
	modeAbsX             // a,x
	modeAbsY             // a,y
	modeInd              // (a) — only used by JMP, carries the page-boundary bug
	modeIZX              // (d,x)
	modeIZY              // (d),y
	modeRel              // branch target, relative to PC
)

// decode consumes the operand bytes for mode at the current PC (advancing
// it) and returns the effective address (or, for modeImm, the address of
// the immediate operand byte — reading through Mem at that address yields
// the value) plus any page-cross penalty in cycles. modeImplied and
// modeAcc consume nothing and return (0, 0); callers must not read
// through the returned address for those.
func (c *CPU) decode(mode addrMode) (addr uint16, penalty int) {
	switch mode {
	case modeImplied, modeAcc:
		return 0, 0
	case modeImm:
		addr = c.Reg.PC
		c.Reg.PC++
		return addr, 0
	case modeZP:
		b := c.Mem.Read(c.Reg.PC)
		c.Reg.PC++
		return uint16(b), 0
	case modeZPX:
		b := c.Mem.Read(c.Reg.PC)
		c.Reg.PC++
		return uint16((b + c.Reg.X) & 0xFF), 0
	case modeZPY:
		b := c.Mem.Read(c.Reg.PC)
		c.Reg.PC++
		return uint16((b + c.Reg.Y) & 0xFF), 0
	case modeAbs:
		w := c.Mem.ReadWord(c.Reg.PC)
		c.Reg.PC += 2
		return w, 0
	case modeAbsX:
		return c.decodeAbsIndexed(c.Reg.X)
	case modeAbsY:
		return c.decodeAbsIndexed(c.Reg.Y)
	case modeInd:
		ptr := c.Mem.ReadWord(c.Reg.PC)
		c.Reg.PC += 2
		return c.readIndirectBug(ptr), 0
	case modeIZX:
		zp := c.Mem.Read(c.Reg.PC)
		c.Reg.PC++
		ptr := (zp + c.Reg.X) & 0xFF
		return c.readZPWord(ptr), 0
	case modeIZY:
		zp := c.Mem.Read(c.Reg.PC)
		c.Reg.PC++
		base := c.readZPWord(zp)
		addr = base + uint16(c.Reg.Y)
		if pageCrossed(base, addr) {
			penalty = 1
		}
		return addr, penalty
	case modeRel:
		off := c.Mem.Read(c.Reg.PC)
		c.Reg.PC++
		return c.Reg.PC + uint16(int16(int8(off))), 0
	}
	return 0, 0
}

// decodeAbsIndexed implements ABX/ABY: word operand plus the given index
// register, with a page-cross penalty when the high byte changes.
func (c *CPU) decodeAbsIndexed(reg uint8) (addr uint16, penalty int) {
	w := c.Mem.ReadWord(c.Reg.PC)
	c.Reg.PC += 2
	addr = w + uint16(reg)
	if pageCrossed(w, addr) {
		penalty = 1
	}
	return addr, penalty
}

// readIndirectBug dereferences ptr as JMP (a) does, reproducing the
// hardware bug where a pointer with low byte 0xFF fetches its high byte
// from (ptr & 0xFF00) instead of ptr+1.
func (c *CPU) readIndirectBug(ptr uint16) uint16 {
	lo := c.Mem.Read(ptr)
	var hiAddr uint16
	if ptr&0xFF == 0xFF {
		hiAddr = ptr & 0xFF00
	} else {
		hiAddr = ptr + 1
	}
	hi := c.Mem.Read(hiAddr)
	return uint16(hi)<<8 | uint16(lo)
}

// readZPWord reads a little-endian word from zero page starting at ptr,
// wrapping the high-byte fetch within the zero page (ptr=0xFF reads 0xFF
// then 0x00, never crossing into page 1).
func (c *CPU) readZPWord(ptr uint8) uint16 {
	lo := c.Mem.Read(uint16(ptr))
	hi := c.Mem.Read(uint16(ptr + 1))
	return uint16(hi)<<8 | uint16(lo)
}

// pageCrossed reports whether adding an index to base changed the high
// byte of the address.
func pageCrossed(base, indexed uint16) bool {
	return base&0xFF00 != indexed&0xFF00
}
