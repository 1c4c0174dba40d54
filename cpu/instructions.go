package cpu

import "github.com/sixfiveohtwo/mos6502/registers"

// execFunc is the signature every opcode table entry dispatches to. addr
// is the decoded operand address (meaningless for modeImplied/modeAcc,
// where the instruction operates on registers directly).
type execFunc func(c *CPU, mode addrMode, addr uint16)

// readOperand fetches the operand byte for mode/addr: the accumulator
// for modeAcc, otherwise a memory read.
func (c *CPU) readOperand(mode addrMode, addr uint16) uint8 {
	if mode == modeAcc {
		return c.Reg.A
	}
	return c.Mem.Read(addr)
}

// writeResult stores val back to the operand location: the accumulator
// for modeAcc, otherwise a memory write.
func (c *CPU) writeResult(mode addrMode, addr uint16, val uint8) {
	if mode == modeAcc {
		c.Reg.A = val
		return
	}
	c.Mem.Write(addr, val)
}

// --- Load / store ---

func opLDA(c *CPU, mode addrMode, addr uint16) {
	c.Reg.A = c.Mem.Read(addr)
	c.Reg.UpdateNZ(c.Reg.A)
}

func opLDX(c *CPU, mode addrMode, addr uint16) {
	c.Reg.X = c.Mem.Read(addr)
	c.Reg.UpdateNZ(c.Reg.X)
}

func opLDY(c *CPU, mode addrMode, addr uint16) {
	c.Reg.Y = c.Mem.Read(addr)
	c.Reg.UpdateNZ(c.Reg.Y)
}

func opSTA(c *CPU, mode addrMode, addr uint16) {
	c.Mem.Write(addr, c.Reg.A)
}

func opSTX(c *CPU, mode addrMode, addr uint16) {
	c.Mem.Write(addr, c.Reg.X)
}

func opSTY(c *CPU, mode addrMode, addr uint16) {
	c.Mem.Write(addr, c.Reg.Y)
}

// --- Arithmetic ---

// adcValue implements ADC's binary/decimal split; SBC reuses it with the
// operand's one's complement in binary mode.
func (c *CPU) adcValue(m uint8) {
	carry := c.Reg.P & registers.Carry

	if c.Reg.GetFlag(registers.Decimal) {
		aL := (c.Reg.A & 0x0F) + (m & 0x0F) + carry
		if aL >= 0x0A {
			aL = ((aL + 0x06) & 0x0F) + 0x10
		}
		sum := uint16(c.Reg.A&0xF0) + uint16(m&0xF0) + uint16(aL)
		if sum >= 0xA0 {
			sum += 0x60
		}
		res := uint8(sum & 0xFF)
		seq := (c.Reg.A & 0xF0) + (m & 0xF0) + aL
		bin := c.Reg.A + m + carry
		c.overflowCheck(c.Reg.A, m, seq)
		c.carryCheck(sum)
		c.Reg.ClearFlag(registers.Negative)
		if seq&registers.Negative != 0 {
			c.Reg.SetFlag(registers.Negative)
		}
		if bin == 0 {
			c.Reg.SetFlag(registers.Zero)
		} else {
			c.Reg.ClearFlag(registers.Zero)
		}
		c.Reg.A = res
		return
	}

	sum := c.Reg.A + m + carry
	c.overflowCheck(c.Reg.A, m, sum)
	c.carryCheck(uint16(c.Reg.A) + uint16(m) + uint16(carry))
	c.Reg.A = sum
	c.Reg.UpdateNZ(c.Reg.A)
}

func opADC(c *CPU, mode addrMode, addr uint16) {
	c.adcValue(c.Mem.Read(addr))
}

// sbcValueDecimal implements decimal-mode SBC's nibble-borrow algorithm,
// the mirror of the decimal-ADC nibble-fixup above. N/V/Z/C track the
// plain binary subtraction (A + ^M + C); A takes the BCD-corrected
// result.
func (c *CPU) sbcValueDecimal(m uint8) {
	carry := c.Reg.P & registers.Carry

	aL := int8(c.Reg.A&0x0F) - int8(m&0x0F) + int8(carry) - 1
	if aL < 0 {
		aL = ((aL - 0x06) & 0x0F) - 0x10
	}
	sum := int16(c.Reg.A&0xF0) - int16(m&0xF0) + int16(aL)
	if sum < 0x0000 {
		sum -= 0x60
	}
	res := uint8(sum & 0xFF)

	notM := ^m
	b := c.Reg.A + notM + carry
	c.overflowCheck(c.Reg.A, notM, b)
	c.Reg.UpdateNZ(b)
	c.carryCheck(uint16(c.Reg.A) + uint16(notM) + uint16(carry))
	c.Reg.A = res
}

func opSBC(c *CPU, mode addrMode, addr uint16) {
	m := c.Mem.Read(addr)
	if c.Reg.GetFlag(registers.Decimal) {
		c.sbcValueDecimal(m)
		return
	}
	c.adcValue(^m)
}

// overflowCheck sets V iff the operands' sign bits both oppose the
// result's sign bit — i.e. a signed overflow occurred.
func (c *CPU) overflowCheck(reg, arg, res uint8) {
	c.Reg.ClearFlag(registers.Overflow)
	if (reg^res)&(arg^res)&0x80 != 0 {
		c.Reg.SetFlag(registers.Overflow)
	}
}

// carryCheck sets C iff the (possibly wider than 8 bit) ALU result
// carried out of bit 7.
func (c *CPU) carryCheck(res uint16) {
	if res >= 0x100 {
		c.Reg.SetFlag(registers.Carry)
	} else {
		c.Reg.ClearFlag(registers.Carry)
	}
}

// --- Logical ---

func opAND(c *CPU, mode addrMode, addr uint16) {
	c.Reg.A &= c.Mem.Read(addr)
	c.Reg.UpdateNZ(c.Reg.A)
}

func opORA(c *CPU, mode addrMode, addr uint16) {
	c.Reg.A |= c.Mem.Read(addr)
	c.Reg.UpdateNZ(c.Reg.A)
}

func opEOR(c *CPU, mode addrMode, addr uint16) {
	c.Reg.A ^= c.Mem.Read(addr)
	c.Reg.UpdateNZ(c.Reg.A)
}

// --- Shifts / rotates ---

func opASL(c *CPU, mode addrMode, addr uint16) {
	v := c.readOperand(mode, addr)
	c.carryCheck(uint16(v) << 1)
	r := v << 1
	c.writeResult(mode, addr, r)
	c.Reg.UpdateNZ(r)
}

func opLSR(c *CPU, mode addrMode, addr uint16) {
	v := c.readOperand(mode, addr)
	if v&0x01 != 0 {
		c.Reg.SetFlag(registers.Carry)
	} else {
		c.Reg.ClearFlag(registers.Carry)
	}
	r := v >> 1
	c.writeResult(mode, addr, r)
	c.Reg.UpdateNZ(r)
}

func opROL(c *CPU, mode addrMode, addr uint16) {
	v := c.readOperand(mode, addr)
	carryIn := uint8(0)
	if c.Reg.GetFlag(registers.Carry) {
		carryIn = 1
	}
	c.carryCheck(uint16(v) << 1)
	r := (v << 1) | carryIn
	c.writeResult(mode, addr, r)
	c.Reg.UpdateNZ(r)
}

func opROR(c *CPU, mode addrMode, addr uint16) {
	v := c.readOperand(mode, addr)
	carryIn := uint8(0)
	if c.Reg.GetFlag(registers.Carry) {
		carryIn = 0x80
	}
	carryOut := v&0x01 != 0
	r := (v >> 1) | carryIn
	c.writeResult(mode, addr, r)
	if carryOut {
		c.Reg.SetFlag(registers.Carry)
	} else {
		c.Reg.ClearFlag(registers.Carry)
	}
	c.Reg.UpdateNZ(r)
}

// --- BIT ---

func opBIT(c *CPU, mode addrMode, addr uint16) {
	m := c.Mem.Read(addr)
	if c.Reg.A&m == 0 {
		c.Reg.SetFlag(registers.Zero)
	} else {
		c.Reg.ClearFlag(registers.Zero)
	}
	c.Reg.ClearFlag(registers.Negative)
	if m&registers.Negative != 0 {
		c.Reg.SetFlag(registers.Negative)
	}
	c.Reg.ClearFlag(registers.Overflow)
	if m&registers.Overflow != 0 {
		c.Reg.SetFlag(registers.Overflow)
	}
}

// --- Compare ---

func (c *CPU) compare(reg, m uint8) {
	diff := reg - m
	if reg >= m {
		c.Reg.SetFlag(registers.Carry)
	} else {
		c.Reg.ClearFlag(registers.Carry)
	}
	c.Reg.UpdateNZ(diff)
}

func opCMP(c *CPU, mode addrMode, addr uint16) { c.compare(c.Reg.A, c.Mem.Read(addr)) }
func opCPX(c *CPU, mode addrMode, addr uint16) { c.compare(c.Reg.X, c.Mem.Read(addr)) }
func opCPY(c *CPU, mode addrMode, addr uint16) { c.compare(c.Reg.Y, c.Mem.Read(addr)) }

// --- Increment / decrement ---

func opINC(c *CPU, mode addrMode, addr uint16) {
	v := c.Mem.Read(addr) + 1
	c.Mem.Write(addr, v)
	c.Reg.UpdateNZ(v)
}

func opDEC(c *CPU, mode addrMode, addr uint16) {
	v := c.Mem.Read(addr) - 1
	c.Mem.Write(addr, v)
	c.Reg.UpdateNZ(v)
}

func opINX(c *CPU, mode addrMode, addr uint16) { c.Reg.X++; c.Reg.UpdateNZ(c.Reg.X) }
func opDEX(c *CPU, mode addrMode, addr uint16) { c.Reg.X--; c.Reg.UpdateNZ(c.Reg.X) }
func opINY(c *CPU, mode addrMode, addr uint16) { c.Reg.Y++; c.Reg.UpdateNZ(c.Reg.Y) }
func opDEY(c *CPU, mode addrMode, addr uint16) { c.Reg.Y--; c.Reg.UpdateNZ(c.Reg.Y) }

// --- Branches ---

// branch takes the decoded relative target if take is true: +1 cycle if
// taken, +2 if the branch also crosses a page.
func (c *CPU) branch(take bool, target uint16) {
	if !take {
		return
	}
	from := c.Reg.PC
	c.penalty++
	if pageCrossed(from, target) {
		c.penalty++
	}
	c.Reg.PC = target
}

func opBPL(c *CPU, mode addrMode, addr uint16) { c.branch(!c.Reg.GetFlag(registers.Negative), addr) }
func opBMI(c *CPU, mode addrMode, addr uint16) { c.branch(c.Reg.GetFlag(registers.Negative), addr) }
func opBVC(c *CPU, mode addrMode, addr uint16) { c.branch(!c.Reg.GetFlag(registers.Overflow), addr) }
func opBVS(c *CPU, mode addrMode, addr uint16) { c.branch(c.Reg.GetFlag(registers.Overflow), addr) }
func opBCC(c *CPU, mode addrMode, addr uint16) { c.branch(!c.Reg.GetFlag(registers.Carry), addr) }
func opBCS(c *CPU, mode addrMode, addr uint16) { c.branch(c.Reg.GetFlag(registers.Carry), addr) }
func opBNE(c *CPU, mode addrMode, addr uint16) { c.branch(!c.Reg.GetFlag(registers.Zero), addr) }
func opBEQ(c *CPU, mode addrMode, addr uint16) { c.branch(c.Reg.GetFlag(registers.Zero), addr) }

// --- Jumps / subroutines ---

func opJMP(c *CPU, mode addrMode, addr uint16) {
	c.Reg.PC = addr
}

func opJSR(c *CPU, mode addrMode, addr uint16) {
	c.pushWord(c.Reg.PC - 1)
	c.Reg.PC = addr
}

func opRTS(c *CPU, mode addrMode, addr uint16) {
	c.Reg.PC = c.popWord() + 1
}

// --- BRK / RTI ---

func opBRK(c *CPU, mode addrMode, addr uint16) {
	// Step already advanced PC past the BRK opcode byte itself before
	// calling here; that advance is the padding byte's +1, so no further
	// PC adjustment happens here.
	c.serviceInterrupt(IRQVector, true)
}

func opRTI(c *CPU, mode addrMode, addr uint16) {
	p := c.pop()
	p &^= registers.Break
	p |= registers.Unused
	c.Reg.P = p
	c.Reg.PC = c.popWord()
}

// --- Stack ---

func opPHA(c *CPU, mode addrMode, addr uint16) { c.push(c.Reg.A) }

func opPLA(c *CPU, mode addrMode, addr uint16) {
	c.Reg.A = c.pop()
	c.Reg.UpdateNZ(c.Reg.A)
}

func opPHP(c *CPU, mode addrMode, addr uint16) {
	c.push(c.Reg.P | registers.Break | registers.Unused)
}

func opPLP(c *CPU, mode addrMode, addr uint16) {
	p := c.pop()
	p &^= registers.Break
	p |= registers.Unused
	c.Reg.P = p
}

// --- Flag ops ---

func opCLC(c *CPU, mode addrMode, addr uint16) { c.Reg.ClearFlag(registers.Carry) }
func opSEC(c *CPU, mode addrMode, addr uint16) { c.Reg.SetFlag(registers.Carry) }
func opCLI(c *CPU, mode addrMode, addr uint16) { c.Reg.ClearFlag(registers.Interrupt) }
func opSEI(c *CPU, mode addrMode, addr uint16) { c.Reg.SetFlag(registers.Interrupt) }
func opCLD(c *CPU, mode addrMode, addr uint16) { c.Reg.ClearFlag(registers.Decimal) }
func opSED(c *CPU, mode addrMode, addr uint16) { c.Reg.SetFlag(registers.Decimal) }
func opCLV(c *CPU, mode addrMode, addr uint16) { c.Reg.ClearFlag(registers.Overflow) }

// --- Transfers ---

func opTAX(c *CPU, mode addrMode, addr uint16) { c.Reg.X = c.Reg.A; c.Reg.UpdateNZ(c.Reg.X) }
func opTXA(c *CPU, mode addrMode, addr uint16) { c.Reg.A = c.Reg.X; c.Reg.UpdateNZ(c.Reg.A) }
func opTAY(c *CPU, mode addrMode, addr uint16) { c.Reg.Y = c.Reg.A; c.Reg.UpdateNZ(c.Reg.Y) }
func opTYA(c *CPU, mode addrMode, addr uint16) { c.Reg.A = c.Reg.Y; c.Reg.UpdateNZ(c.Reg.A) }
func opTSX(c *CPU, mode addrMode, addr uint16) { c.Reg.X = c.Reg.SP; c.Reg.UpdateNZ(c.Reg.X) }
func opTXS(c *CPU, mode addrMode, addr uint16) { c.Reg.SP = c.Reg.X } // note: no flag update, unlike TSX

// --- Misc ---

func opNOP(c *CPU, mode addrMode, addr uint16) {}
