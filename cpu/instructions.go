package cpu

// handlerFunc is one instruction's semantics: given the mode its opcode byte
// was looked up under, read whatever operand it needs and mutate c. It
// returns advance=true when the dispatch loop still needs to move PC past
// the instruction's remaining operand bytes (every instruction except a
// taken branch or JMP/JSR/RTS/RTI, which leave PC exactly where it belongs).
type handlerFunc func(c *CPU, mode AddressingMode) (advance bool, err error)

// --- loads, stores, transfers ---

func lda(c *CPU, mode AddressingMode) (bool, error) {
	loadRegister(c, &c.A, c.bus.Read(c.operandAddress(mode)))
	return true, nil
}

func ldx(c *CPU, mode AddressingMode) (bool, error) {
	loadRegister(c, &c.X, c.bus.Read(c.operandAddress(mode)))
	return true, nil
}

func ldy(c *CPU, mode AddressingMode) (bool, error) {
	loadRegister(c, &c.Y, c.bus.Read(c.operandAddress(mode)))
	return true, nil
}

func sta(c *CPU, mode AddressingMode) (bool, error) {
	c.bus.Write(c.operandAddress(mode), c.A)
	return true, nil
}

func stx(c *CPU, mode AddressingMode) (bool, error) {
	c.bus.Write(c.operandAddress(mode), c.X)
	return true, nil
}

func sty(c *CPU, mode AddressingMode) (bool, error) {
	c.bus.Write(c.operandAddress(mode), c.Y)
	return true, nil
}

func tax(c *CPU, mode AddressingMode) (bool, error) { loadRegister(c, &c.X, c.A); return true, nil }
func tay(c *CPU, mode AddressingMode) (bool, error) { loadRegister(c, &c.Y, c.A); return true, nil }
func txa(c *CPU, mode AddressingMode) (bool, error) { loadRegister(c, &c.A, c.X); return true, nil }
func tya(c *CPU, mode AddressingMode) (bool, error) { loadRegister(c, &c.A, c.Y); return true, nil }
func tsx(c *CPU, mode AddressingMode) (bool, error) { loadRegister(c, &c.X, c.S); return true, nil }

// txs does not touch Z/N; S is a pointer, not a value being tested.
func txs(c *CPU, mode AddressingMode) (bool, error) {
	c.S = c.X
	return true, nil
}

// --- increments / decrements ---

func inx(c *CPU, mode AddressingMode) (bool, error) { loadRegister(c, &c.X, c.X+1); return true, nil }
func iny(c *CPU, mode AddressingMode) (bool, error) { loadRegister(c, &c.Y, c.Y+1); return true, nil }
func dex(c *CPU, mode AddressingMode) (bool, error) { loadRegister(c, &c.X, c.X-1); return true, nil }
func dey(c *CPU, mode AddressingMode) (bool, error) { loadRegister(c, &c.Y, c.Y-1); return true, nil }

func inc(c *CPU, mode AddressingMode) (bool, error) {
	addr := c.operandAddress(mode)
	val := c.bus.Read(addr) + 1
	c.bus.Write(addr, val)
	c.setZN(val)
	return true, nil
}

func dec(c *CPU, mode AddressingMode) (bool, error) {
	addr := c.operandAddress(mode)
	val := c.bus.Read(addr) - 1
	c.bus.Write(addr, val)
	c.setZN(val)
	return true, nil
}

// --- arithmetic ---

// adcValue is shared by ADC and SBC; SBC is ADC with the operand
// bitwise-inverted, the identity this core's arithmetic relies on instead
// of a second carry/borrow implementation.
func (c *CPU) adcValue(m uint8) {
	carry := uint16(0)
	if c.TestFlag(FlagCarry) {
		carry = 1
	}
	a := c.A
	sum := uint16(a) + uint16(m) + carry
	result := uint8(sum)
	c.setCarry(sum)
	c.SetFlagIf(FlagOverflow, (a^result)&(m^result)&0x80 != 0)
	c.A = result
	c.setZN(c.A)
}

func adc(c *CPU, mode AddressingMode) (bool, error) {
	c.adcValue(c.bus.Read(c.operandAddress(mode)))
	return true, nil
}

func sbc(c *CPU, mode AddressingMode) (bool, error) {
	c.adcValue(^c.bus.Read(c.operandAddress(mode)))
	return true, nil
}

// compare is shared by CMP/CPX/CPY.
func compare(c *CPU, reg, m uint8) {
	result := reg - m
	c.SetFlagIf(FlagCarry, reg >= m)
	c.SetFlagIf(FlagZero, reg == m)
	c.SetFlagIf(FlagNegative, result&0x80 != 0)
}

func cmp(c *CPU, mode AddressingMode) (bool, error) {
	compare(c, c.A, c.bus.Read(c.operandAddress(mode)))
	return true, nil
}

func cpx(c *CPU, mode AddressingMode) (bool, error) {
	compare(c, c.X, c.bus.Read(c.operandAddress(mode)))
	return true, nil
}

func cpy(c *CPU, mode AddressingMode) (bool, error) {
	compare(c, c.Y, c.bus.Read(c.operandAddress(mode)))
	return true, nil
}

// --- logical ---

func and(c *CPU, mode AddressingMode) (bool, error) {
	loadRegister(c, &c.A, c.A&c.bus.Read(c.operandAddress(mode)))
	return true, nil
}

func ora(c *CPU, mode AddressingMode) (bool, error) {
	loadRegister(c, &c.A, c.A|c.bus.Read(c.operandAddress(mode)))
	return true, nil
}

func eor(c *CPU, mode AddressingMode) (bool, error) {
	loadRegister(c, &c.A, c.A^c.bus.Read(c.operandAddress(mode)))
	return true, nil
}

func bit(c *CPU, mode AddressingMode) (bool, error) {
	m := c.bus.Read(c.operandAddress(mode))
	c.SetFlagIf(FlagZero, c.A&m == 0)
	c.SetFlagIf(FlagNegative, m&0x80 != 0)
	c.SetFlagIf(FlagOverflow, m&0x40 != 0)
	return true, nil
}

// --- shifts and rotates ---

// shiftOperand reads the byte a shift/rotate instruction acts on and
// returns a closure to write the result back, dispatching on Accumulator
// mode the way the original source's AddressingMode never had to, since it
// implemented no shift/rotate opcodes at all.
func (c *CPU) shiftOperand(mode AddressingMode) (uint8, func(uint8), error) {
	if mode == Accumulator {
		return c.A, func(v uint8) { c.A = v }, nil
	}
	switch mode {
	case ZeroPage, ZeroPageX, Absolute, AbsoluteX:
		addr := c.operandAddress(mode)
		return c.bus.Read(addr), func(v uint8) { c.bus.Write(addr, v) }, nil
	default:
		return 0, nil, UnsupportedAddressingModeError{Mnemonic: "shift/rotate", Mode: mode}
	}
}

func asl(c *CPU, mode AddressingMode) (bool, error) {
	val, write, err := c.shiftOperand(mode)
	if err != nil {
		return true, err
	}
	carry := val&0x80 != 0
	result := val << 1
	c.SetFlagIf(FlagCarry, carry)
	c.setZN(result)
	write(result)
	return true, nil
}

func lsr(c *CPU, mode AddressingMode) (bool, error) {
	val, write, err := c.shiftOperand(mode)
	if err != nil {
		return true, err
	}
	carry := val&0x01 != 0
	result := val >> 1
	c.SetFlagIf(FlagCarry, carry)
	c.setZN(result)
	write(result)
	return true, nil
}

func rol(c *CPU, mode AddressingMode) (bool, error) {
	val, write, err := c.shiftOperand(mode)
	if err != nil {
		return true, err
	}
	var oldCarry uint8
	if c.TestFlag(FlagCarry) {
		oldCarry = 1
	}
	carry := val&0x80 != 0
	result := (val << 1) | oldCarry
	c.SetFlagIf(FlagCarry, carry)
	c.setZN(result)
	write(result)
	return true, nil
}

func ror(c *CPU, mode AddressingMode) (bool, error) {
	val, write, err := c.shiftOperand(mode)
	if err != nil {
		return true, err
	}
	var oldCarry uint8
	if c.TestFlag(FlagCarry) {
		oldCarry = 0x80
	}
	carry := val&0x01 != 0
	result := (val >> 1) | oldCarry
	c.SetFlagIf(FlagCarry, carry)
	c.setZN(result)
	write(result)
	return true, nil
}

// --- control flow ---

func jmp(c *CPU, mode AddressingMode) (bool, error) {
	c.PC = c.operandAddress(mode)
	return false, nil
}

// jsr pushes the address of the last byte of the JSR instruction (high
// byte first, then low), then jumps. PC on entry points at the low operand
// byte, so PC+1 is that last byte's address.
func jsr(c *CPU, mode AddressingMode) (bool, error) {
	target := c.operandAddress(mode)
	ret := c.PC + 1
	c.pushStack(uint8(ret >> 8))
	c.pushStack(uint8(ret))
	c.PC = target
	return false, nil
}

func rts(c *CPU, mode AddressingMode) (bool, error) {
	lo := c.popStack()
	hi := c.popStack()
	c.PC = (uint16(hi)<<8 | uint16(lo)) + 1
	return false, nil
}

func rti(c *CPU, mode AddressingMode) (bool, error) {
	c.P = c.popStack()
	c.SetFlag(FlagUnused)
	c.ClearFlag(FlagBreak)
	lo := c.popStack()
	hi := c.popStack()
	c.PC = uint16(hi)<<8 | uint16(lo)
	return false, nil
}

// branchIf sets PC to the branch target and reports advance=false when cond
// holds; otherwise it leaves PC untouched and reports advance=true so the
// dispatch loop steps past the offset byte itself.
func branchIf(c *CPU, cond bool) (bool, error) {
	if !cond {
		return true, nil
	}
	offset := int8(c.bus.Read(c.PC))
	c.PC = c.PC + 1 + uint16(int16(offset))
	return false, nil
}

func bcc(c *CPU, mode AddressingMode) (bool, error) { return branchIf(c, !c.TestFlag(FlagCarry)) }
func bcs(c *CPU, mode AddressingMode) (bool, error) { return branchIf(c, c.TestFlag(FlagCarry)) }
func beq(c *CPU, mode AddressingMode) (bool, error) { return branchIf(c, c.TestFlag(FlagZero)) }
func bne(c *CPU, mode AddressingMode) (bool, error) { return branchIf(c, !c.TestFlag(FlagZero)) }
func bmi(c *CPU, mode AddressingMode) (bool, error) { return branchIf(c, c.TestFlag(FlagNegative)) }
func bpl(c *CPU, mode AddressingMode) (bool, error) { return branchIf(c, !c.TestFlag(FlagNegative)) }
func bvs(c *CPU, mode AddressingMode) (bool, error) { return branchIf(c, c.TestFlag(FlagOverflow)) }
func bvc(c *CPU, mode AddressingMode) (bool, error) { return branchIf(c, !c.TestFlag(FlagOverflow)) }

// --- stack ---

func pha(c *CPU, mode AddressingMode) (bool, error) { c.pushStack(c.A); return true, nil }

func php(c *CPU, mode AddressingMode) (bool, error) {
	c.pushStack(c.P | FlagUnused | FlagBreak)
	return true, nil
}

func pla(c *CPU, mode AddressingMode) (bool, error) {
	loadRegister(c, &c.A, c.popStack())
	return true, nil
}

func plp(c *CPU, mode AddressingMode) (bool, error) {
	c.P = c.popStack()
	c.SetFlag(FlagUnused)
	c.ClearFlag(FlagBreak)
	return true, nil
}

// --- flag instructions ---

func clc(c *CPU, mode AddressingMode) (bool, error) { c.ClearFlag(FlagCarry); return true, nil }
func sec(c *CPU, mode AddressingMode) (bool, error) { c.SetFlag(FlagCarry); return true, nil }
func cld(c *CPU, mode AddressingMode) (bool, error) { c.ClearFlag(FlagDecimal); return true, nil }
func sed(c *CPU, mode AddressingMode) (bool, error) { c.SetFlag(FlagDecimal); return true, nil }
func cli(c *CPU, mode AddressingMode) (bool, error) { c.ClearFlag(FlagInterrupt); return true, nil }
func sei(c *CPU, mode AddressingMode) (bool, error) { c.SetFlag(FlagInterrupt); return true, nil }
func clv(c *CPU, mode AddressingMode) (bool, error) { c.ClearFlag(FlagOverflow); return true, nil }

// --- misc ---

func nop(c *CPU, mode AddressingMode) (bool, error) { return true, nil }

// brk is never invoked through the table; opcode 0x00's entry is marked
// Terminal and the dispatch loop returns before reaching a handler call.
// It exists so opcodeEntry never holds a nil Handler.
func brk(c *CPU, mode AddressingMode) (bool, error) { return true, nil }
