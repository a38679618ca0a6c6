package cpu

// opcodeEntry describes one byte value's instruction: its mnemonic (for
// disassembly and errors), the addressing mode its operand is fetched
// under, its total length in bytes including the opcode byte, its base
// cycle count, and the handler implementing its semantics.
type opcodeEntry struct {
	Mnemonic string
	Mode     AddressingMode
	Length   uint8
	Cycles   uint8
	Terminal bool
	Handler  handlerFunc
}

// opcodeTable is a dense 256-entry dispatch table: O(1) lookup with no
// branch misprediction across the full opcode space. A nil entry is an
// opcode this core does not implement (the undocumented/illegal opcodes
// are out of scope; only the documented instruction set is covered).
var opcodeTable [256]*opcodeEntry

func op(code uint8, mnemonic string, mode AddressingMode, length, cycles uint8, handler handlerFunc) {
	opcodeTable[code] = &opcodeEntry{Mnemonic: mnemonic, Mode: mode, Length: length, Cycles: cycles, Handler: handler}
}

func init() {
	op(0x00, "BRK", Implied, 1, 7, brk)
	opcodeTable[0x00].Terminal = true

	// Loads.
	op(0xA9, "LDA", Immediate, 2, 2, lda)
	op(0xA5, "LDA", ZeroPage, 2, 3, lda)
	op(0xB5, "LDA", ZeroPageX, 2, 4, lda)
	op(0xAD, "LDA", Absolute, 3, 4, lda)
	op(0xBD, "LDA", AbsoluteX, 3, 4, lda)
	op(0xB9, "LDA", AbsoluteY, 3, 4, lda)
	op(0xA1, "LDA", IndirectX, 2, 6, lda)
	op(0xB1, "LDA", IndirectY, 2, 5, lda)

	op(0xA2, "LDX", Immediate, 2, 2, ldx)
	op(0xA6, "LDX", ZeroPage, 2, 3, ldx)
	op(0xB6, "LDX", ZeroPageY, 2, 4, ldx)
	op(0xAE, "LDX", Absolute, 3, 4, ldx)
	op(0xBE, "LDX", AbsoluteY, 3, 4, ldx)

	op(0xA0, "LDY", Immediate, 2, 2, ldy)
	op(0xA4, "LDY", ZeroPage, 2, 3, ldy)
	op(0xB4, "LDY", ZeroPageX, 2, 4, ldy)
	op(0xAC, "LDY", Absolute, 3, 4, ldy)
	op(0xBC, "LDY", AbsoluteX, 3, 4, ldy)

	// Stores.
	op(0x85, "STA", ZeroPage, 2, 3, sta)
	op(0x95, "STA", ZeroPageX, 2, 4, sta)
	op(0x8D, "STA", Absolute, 3, 4, sta)
	op(0x9D, "STA", AbsoluteX, 3, 5, sta)
	op(0x99, "STA", AbsoluteY, 3, 5, sta)
	op(0x81, "STA", IndirectX, 2, 6, sta)
	op(0x91, "STA", IndirectY, 2, 6, sta)

	op(0x86, "STX", ZeroPage, 2, 3, stx)
	op(0x96, "STX", ZeroPageY, 2, 4, stx)
	op(0x8E, "STX", Absolute, 3, 4, stx)

	op(0x84, "STY", ZeroPage, 2, 3, sty)
	op(0x94, "STY", ZeroPageX, 2, 4, sty)
	op(0x8C, "STY", Absolute, 3, 4, sty)

	// Transfers.
	op(0xAA, "TAX", Implied, 1, 2, tax)
	op(0xA8, "TAY", Implied, 1, 2, tay)
	op(0x8A, "TXA", Implied, 1, 2, txa)
	op(0x98, "TYA", Implied, 1, 2, tya)
	op(0xBA, "TSX", Implied, 1, 2, tsx)
	op(0x9A, "TXS", Implied, 1, 2, txs)

	// Increments / decrements.
	op(0xE8, "INX", Implied, 1, 2, inx)
	op(0xC8, "INY", Implied, 1, 2, iny)
	op(0xCA, "DEX", Implied, 1, 2, dex)
	op(0x88, "DEY", Implied, 1, 2, dey)

	op(0xE6, "INC", ZeroPage, 2, 5, inc)
	op(0xF6, "INC", ZeroPageX, 2, 6, inc)
	op(0xEE, "INC", Absolute, 3, 6, inc)
	op(0xFE, "INC", AbsoluteX, 3, 7, inc)

	op(0xC6, "DEC", ZeroPage, 2, 5, dec)
	op(0xD6, "DEC", ZeroPageX, 2, 6, dec)
	op(0xCE, "DEC", Absolute, 3, 6, dec)
	op(0xDE, "DEC", AbsoluteX, 3, 7, dec)

	// Arithmetic.
	op(0x69, "ADC", Immediate, 2, 2, adc)
	op(0x65, "ADC", ZeroPage, 2, 3, adc)
	op(0x75, "ADC", ZeroPageX, 2, 4, adc)
	op(0x6D, "ADC", Absolute, 3, 4, adc)
	op(0x7D, "ADC", AbsoluteX, 3, 4, adc)
	op(0x79, "ADC", AbsoluteY, 3, 4, adc)
	op(0x61, "ADC", IndirectX, 2, 6, adc)
	op(0x71, "ADC", IndirectY, 2, 5, adc)

	op(0xE9, "SBC", Immediate, 2, 2, sbc)
	op(0xE5, "SBC", ZeroPage, 2, 3, sbc)
	op(0xF5, "SBC", ZeroPageX, 2, 4, sbc)
	op(0xED, "SBC", Absolute, 3, 4, sbc)
	op(0xFD, "SBC", AbsoluteX, 3, 4, sbc)
	op(0xF9, "SBC", AbsoluteY, 3, 4, sbc)
	op(0xE1, "SBC", IndirectX, 2, 6, sbc)
	op(0xF1, "SBC", IndirectY, 2, 5, sbc)

	op(0xC9, "CMP", Immediate, 2, 2, cmp)
	op(0xC5, "CMP", ZeroPage, 2, 3, cmp)
	op(0xD5, "CMP", ZeroPageX, 2, 4, cmp)
	op(0xCD, "CMP", Absolute, 3, 4, cmp)
	op(0xDD, "CMP", AbsoluteX, 3, 4, cmp)
	op(0xD9, "CMP", AbsoluteY, 3, 4, cmp)
	op(0xC1, "CMP", IndirectX, 2, 6, cmp)
	op(0xD1, "CMP", IndirectY, 2, 5, cmp)

	op(0xE0, "CPX", Immediate, 2, 2, cpx)
	op(0xE4, "CPX", ZeroPage, 2, 3, cpx)
	op(0xEC, "CPX", Absolute, 3, 4, cpx)

	op(0xC0, "CPY", Immediate, 2, 2, cpy)
	op(0xC4, "CPY", ZeroPage, 2, 3, cpy)
	op(0xCC, "CPY", Absolute, 3, 4, cpy)

	// Logical.
	op(0x29, "AND", Immediate, 2, 2, and)
	op(0x25, "AND", ZeroPage, 2, 3, and)
	op(0x35, "AND", ZeroPageX, 2, 4, and)
	op(0x2D, "AND", Absolute, 3, 4, and)
	op(0x3D, "AND", AbsoluteX, 3, 4, and)
	op(0x39, "AND", AbsoluteY, 3, 4, and)
	op(0x21, "AND", IndirectX, 2, 6, and)
	op(0x31, "AND", IndirectY, 2, 5, and)

	op(0x09, "ORA", Immediate, 2, 2, ora)
	op(0x05, "ORA", ZeroPage, 2, 3, ora)
	op(0x15, "ORA", ZeroPageX, 2, 4, ora)
	op(0x0D, "ORA", Absolute, 3, 4, ora)
	op(0x1D, "ORA", AbsoluteX, 3, 4, ora)
	op(0x19, "ORA", AbsoluteY, 3, 4, ora)
	op(0x01, "ORA", IndirectX, 2, 6, ora)
	op(0x11, "ORA", IndirectY, 2, 5, ora)

	op(0x49, "EOR", Immediate, 2, 2, eor)
	op(0x45, "EOR", ZeroPage, 2, 3, eor)
	op(0x55, "EOR", ZeroPageX, 2, 4, eor)
	op(0x4D, "EOR", Absolute, 3, 4, eor)
	op(0x5D, "EOR", AbsoluteX, 3, 4, eor)
	op(0x59, "EOR", AbsoluteY, 3, 4, eor)
	op(0x41, "EOR", IndirectX, 2, 6, eor)
	op(0x51, "EOR", IndirectY, 2, 5, eor)

	op(0x24, "BIT", ZeroPage, 2, 3, bit)
	op(0x2C, "BIT", Absolute, 3, 4, bit)

	// Shifts and rotates.
	op(0x0A, "ASL", Accumulator, 1, 2, asl)
	op(0x06, "ASL", ZeroPage, 2, 5, asl)
	op(0x16, "ASL", ZeroPageX, 2, 6, asl)
	op(0x0E, "ASL", Absolute, 3, 6, asl)
	op(0x1E, "ASL", AbsoluteX, 3, 7, asl)

	op(0x4A, "LSR", Accumulator, 1, 2, lsr)
	op(0x46, "LSR", ZeroPage, 2, 5, lsr)
	op(0x56, "LSR", ZeroPageX, 2, 6, lsr)
	op(0x4E, "LSR", Absolute, 3, 6, lsr)
	op(0x5E, "LSR", AbsoluteX, 3, 7, lsr)

	op(0x2A, "ROL", Accumulator, 1, 2, rol)
	op(0x26, "ROL", ZeroPage, 2, 5, rol)
	op(0x36, "ROL", ZeroPageX, 2, 6, rol)
	op(0x2E, "ROL", Absolute, 3, 6, rol)
	op(0x3E, "ROL", AbsoluteX, 3, 7, rol)

	op(0x6A, "ROR", Accumulator, 1, 2, ror)
	op(0x66, "ROR", ZeroPage, 2, 5, ror)
	op(0x76, "ROR", ZeroPageX, 2, 6, ror)
	op(0x6E, "ROR", Absolute, 3, 6, ror)
	op(0x7E, "ROR", AbsoluteX, 3, 7, ror)

	// Control flow.
	op(0x4C, "JMP", Absolute, 3, 3, jmp)
	op(0x6C, "JMP", Indirect, 3, 5, jmp)
	op(0x20, "JSR", Absolute, 3, 6, jsr)
	op(0x60, "RTS", Implied, 1, 6, rts)
	op(0x40, "RTI", Implied, 1, 6, rti)

	op(0x90, "BCC", Relative, 2, 2, bcc)
	op(0xB0, "BCS", Relative, 2, 2, bcs)
	op(0xF0, "BEQ", Relative, 2, 2, beq)
	op(0xD0, "BNE", Relative, 2, 2, bne)
	op(0x30, "BMI", Relative, 2, 2, bmi)
	op(0x10, "BPL", Relative, 2, 2, bpl)
	op(0x70, "BVS", Relative, 2, 2, bvs)
	op(0x50, "BVC", Relative, 2, 2, bvc)

	// Stack.
	op(0x48, "PHA", Implied, 1, 3, pha)
	op(0x68, "PLA", Implied, 1, 4, pla)
	op(0x08, "PHP", Implied, 1, 3, php)
	op(0x28, "PLP", Implied, 1, 4, plp)

	// Flags.
	op(0x18, "CLC", Implied, 1, 2, clc)
	op(0x38, "SEC", Implied, 1, 2, sec)
	op(0xD8, "CLD", Implied, 1, 2, cld)
	op(0xF8, "SED", Implied, 1, 2, sed)
	op(0x58, "CLI", Implied, 1, 2, cli)
	op(0x78, "SEI", Implied, 1, 2, sei)
	op(0xB8, "CLV", Implied, 1, 2, clv)

	// Misc.
	op(0xEA, "NOP", Implied, 1, 2, nop)
}
