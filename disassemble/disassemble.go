// Package disassemble renders the instruction at a given address as text.
// It does not interpret control flow: a JMP disassembles as "JMP $1234"
// without following the jump.
package disassemble

import (
	"fmt"

	"github.com/retrostack/go6502/cpu"
	"github.com/retrostack/go6502/memory"
)

// Step disassembles the instruction at pc and returns its text along with
// the number of bytes it occupies, so a caller can add that to pc to reach
// the next instruction. For an implemented opcode it reads the two bytes
// after pc whatever the instruction's length; addresses wrap past 0xFFFF.
func Step(pc uint16, bus memory.Bus) (string, int) {
	opcode := bus.Read(pc)
	mnemonic, mode, length, ok := cpu.Lookup(opcode)
	if !ok {
		return fmt.Sprintf(".BYTE $%02X", opcode), 1
	}

	b1 := bus.Read(pc + 1)
	b2 := bus.Read(pc + 2)

	var operand string
	switch mode {
	case cpu.Implied:
		operand = ""
	case cpu.Accumulator:
		operand = " A"
	case cpu.Immediate:
		operand = fmt.Sprintf(" #$%02X", b1)
	case cpu.ZeroPage:
		operand = fmt.Sprintf(" $%02X", b1)
	case cpu.ZeroPageX:
		operand = fmt.Sprintf(" $%02X,X", b1)
	case cpu.ZeroPageY:
		operand = fmt.Sprintf(" $%02X,Y", b1)
	case cpu.Absolute:
		operand = fmt.Sprintf(" $%02X%02X", b2, b1)
	case cpu.AbsoluteX:
		operand = fmt.Sprintf(" $%02X%02X,X", b2, b1)
	case cpu.AbsoluteY:
		operand = fmt.Sprintf(" $%02X%02X,Y", b2, b1)
	case cpu.Indirect:
		operand = fmt.Sprintf(" ($%02X%02X)", b2, b1)
	case cpu.IndirectX:
		operand = fmt.Sprintf(" ($%02X,X)", b1)
	case cpu.IndirectY:
		operand = fmt.Sprintf(" ($%02X),Y", b1)
	case cpu.Relative:
		target := pc + 2 + uint16(int16(int8(b1)))
		operand = fmt.Sprintf(" $%04X", target)
	}

	return mnemonic + operand, int(length)
}
