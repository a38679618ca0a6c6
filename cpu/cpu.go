// Package cpu implements the MOS 6502's documented instruction set: its
// registers, status flags, addressing modes, and fetch/decode/execute loop.
// It executes one instruction at a time to completion; it does not model
// sub-instruction bus cycles, interrupts, or undocumented/illegal opcodes.
package cpu

import "fmt"

// UnknownOpcodeError is returned when Step fetches a byte with no entry in
// opcodeTable.
type UnknownOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e UnknownOpcodeError) Error() string {
	return fmt.Sprintf("cpu: unknown opcode 0x%02X at PC 0x%04X", e.Opcode, e.PC)
}

// UnsupportedAddressingModeError is returned by a handler given a mode it
// has no semantics for. A correctly built opcodeTable never triggers this;
// it exists so a malformed table entry fails loudly instead of corrupting
// register state.
type UnsupportedAddressingModeError struct {
	Mnemonic string
	Mode     AddressingMode
}

func (e UnsupportedAddressingModeError) Error() string {
	return fmt.Sprintf("cpu: %s does not support %s addressing", e.Mnemonic, e.Mode)
}

// Load copies image into the bus at base and points the reset vector at it.
// Call Reset afterward to bring PC (and S, and the other reset-affected
// registers) to their power-on values.
func (c *CPU) Load(image []byte, base uint16) {
	c.bus.Load(image, base)
	c.bus.WriteWord(ResetVector, base)
}

// Reset sets A, X, and P to zero, S to 0xFD, and loads PC from the reset
// vector. Y is deliberately left untouched: this mirrors the original
// source's reset(), which never assigned register_y either.
func (c *CPU) Reset() {
	c.A = 0
	c.X = 0
	c.P = 0
	c.S = resetStackPointer
	c.PC = c.bus.ReadWord(ResetVector)
}

// Step executes exactly one instruction: fetch the opcode at PC, advance
// PC past it, dispatch to the opcode's handler, then advance PC past any
// operand bytes the handler left unconsumed. JMP, JSR, RTS, RTI, and taken
// branches set PC themselves and tell Step not to add anything further; it
// reports done=true on BRK or on any error.
func (c *CPU) Step() (done bool, err error) {
	opcodeAddr := c.PC
	opcode := c.bus.Read(c.PC)
	c.PC++

	entry := opcodeTable[opcode]
	if entry == nil {
		return true, UnknownOpcodeError{Opcode: opcode, PC: opcodeAddr}
	}
	if entry.Terminal {
		return true, nil
	}

	advance, err := entry.Handler(c, entry.Mode)
	if err != nil {
		return true, err
	}
	if advance {
		c.PC += uint16(entry.Length) - 1
	}
	return false, nil
}

// Run executes instructions until BRK or an error.
func (c *CPU) Run() error {
	return c.RunWithCallback(nil)
}

// RunWithCallback executes instructions until BRK or an error, invoking cb
// (if non-nil) immediately before each Step, so a host can observe the state
// ahead of every instruction of an uninterrupted run.
func (c *CPU) RunWithCallback(cb func(*CPU)) error {
	for {
		if cb != nil {
			cb(c)
		}
		done, err := c.Step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// Lookup returns the mnemonic, addressing mode, and byte length for opcode,
// for use by disassemblers and trace UIs. ok is false for opcodes this core
// does not implement.
func Lookup(opcode uint8) (mnemonic string, mode AddressingMode, length uint8, ok bool) {
	entry := opcodeTable[opcode]
	if entry == nil {
		return "", Implied, 0, false
	}
	return entry.Mnemonic, entry.Mode, entry.Length, true
}
