package cpu

import "github.com/retrostack/go6502/memory"

// Status register bit positions.
const (
	FlagCarry     uint8 = 1 << 0
	FlagZero      uint8 = 1 << 1
	FlagInterrupt uint8 = 1 << 2
	FlagDecimal   uint8 = 1 << 3
	FlagBreak     uint8 = 1 << 4
	FlagUnused    uint8 = 1 << 5 // conventionally always set
	FlagOverflow  uint8 = 1 << 6
	FlagNegative  uint8 = 1 << 7
)

// ResetVector is the address holding the little-endian PC value to load on reset.
const ResetVector = uint16(0xFFFC)

// DefaultLoadBase is the conventional program load address. CPU.Load does not
// apply it; callers always pass a base explicitly.
const DefaultLoadBase = uint16(0x8000)

// resetStackPointer is the architectural value S takes on reset. The source
// this core is grounded on left this inconsistent (some paths never set it);
// 0xFD is the documented value and is what Reset always uses here.
const resetStackPointer = uint8(0xFD)

// CPU holds the full architectural state of a 6502: the register file, the
// status byte, the program counter, the stack pointer, and the bus it
// executes against. Run, Step, and RunWithCallback execute instructions;
// Load, Reset, PokeMemory, and the flag setters also mutate state, and the
// register fields are exported.
type CPU struct {
	A, X, Y uint8
	S       uint8
	P       uint8
	PC      uint16

	bus memory.Bus
}

// New returns a CPU wired to bus, with all registers zero and P cleared.
// Call Load then Reset before Run/Step to begin executing a program.
func New(bus memory.Bus) *CPU {
	return &CPU{bus: bus}
}

// Bus returns the memory bus this CPU executes against, for host inspection
// or for wrapping in an io.MappedBus before constructing the CPU.
func (c *CPU) Bus() memory.Bus {
	return c.bus
}

// PeekMemory reads addr without any instruction-level side effect, for test
// harnesses seeding or inspecting memory around a run.
func (c *CPU) PeekMemory(addr uint16) uint8 {
	return c.bus.Read(addr)
}

// PokeMemory writes val at addr, for test harnesses seeding memory before a run.
func (c *CPU) PokeMemory(addr uint16, val uint8) {
	c.bus.Write(addr, val)
}

// SetFlag sets the given status bit(s).
func (c *CPU) SetFlag(bit uint8) {
	c.P |= bit
}

// ClearFlag clears the given status bit(s).
func (c *CPU) ClearFlag(bit uint8) {
	c.P &^= bit
}

// ToggleFlag flips the given status bit(s).
func (c *CPU) ToggleFlag(bit uint8) {
	c.P ^= bit
}

// TestFlag reports whether every bit in mask is set in P.
func (c *CPU) TestFlag(mask uint8) bool {
	return c.P&mask == mask
}

// SetFlagIf sets bit when cond is true and clears it otherwise. This replaces
// the original source's confused BitwiseOperation::from_bool (which existed
// in two incompatible copies, one taking a bool and one a mistyped "u8"
// named bool) with a single boolean predicate and drops its unused Flip
// variant, which no opcode in this core's documented set needs.
func (c *CPU) SetFlagIf(bit uint8, cond bool) {
	if cond {
		c.SetFlag(bit)
		return
	}
	c.ClearFlag(bit)
}

// setZN sets Z from (result == 0) and N from bit 7 of result, the shared
// check every load/transfer/arithmetic/logical/shift/rotate/inc/dec
// instruction applies to its result.
func (c *CPU) setZN(result uint8) {
	c.SetFlagIf(FlagZero, result == 0)
	c.SetFlagIf(FlagNegative, result&0x80 != 0)
}

// setCarry sets C from whether an 8-bit ALU result (given as the wider
// 16-bit sum that produced it) carried out of bit 7.
func (c *CPU) setCarry(sum uint16) {
	c.SetFlagIf(FlagCarry, sum > 0xFF)
}

// pushStack writes val to the stack page and decrements S, wrapping.
func (c *CPU) pushStack(val uint8) {
	c.bus.Write(0x0100+uint16(c.S), val)
	c.S--
}

// popStack increments S, wrapping, and returns the byte now pointed at.
func (c *CPU) popStack() uint8 {
	c.S++
	return c.bus.Read(0x0100 + uint16(c.S))
}

// loadRegister stores val into reg and updates Z/N from it, used by every
// load/transfer/increment/decrement handler so the flag update lives in
// exactly one place.
func loadRegister(c *CPU, reg *uint8, val uint8) {
	*reg = val
	c.setZN(*reg)
}
