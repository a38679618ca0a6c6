// Package memory defines the flat 64KiB address space the 6502 core reads
// and writes through. A single implementation is provided; anything a host
// wants mapped into it (ROM banking, memory-mapped peripherals) decorates a
// Bus rather than replacing it, the way io.MappedBus does.
package memory

const Size = 1 << 16

// Bus is the 8/16-bit memory interface the CPU operates against. There are
// no error conditions: every uint16 address is valid.
type Bus interface {
	// Read returns the byte stored at addr.
	Read(addr uint16) uint8
	// Write stores val at addr.
	Write(addr uint16, val uint8)
	// ReadWord returns the little-endian 16-bit value at addr (low byte at
	// addr, high byte at addr+1).
	ReadWord(addr uint16) uint16
	// WriteWord stores val at addr, little-endian.
	WriteWord(addr uint16, val uint16)
	// Load copies data into the bus starting at base. It does not touch the
	// reset vector; callers needing that do it separately (see cpu.CPU.Load).
	Load(data []byte, base uint16)
	// PowerOn zeroes the entire address space.
	PowerOn()
}

// RAM is a flat, byte-addressable 64KiB store. It implements Bus directly;
// there is exactly one of these per CPU instance, since there is only ever
// one bus consumer: the CPU itself.
type RAM struct {
	mem [Size]uint8
}

// NewRAM returns a zeroed 64KiB RAM.
func NewRAM() *RAM {
	r := &RAM{}
	r.PowerOn()
	return r
}

// Read implements Bus.
func (r *RAM) Read(addr uint16) uint8 {
	return r.mem[addr]
}

// Write implements Bus.
func (r *RAM) Write(addr uint16, val uint8) {
	r.mem[addr] = val
}

// ReadWord implements Bus.
func (r *RAM) ReadWord(addr uint16) uint16 {
	lo := uint16(r.mem[addr])
	hi := uint16(r.mem[addr+1])
	return (hi << 8) | lo
}

// WriteWord implements Bus.
func (r *RAM) WriteWord(addr uint16, val uint16) {
	r.mem[addr] = uint8(val & 0xFF)
	r.mem[addr+1] = uint8(val >> 8)
}

// Load implements Bus.
func (r *RAM) Load(data []byte, base uint16) {
	for i, b := range data {
		r.mem[base+uint16(i)] = b
	}
}

// PowerOn implements Bus, zeroing the entire array.
func (r *RAM) PowerOn() {
	for i := range r.mem {
		r.mem[i] = 0
	}
}
