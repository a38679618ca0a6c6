// Package io defines the interfaces a memory-mapped peripheral implements
// to be attached to a bus, and MappedBus, the decorator that routes address
// ranges to them. The core CPU never imports this package; a host wires
// peripherals onto it separately.
package io

import "github.com/retrostack/go6502/memory"

// Port8 is an 8-bit, read side, memory-mapped I/O port.
type Port8 interface {
	// Input returns the value currently presented on the port.
	Input() uint8
}

// Port8Writer is the write side of a memory-mapped I/O port.
type Port8Writer interface {
	// Output latches val onto the port.
	Output(val uint8)
}

// region describes one mapped address range, inclusive [start, end].
type region struct {
	start, end uint16
	read       Port8
	write      Port8Writer
}

func (r region) contains(addr uint16) bool {
	return addr >= r.start && addr <= r.end
}

// MappedBus decorates a memory.Bus, routing reads/writes within declared
// address ranges to an attached Port8/Port8Writer and everything else
// through to the wrapped bus unchanged.
type MappedBus struct {
	memory.Bus
	regions []region
}

// NewMappedBus wraps bus with no ports attached.
func NewMappedBus(bus memory.Bus) *MappedBus {
	return &MappedBus{Bus: bus}
}

// MapPort attaches a port covering [start, end] (inclusive). Either side may
// be nil if the port is read-only or write-only.
func (m *MappedBus) MapPort(start, end uint16, read Port8, write Port8Writer) {
	m.regions = append(m.regions, region{start: start, end: end, read: read, write: write})
}

// Read implements memory.Bus, preferring an attached port over the backing RAM.
func (m *MappedBus) Read(addr uint16) uint8 {
	for _, r := range m.regions {
		if r.contains(addr) && r.read != nil {
			return r.read.Input()
		}
	}
	return m.Bus.Read(addr)
}

// Write implements memory.Bus, preferring an attached port over the backing RAM.
func (m *MappedBus) Write(addr uint16, val uint8) {
	for _, r := range m.regions {
		if r.contains(addr) && r.write != nil {
			r.write.Output(val)
			return
		}
	}
	m.Bus.Write(addr, val)
}
