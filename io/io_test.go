package io

import (
	"testing"

	"github.com/retrostack/go6502/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedPort struct {
	val uint8
}

func (f *fixedPort) Input() uint8 { return f.val }

type latchPort struct {
	val uint8
}

func (l *latchPort) Output(val uint8) { l.val = val }

func TestMappedBusRoutesToPort(t *testing.T) {
	ram := memory.NewRAM()
	mb := NewMappedBus(ram)
	port := &fixedPort{val: 0x7E}
	mb.MapPort(0x4016, 0x4016, port, nil)

	require.Equal(t, uint8(0x7E), mb.Read(0x4016))
}

func TestMappedBusWriteRoutesToPort(t *testing.T) {
	ram := memory.NewRAM()
	mb := NewMappedBus(ram)
	latch := &latchPort{}
	mb.MapPort(0x4016, 0x4016, nil, latch)

	mb.Write(0x4016, 0x01)
	assert.Equal(t, uint8(0x01), latch.val)
}

func TestMappedBusFallsThroughUnmappedAddress(t *testing.T) {
	ram := memory.NewRAM()
	mb := NewMappedBus(ram)
	mb.MapPort(0x4016, 0x4016, &fixedPort{val: 0xFF}, nil)

	mb.Write(0x0200, 0x55)
	assert.Equal(t, uint8(0x55), mb.Read(0x0200))
}
