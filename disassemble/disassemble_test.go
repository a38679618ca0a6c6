package disassemble

import (
	"testing"

	"github.com/retrostack/go6502/memory"
)

func TestStepFormatsEachAddressingMode(t *testing.T) {
	tests := []struct {
		name   string
		bytes  []byte
		want   string
		length int
	}{
		{"implied", []byte{0xEA}, "NOP", 1},
		{"accumulator", []byte{0x0A}, "ASL A", 1},
		{"immediate", []byte{0xA9, 0x10}, "LDA #$10", 2},
		{"zeropage", []byte{0xA5, 0x10}, "LDA $10", 2},
		{"zeropagex", []byte{0xB5, 0x10}, "LDA $10,X", 2},
		{"absolute", []byte{0xAD, 0x34, 0x12}, "LDA $1234", 3},
		{"absolutex", []byte{0xBD, 0x34, 0x12}, "LDA $1234,X", 3},
		{"indirect", []byte{0x6C, 0x34, 0x12}, "JMP ($1234)", 3},
		{"indirectx", []byte{0xA1, 0x10}, "LDA ($10,X)", 2},
		{"indirecty", []byte{0xB1, 0x10}, "LDA ($10),Y", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := memory.NewRAM()
			r.Load(tt.bytes, 0x8000)
			got, length := Step(0x8000, r)
			if got != tt.want {
				t.Errorf("Step() text = %q, want %q", got, tt.want)
			}
			if length != tt.length {
				t.Errorf("Step() length = %d, want %d", length, tt.length)
			}
		})
	}
}

func TestStepRelativeResolvesBranchTarget(t *testing.T) {
	r := memory.NewRAM()
	r.Load([]byte{0xF0, 0xFE}, 0x8000) // BEQ -2 -> targets 0x8000 itself
	got, length := Step(0x8000, r)
	if got != "BEQ $8000" {
		t.Errorf("Step() text = %q, want BEQ $8000", got)
	}
	if length != 2 {
		t.Errorf("Step() length = %d, want 2", length)
	}
}

func TestStepUnknownOpcodeFormatsAsRawByte(t *testing.T) {
	r := memory.NewRAM()
	r.Load([]byte{0x02}, 0x8000)
	got, length := Step(0x8000, r)
	if got != ".BYTE $02" {
		t.Errorf("Step() text = %q, want .BYTE $02", got)
	}
	if length != 1 {
		t.Errorf("Step() length = %d, want 1", length)
	}
}
