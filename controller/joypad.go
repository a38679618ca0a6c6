// Package controller implements memory-mapped input peripherals a host can
// attach to a bus via io.MappedBus: a standard NES controller shift
// register exposed through the Port8/Port8Writer interfaces.
package controller

import "github.com/retrostack/go6502/io"

// Button bits, in NES controller read order: A, B, Select, Start, Up,
// Down, Left, Right.
const (
	ButtonA uint8 = 1 << iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

// Joypad is a one-button-register NES-style controller. Writing bit 0
// (strobe) high latches the current button state; while strobe is high,
// every read returns the A button's state. Strobing low, then reading
// eight times, shifts the latched buttons out one bit per read, low bit
// first, with 1s once fully drained, from the ninth read on.
type Joypad struct {
	buttons uint8
	shift   uint8
	strobe  bool
}

var (
	_ io.Port8       = (*Joypad)(nil)
	_ io.Port8Writer = (*Joypad)(nil)
)

// NewJoypad returns a controller with no buttons held.
func NewJoypad() *Joypad {
	return &Joypad{}
}

// SetButtons replaces the held-button mask, e.g. from a host's input loop.
func (j *Joypad) SetButtons(mask uint8) {
	j.buttons = mask
	if j.strobe {
		j.shift = j.buttons
	}
}

// Output implements io.Port8Writer: it is the strobe write at $4016/$4017.
func (j *Joypad) Output(val uint8) {
	j.strobe = val&0x01 != 0
	if j.strobe {
		j.shift = j.buttons
	}
}

// Input implements io.Port8: it is the serial read at $4016/$4017.
func (j *Joypad) Input() uint8 {
	if j.strobe {
		return j.buttons & 0x01
	}
	bit := j.shift & 0x01
	j.shift = (j.shift >> 1) | 0x80
	return bit
}
