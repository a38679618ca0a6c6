package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/retrostack/go6502/cartridge"
	"github.com/retrostack/go6502/controller"
	"github.com/retrostack/go6502/cpu"
	gio "github.com/retrostack/go6502/io"
	"github.com/retrostack/go6502/memory"
	"github.com/spf13/cobra"
)

// joypadAddr is the standard NES $4016 controller port.
const joypadAddr = 0x4016

func newRunCmd() *cobra.Command {
	var base uint16
	var ines bool
	cmd := &cobra.Command{
		Use:   "run <image>",
		Short: "Load and execute a program image until BRK",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cart, err := loadCartridge(args[0], ines)
			if err != nil {
				return err
			}
			bus := gio.NewMappedBus(memory.NewRAM())
			joypad := controller.NewJoypad()
			bus.MapPort(joypadAddr, joypadAddr, joypad, joypad)
			c := cpu.New(bus)
			c.Load(cart.PRGROM, base)
			c.Reset()
			if err := c.Run(); err != nil {
				return errors.Wrap(err, "run")
			}
			fmt.Printf("halted: A=%02X X=%02X Y=%02X P=%02X S=%02X PC=%04X\n",
				c.A, c.X, c.Y, c.P, c.S, c.PC)
			return nil
		},
	}
	cmd.Flags().Uint16Var(&base, "base", 0x8000, "address to load the program at")
	cmd.Flags().BoolVar(&ines, "ines", false, "treat the image as an iNES ROM instead of a flat binary")
	return cmd
}

func loadCartridge(path string, ines bool) (*cartridge.Cartridge, error) {
	if ines {
		return cartridge.LoadINES(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return cartridge.LoadRaw(data), nil
}
