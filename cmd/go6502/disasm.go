package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/retrostack/go6502/disassemble"
	"github.com/retrostack/go6502/memory"
	"github.com/spf13/cobra"
)

func newDisasmCmd() *cobra.Command {
	var base uint16
	var count int
	cmd := &cobra.Command{
		Use:   "disasm <image>",
		Short: "Disassemble a flat binary image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "read %s", args[0])
			}
			bus := memory.NewRAM()
			bus.Load(data, base)

			pc := base
			for i := 0; i < count && int(pc-base) < len(data); i++ {
				text, length := disassemble.Step(pc, bus)
				fmt.Printf("%04X  %s\n", pc, text)
				pc += uint16(length)
			}
			return nil
		},
	}
	cmd.Flags().Uint16Var(&base, "base", 0x8000, "address the image is loaded at")
	cmd.Flags().IntVar(&count, "count", 32, "number of instructions to disassemble")
	return cmd
}
