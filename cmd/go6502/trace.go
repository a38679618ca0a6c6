package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/retrostack/go6502/cartridge"
	"github.com/retrostack/go6502/cpu"
	"github.com/retrostack/go6502/disassemble"
	"github.com/retrostack/go6502/memory"
	"github.com/spf13/cobra"
)

func newTraceCmd() *cobra.Command {
	var base uint16
	cmd := &cobra.Command{
		Use:   "trace <image>",
		Short: "Step a flat binary image one instruction at a time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "read %s", args[0])
			}
			cart := cartridge.LoadRaw(data)
			bus := memory.NewRAM()
			c := cpu.New(bus)
			c.Load(cart.PRGROM, base)
			c.Reset()

			_, err = tea.NewProgram(traceModel{cpu: c, bus: bus}).Run()
			return err
		},
	}
	cmd.Flags().Uint16Var(&base, "base", 0x8000, "address to load the program at")
	return cmd
}

// traceModel is a bubbletea model stepping one instruction per keypress,
// showing the next instruction and full register file.
type traceModel struct {
	cpu  *cpu.CPU
	bus  *memory.RAM
	done bool
	err  error
}

func (m traceModel) Init() tea.Cmd {
	return nil
}

func (m traceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ", "n":
		if !m.done {
			m.done, m.err = m.cpu.Step()
		}
	}
	return m, nil
}

var (
	traceHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	traceRegStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
)

func (m traceModel) View() string {
	text, _ := disassemble.Step(m.cpu.PC, m.bus)
	regs := fmt.Sprintf("A=%02X X=%02X Y=%02X P=%02X S=%02X PC=%04X",
		m.cpu.A, m.cpu.X, m.cpu.Y, m.cpu.P, m.cpu.S, m.cpu.PC)

	status := "running"
	switch {
	case m.err != nil:
		status = m.err.Error()
	case m.done:
		status = "halted"
	}

	return traceHeaderStyle.Render("go6502 trace") + "\n" +
		traceRegStyle.Render(regs) + "\n" +
		"next: " + text + "\n" +
		"status: " + status + "\n\n" +
		"space/n: step   q: quit\n"
}
