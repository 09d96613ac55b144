// Package stepper is an interactive single-step debugger for the emulator.
package stepper

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ezrec/bandfuck/emulator"
	"github.com/ezrec/bandfuck/io"
)

const (
	RUN_LIMIT       = 1_000_000 // Most ticks performed by a single run request.
	PROGRAM_WIDTH   = 48        // Instructions shown around the program counter.
	BAND_RADIUS     = 6         // Cells shown either side of the band cursor.
	OUTPUT_CAPACITY = 1024      // Most recent output bytes kept for display.
)

// Model is the Bubble Tea model of a stepping session.
type Model struct {
	emu    *emulator.Emulator
	output *io.Ring
	diag   *io.Ring
	err    error
	done   bool
}

// New creates a stepping session over emu. The emulator's output and
// diagnostic streams are captured for display, and its program is reset.
func New(emu *emulator.Emulator) Model {
	m := Model{
		emu:    emu,
		output: &io.Ring{Capacity: OUTPUT_CAPACITY},
		diag:   &io.Ring{Capacity: OUTPUT_CAPACITY},
	}

	m.output.Rewind()
	m.diag.Rewind()

	emu.Tape.Output = m.output
	emu.Tape.Diagnostic = m.diag
	emu.Reset()

	return m
}

// Run the stepping session on the terminal.
func Run(emu *emulator.Emulator) (err error) {
	_, err = tea.NewProgram(New(emu)).Run()
	return
}

func (m Model) Init() tea.Cmd {
	return nil
}

// step performs up to limit ticks, stopping early once until returns true.
func (m Model) step(limit int, until func(op emulator.Opcode) bool) Model {
	for range limit {
		if m.done || m.err != nil {
			break
		}

		var op emulator.Opcode
		if !m.emu.Done() {
			op = m.emu.Program.At(m.emu.Pc)
		}

		m.done, m.err = m.emu.Tick()

		if until != nil && until(op) {
			break
		}
	}

	return m
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "s", " ":
			m = m.step(1, nil)
		case "c":
			m = m.step(RUN_LIMIT, func(op emulator.Opcode) bool {
				return op == emulator.OP_OUTPUT
			})
		case "r":
			m = m.step(RUN_LIMIT, nil)
		}
	}
	return m, nil
}

func (m Model) viewProgram() string {
	prog := m.emu.Program
	pc := m.emu.Pc

	first := max(0, pc-PROGRAM_WIDTH/2)
	last := min(prog.Len(), first+PROGRAM_WIDTH)

	var sb strings.Builder
	for n := first; n < last; n++ {
		if n == pc {
			sb.WriteString(pcStyle.Render(string(prog[n])))
		} else {
			sb.WriteByte(prog[n])
		}
	}
	if pc >= prog.Len() {
		sb.WriteString(pcStyle.Render("$"))
	}

	return sb.String()
}

func (m Model) viewBand() string {
	bd := m.emu.Band
	first, cells := bd.Window(BAND_RADIUS)

	var parts []string
	for n, cell := range cells {
		index := (first + n) % bd.Size()
		text := fmt.Sprintf("%3d", cell)
		if index == bd.Index() {
			text = cursorStyle.Render(text)
		}
		parts = append(parts, text)
	}

	return fmt.Sprintf("@%-5d %s", first, strings.Join(parts, " "))
}

func (m Model) View() string {
	var status string
	switch {
	case m.err != nil:
		status = errorStyle.Render(m.err.Error())
	case m.done:
		status = "halted"
	default:
		status = "running"
	}

	state := fmt.Sprintf("pc %d/%d  ticks %d  depth %d  cursor %d  %s",
		m.emu.Pc, m.emu.Program.Len(), m.emu.Ticks, m.emu.Depth(), m.emu.Band.Index(), status)

	sections := []string{
		titleStyle.Render("bandfuck stepper"),
		boxStyle.Render(m.viewProgram()),
		boxStyle.Render(m.viewBand()),
		state,
		boxStyle.Render("output:\n" + m.output.String()),
	}

	if dropped := m.output.Dropped(); dropped > 0 {
		sections = append(sections, helpStyle.Render(fmt.Sprintf("(%d earlier output bytes dropped)", dropped)))
	}

	if m.diag.Len() > 0 {
		sections = append(sections, errorStyle.Render(strings.TrimRight(m.diag.String(), "\n")))
	}

	sections = append(sections, helpStyle.Render("s/space step • c continue to output • r run • q quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
