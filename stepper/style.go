package stepper

import (
	"github.com/charmbracelet/lipgloss"
)

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1).
	BorderForeground(lipgloss.Color("62"))

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("205"))

var pcStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("226")).
	Bold(true)

var cursorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("0")).
	Background(lipgloss.Color("226"))

var errorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196"))

var helpStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("241"))
