// Package ui prints step-by-step pipeline progress, styled when stdout is
// an interactive terminal and plain otherwise.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444"))
	stepStyle = lipgloss.NewStyle().Bold(true)
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
)

const (
	checkMark = "[OK]"
	crossMark = "[!!]"
	stepMark  = "[..]"
)

// Printer writes progress lines to a single output.
type Printer struct {
	out    io.Writer
	styled bool
}

// NewPrinter returns a Printer on stdout, styled when attached to a TTY.
func NewPrinter() *Printer {
	return &Printer{
		out:    os.Stdout,
		styled: isatty.IsTerminal(os.Stdout.Fd()),
	}
}

// NewPlainPrinter returns an unstyled Printer on out, for tests and
// redirected output.
func NewPlainPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Step announces a pipeline step about to run.
func (p *Printer) Step(format string, args ...any) {
	p.line(stepMark, stepStyle, format, args...)
}

// OK reports a completed step.
func (p *Printer) OK(format string, args ...any) {
	p.line(checkMark, okStyle, format, args...)
}

// Fail reports a failed step.
func (p *Printer) Fail(format string, args ...any) {
	p.line(crossMark, failStyle, format, args...)
}

// Info prints supplementary detail.
func (p *Printer) Info(format string, args ...any) {
	p.line("    ", dimStyle, format, args...)
}

func (p *Printer) line(mark string, style lipgloss.Style, format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	if p.styled {
		fmt.Fprintf(p.out, "%s %s\n", style.Render(mark), text)
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", mark, text)
}
