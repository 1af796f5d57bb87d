// Package ui renders soap's terminal output: styled messages and aligned
// tables. Styling degrades automatically on non-TTY output.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// Headingf prints a highlighted progress heading.
func Headingf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(w, headingStyle.Render(fmt.Sprintf(format, args...)))
}

// Errorf prints an error message with a highlighted prefix.
func Errorf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(w, errorStyle.Render("Error:"), fmt.Sprintf(format, args...))
}

// Dimf prints a de-emphasized informational line.
func Dimf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf(format, args...)))
}
