package controller

import (
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/checkcodedoc/internal/model"
)

// Styles colours the cells of a text report.
type Styles struct {
	Severity func(severity m.Severity, text string) string
	Line     func(text string) string
}

// PlainStyles leaves text untouched. Written report files always use it.
func PlainStyles() Styles {
	return Styles{
		Severity: func(_ m.Severity, text string) string { return text },
		Line:     func(text string) string { return text },
	}
}

// TerminalStyles colours warnings yellow, errors red and line numbers blue.
func TerminalStyles() Styles {
	warning := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	failure := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	line := lipgloss.NewStyle().Foreground(lipgloss.Color("12"))

	return Styles{
		Severity: func(severity m.Severity, text string) string {
			switch severity {
			case m.SeverityError:
				return failure.Render(text)
			case m.SeverityWarning:
				return warning.Render(text)
			default:
				return text
			}
		},
		Line: func(text string) string { return line.Render(text) },
	}
}
