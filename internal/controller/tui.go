package controller

import (
	"fmt"
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/schollz/progressbar/v3"

	m "github.com/mouse-blink/checkcodedoc/internal/model"
)

// TUI implements UI for interactive terminals: a progress bar on the error
// stream while scanning, coloured reports, and a Bubble Tea report viewer.
type TUI struct {
	output    io.Writer
	errOutput io.Writer

	mu  sync.Mutex
	bar *progressbar.ProgressBar
}

// NewTUI creates a new TUI.
func NewTUI(output, errOutput io.Writer) *TUI {
	return &TUI{output: output, errOutput: errOutput}
}

// Start creates the progress bar for total files.
func (t *TUI) Start(total int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if total <= 0 {
		return nil
	}

	t.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(t.errOutput),
		progressbar.OptionSetDescription("Scanning"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)

	return nil
}

// Advance moves the progress bar by one file.
func (t *TUI) Advance(_ m.Path) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.bar != nil {
		_ = t.bar.Add(1)
	}
}

// Close clears the progress bar.
func (t *TUI) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.bar != nil {
		_ = t.bar.Finish()
		t.bar = nil
	}
}

// DisplayReport prints the report; text reports get coloured severities.
func (t *TUI) DisplayReport(kind m.ReporterKind, reports []m.FileReport) error {
	reporter := NewReporter(kind)
	if kind == m.ReporterText {
		reporter = TextReporter{Styles: TerminalStyles()}
	}

	out, err := reporter.Render(reports)
	if err != nil {
		return err
	}

	_, err = t.output.Write(out)

	return err
}

// DisplaySummary prints the run totals, highlighting the outcome.
func (t *TUI) DisplaySummary(summary m.Summary) {
	lines := summaryLines(summary)

	outcome := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	if summary.FilesWithFindings > 0 {
		outcome = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	}

	last := len(lines) - 1
	lines[last] = outcome.Render(lines[last])

	for _, line := range lines {
		_, _ = fmt.Fprintln(t.output, line)
	}
}

// Browse opens the report viewer. Small reports that fit the terminal are
// printed directly.
func (t *TUI) Browse(reports []m.FileReport) error {
	model := newReportModel(reports)

	if width, height, ok := terminalSize(t.output); ok {
		model.width = width
		model.height = height
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}
