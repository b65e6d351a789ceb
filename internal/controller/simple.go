package controller

import (
	"fmt"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/checkcodedoc/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ int) error {
	return nil
}

// Advance is a no-op; plain output has no progress display.
func (s *SimpleUI) Advance(_ m.Path) {}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// DisplayReport prints the uncoloured report.
func (s *SimpleUI) DisplayReport(kind m.ReporterKind, reports []m.FileReport) error {
	out, err := NewReporter(kind).Render(reports)
	if err != nil {
		return err
	}

	s.printf("%s", out)

	return nil
}

// DisplaySummary prints the run totals.
func (s *SimpleUI) DisplaySummary(summary m.Summary) {
	for _, line := range summaryLines(summary) {
		s.printf("%s\n", line)
	}
}

// Browse prints a saved report followed by its totals.
func (s *SimpleUI) Browse(reports []m.FileReport) error {
	if len(reports) == 0 {
		s.printf("No errors were detected.\n")
		return nil
	}

	if err := s.DisplayReport(m.ReporterText, reports); err != nil {
		return err
	}

	s.printf("\n%s\n", browseFooter(reports))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func summaryLines(summary m.Summary) []string {
	lines := []string{
		"",
		"Code documentation check completed.",
		fmt.Sprintf("Scanned a total of %d files.", summary.FilesScanned),
	}

	if summary.FilesWithFindings == 0 {
		return append(lines, "No errors were detected.")
	}

	return append(lines, fmt.Sprintf("Found %d errors across %d files.", summary.Findings, summary.FilesWithFindings))
}

func browseFooter(reports []m.FileReport) string {
	findings := 0
	for _, r := range reports {
		findings += len(r.Findings)
	}

	return fmt.Sprintf("%d findings in %d files", findings, len(reports))
}
