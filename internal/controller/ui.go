// Package controller provides the console output of checkcodedoc: progress,
// report rendering and the interactive report viewer.
package controller

import (
	m "github.com/mouse-blink/checkcodedoc/internal/model"
)

// UI defines how a run is shown to the user. Implementations can use
// different output methods (simple text, TUI).
type UI interface {
	// Start announces that total files are about to be scanned.
	Start(total int) error
	// Advance records that file has been scanned. It may be called from
	// several goroutines.
	Advance(file m.Path)
	Close()
	// DisplayReport echoes the report in the format of kind.
	DisplayReport(kind m.ReporterKind, reports []m.FileReport) error
	DisplaySummary(summary m.Summary)
	// Browse shows a previously saved report.
	Browse(reports []m.FileReport) error
}
