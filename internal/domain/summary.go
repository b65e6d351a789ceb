package domain

import (
	m "github.com/mouse-blink/checkcodedoc/internal/model"
)

// WithFindings drops the reports of files that produced no finding, keeping
// the order of the remaining ones.
func WithFindings(reports []m.FileReport) []m.FileReport {
	out := make([]m.FileReport, 0, len(reports))

	for _, report := range reports {
		if len(report.Findings) == 0 {
			continue
		}

		out = append(out, report)
	}

	return out
}

// Summarize folds per-file reports into run totals. filesScanned counts every
// requested file, including clean ones and roots that were not found.
func Summarize(filesScanned int, reports []m.FileReport) m.Summary {
	summary := m.Summary{FilesScanned: filesScanned}

	for _, report := range reports {
		if len(report.Findings) == 0 {
			continue
		}

		summary.FilesWithFindings++
		summary.Findings += len(report.Findings)

		for _, f := range report.Findings {
			switch f.Severity {
			case m.SeverityError:
				summary.Errors++
			case m.SeverityWarning:
				summary.Warnings++
			}
		}
	}

	return summary
}

// Breaches reports whether summary fails a run configured with level.
func Breaches(summary m.Summary, level m.FailLevel) bool {
	switch level {
	case m.FailError:
		return summary.Errors > 0
	case m.FailWarning:
		return summary.Errors > 0 || summary.Warnings > 0
	default:
		return false
	}
}
