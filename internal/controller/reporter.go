package controller

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"

	"github.com/olekukonko/tablewriter"

	m "github.com/mouse-blink/checkcodedoc/internal/model"
)

// Reporter renders the aggregate findings of a run.
type Reporter interface {
	Render(reports []m.FileReport) ([]byte, error)
}

// NewReporter returns the reporter for kind. Unknown kinds fall back to text.
func NewReporter(kind m.ReporterKind) Reporter {
	switch kind {
	case m.ReporterJSON:
		return JSONReporter{}
	case m.ReporterXML:
		return XMLReporter{}
	default:
		return TextReporter{Styles: PlainStyles()}
	}
}

// TextReporter renders one bordered table per file.
type TextReporter struct {
	Styles Styles
}

// Render implements Reporter.
func (r TextReporter) Render(reports []m.FileReport) ([]byte, error) {
	styles := r.Styles
	if styles.Severity == nil || styles.Line == nil {
		styles = PlainStyles()
	}

	var buf bytes.Buffer

	for _, report := range reports {
		fmt.Fprintf(&buf, "\nFile: %s\n", report.File)

		table := tablewriter.NewWriter(&buf)
		table.SetHeader([]string{"Type", "Line No.", "Method Name", "Details"})
		table.SetAutoFormatHeaders(false)
		table.SetAutoWrapText(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		for _, f := range report.Findings {
			table.Append([]string{
				styles.Severity(f.Severity, f.Severity.Label()),
				styles.Line(fmt.Sprintf("%d", f.Line)),
				f.Method,
				f.Message,
			})
		}

		table.Render()
	}

	return buf.Bytes(), nil
}

// JSONReporter renders an indented JSON array.
type JSONReporter struct{}

// Render implements Reporter.
func (JSONReporter) Render(reports []m.FileReport) ([]byte, error) {
	if reports == nil {
		reports = []m.FileReport{}
	}

	out, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json report: %w", err)
	}

	return append(out, '\n'), nil
}

type xmlFiles struct {
	XMLName xml.Name       `xml:"files"`
	Files   []m.FileReport `xml:"file"`
}

// XMLReporter renders a <files> document with one <file> per report.
type XMLReporter struct{}

// Render implements Reporter.
func (XMLReporter) Render(reports []m.FileReport) ([]byte, error) {
	out, err := xml.MarshalIndent(xmlFiles{Files: reports}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode xml report: %w", err)
	}

	return append([]byte(xml.Header), append(out, '\n')...), nil
}
