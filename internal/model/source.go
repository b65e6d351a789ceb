// Package model defines the data structures shared by the documentation checker.
package model

// Path represents a file system path.
type Path string

// SourceFile is a file selected for scanning.
type SourceFile struct {
	// Path is the display path handed to the scanner and printed in reports.
	Path Path
	// Root is the command-line root (file group) the file was discovered under.
	Root Path
}

// ReporterKind selects how the aggregate report is rendered.
type ReporterKind string

const (
	// ReporterText renders one bordered table per file.
	ReporterText ReporterKind = "text"
	// ReporterJSON renders an indented JSON array of file reports.
	ReporterJSON ReporterKind = "json"
	// ReporterXML renders a <files> document.
	ReporterXML ReporterKind = "xml"
)

// ReporterKinds lists every supported reporter, in help-text order.
var ReporterKinds = []ReporterKind{ReporterText, ReporterJSON, ReporterXML}
