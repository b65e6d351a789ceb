package model

// Severity classifies a finding.
type Severity string

const (
	// SeverityWarning is reported but never fails a run on its own unless --fail-on=warning.
	SeverityWarning Severity = "warning"
	// SeverityError marks missing or mismatched documentation.
	SeverityError Severity = "error"
)

// Label returns the capitalised name used in text reports.
func (s Severity) Label() string {
	switch s {
	case SeverityWarning:
		return "Warning"
	case SeverityError:
		return "Error"
	default:
		return string(s)
	}
}

// Rule names the check that produced a finding. Rule names are what ignore
// directives refer to.
type Rule string

// Available rules.
const (
	RuleUndocumented     Rule = "undocumented"
	RuleShortDescription Rule = "short-description"
	RuleArgumentCount    Rule = "argument-count"
	RuleStrictTypes      Rule = "strict-types"
)

// Finding is one documentation problem detected in a file.
type Finding struct {
	Severity Severity `json:"type" xml:"type"`
	Rule     Rule     `json:"rule,omitempty" xml:"rule,omitempty"`
	Message  string   `json:"msg" xml:"msg"`
	Line     int      `json:"lineNumber" xml:"lineNumber"` // 0-based line index within the file
	Method   string   `json:"methodName" xml:"methodName"`
}

// FileReport holds the findings of a single scanned file.
type FileReport struct {
	File     Path      `json:"fileName" xml:"fileName"`
	Findings []Finding `json:"errors" xml:"errors>error"`
}

// Summary holds the totals of a run.
type Summary struct {
	FilesScanned      int `json:"filesScanned"`
	FilesWithFindings int `json:"filesWithFindings"`
	Findings          int `json:"findings"`
	Errors            int `json:"errors"`
	Warnings          int `json:"warnings"`
}

// FailLevel is the lowest severity that makes a run fail.
type FailLevel string

// Available fail levels.
const (
	FailNone    FailLevel = "none"
	FailWarning FailLevel = "warning"
	FailError   FailLevel = "error"
)
