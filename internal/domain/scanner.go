package domain

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/checkcodedoc/internal/model"
)

type scanState int

const (
	outsideBlock scanState = iota
	insideBlock
)

var (
	// Markers must be indented; a block opened at column 0 is not a doc block.
	blockOpenPattern  = regexp.MustCompile(`^\s+/\*\*\s*$`)
	blockClosePattern = regexp.MustCompile(`^\s+\*/\s*$`)

	newlineStripper = strings.NewReplacer("\r\n", "", "\n", "", "\r", "")
)

// Scanner checks the documentation of every function declared in a file.
type Scanner interface {
	Scan(file m.Path, content []byte) m.FileReport
}

type scanner struct {
	rules m.Rules
}

// NewScanner creates a Scanner applying rules. The scanner keeps no state
// between calls and is safe for concurrent use.
func NewScanner(rules m.Rules) Scanner {
	return &scanner{rules: rules}
}

// Scan walks content line by line. Doc blocks are buffered between their
// opening and closing markers; the line after a closing marker is taken as the
// documented signature. Signatures seen outside that position are reported as
// undocumented. A block left open at end of file is dropped without a finding.
func (s *scanner) Scan(file m.Path, content []byte) m.FileReport {
	lines := strings.Split(string(content), "\n")
	findings := []m.Finding{}
	state := outsideBlock

	var buffer strings.Builder

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if state == insideBlock {
			if !blockClosePattern.MatchString(line) {
				if blockOpenPattern.MatchString(line) {
					buffer.Reset()
				}

				buffer.WriteString(newlineStripper.Replace(line))

				continue
			}

			buffer.WriteString(newlineStripper.Replace(line))
			state = outsideBlock

			documented, skipNext := s.checkDocumented(buffer.String(), lines, i+1)
			findings = append(findings, documented...)

			buffer.Reset()

			if skipNext {
				i++
			}

			continue
		}

		if blockOpenPattern.MatchString(line) {
			buffer.Reset()
			buffer.WriteString(newlineStripper.Replace(line))
			state = insideBlock
		}

		if sig, ok := MatchSignature(line); ok {
			findings = append(findings, m.Finding{
				Severity: m.SeverityError,
				Rule:     m.RuleUndocumented,
				Message:  msgUndocumented,
				Line:     i,
				Method:   sig.Name,
			})
		}
	}

	return m.FileReport{
		File:     file,
		Findings: filterIgnored(findings, buildLineIgnoreRules(lines)),
	}
}

// checkDocumented inspects the line following a closed block. A matched
// signature is checked against the block and consumes that line, except a
// `var` assignment, which is checked here and then scanned again as an
// ordinary line.
func (s *scanner) checkDocumented(buffer string, lines []string, next int) ([]m.Finding, bool) {
	if next >= len(lines) {
		return nil, false
	}

	sig, kind, ok := matchDocumentedSignature(lines[next])
	if !ok {
		return nil, false
	}

	data := ExtractMethodData(buffer, sig, s.rules)

	return CheckDocBlock(sig.Name, data, next, s.rules), kind != sigVariable
}
