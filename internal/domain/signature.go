package domain

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/checkcodedoc/internal/model"
)

type sigKind int

const (
	sigNone sigKind = iota
	// sigStandard is the object-literal shape `name: function(...)`.
	sigStandard
	// sigVariable is the variable shape `var name = function(...)`.
	sigVariable
	// sigAssignment is any other assignment accepted by MatchSignature.
	sigAssignment
)

// The patterns require whitespace before the captured name, so a
// declaration starting at column 0 only matches from its first inner space:
// `var add = function()` yields `add` while `add: function()` does not match.
var (
	// Any assignment of a function expression. The left-hand side is greedy so
	// `this.a.b = function()` keeps its full target.
	signaturePattern = regexp.MustCompile(`\s+(.+)\s*[=:]\sfunction\s*\((.*)\)`)

	standardSignaturePattern = regexp.MustCompile(`\s+(\w+):\sfunction\s*\((.*)\)`)
	variableSignaturePattern = regexp.MustCompile(`\s+var (.+)\s*[=:]\sfunction\s*\((.*)\)`)
)

// MatchSignature reports whether line declares a function assignment. Lines
// that start a comment never match.
func MatchSignature(line string) (m.Signature, bool) {
	if startsComment(line) {
		return m.Signature{}, false
	}

	return matchWith(signaturePattern, line)
}

// matchDocumentedSignature matches the line that follows a closed doc block.
// The object-literal shape is tried first, then the variable shape, then any
// assignment MatchSignature accepts.
func matchDocumentedSignature(line string) (m.Signature, sigKind, bool) {
	if startsComment(line) {
		return m.Signature{}, sigNone, false
	}

	if sig, ok := matchWith(standardSignaturePattern, line); ok {
		return sig, sigStandard, true
	}

	if sig, ok := matchWith(variableSignaturePattern, line); ok {
		return sig, sigVariable, true
	}

	if sig, ok := matchWith(signaturePattern, line); ok {
		return sig, sigAssignment, true
	}

	return m.Signature{}, sigNone, false
}

func matchWith(pattern *regexp.Regexp, line string) (m.Signature, bool) {
	groups := pattern.FindStringSubmatch(line)
	if groups == nil {
		return m.Signature{}, false
	}

	return m.Signature{
		Name:   strings.TrimSpace(groups[1]),
		Params: groups[2],
	}, true
}

func startsComment(line string) bool {
	s := strings.TrimLeft(line, " \t")

	return strings.HasPrefix(s, "*") || strings.HasPrefix(s, "/*") || strings.HasPrefix(s, "//")
}
