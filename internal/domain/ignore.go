package domain

import (
	"strings"

	m "github.com/mouse-blink/checkcodedoc/internal/model"
)

const ignoreDirective = "checkcodedoc:ignore"

type ignoreRule struct {
	all   bool
	names map[string]struct{}
}

func (r ignoreRule) ignores(rule m.Rule) bool {
	if r.all {
		return true
	}

	if len(r.names) == 0 {
		return false
	}

	_, ok := r.names[strings.ToLower(string(rule))]

	return ok
}

func mergeIgnoreRule(dst *ignoreRule, src ignoreRule) {
	if src.all {
		dst.all = true
		dst.names = nil

		return
	}

	if dst.all || len(src.names) == 0 {
		return
	}

	if dst.names == nil {
		dst.names = make(map[string]struct{}, len(src.names))
	}

	for name := range src.names {
		dst.names[name] = struct{}{}
	}
}

// parseIgnoreDirective reads `// checkcodedoc:ignore [rule,...]`. Without rule
// names every rule is ignored.
func parseIgnoreDirective(commentText string) (ignoreRule, bool) {
	s := strings.TrimSpace(commentText)
	if !strings.HasPrefix(s, "//") {
		return ignoreRule{}, false
	}

	s = strings.TrimSpace(strings.TrimPrefix(s, "//"))
	if !strings.HasPrefix(s, ignoreDirective) {
		return ignoreRule{}, false
	}

	rest := strings.TrimSpace(strings.TrimPrefix(s, ignoreDirective))
	if rest == "" {
		return ignoreRule{all: true}, true
	}

	parts := strings.Split(rest, ",")
	rule := ignoreRule{names: make(map[string]struct{}, len(parts))}

	for _, part := range parts {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}

		rule.names[name] = struct{}{}
	}

	if len(rule.names) == 0 {
		rule.all = true
		rule.names = nil
	}

	return rule, true
}

// buildLineIgnoreRules maps line indexes to the directives covering them. A
// directive alone on its line covers the next line; a trailing one covers its
// own line.
func buildLineIgnoreRules(lines []string) map[int]ignoreRule {
	lineRules := make(map[int]ignoreRule)

	for i, line := range lines {
		slash, r, ok := findIgnoreDirective(line)
		if !ok {
			continue
		}

		target := i
		if isLeadingComment(line, slash) {
			target = i + 1
		}

		current := lineRules[target]
		mergeIgnoreRule(&current, r)
		lineRules[target] = current
	}

	return lineRules
}

// findIgnoreDirective returns the first `//` on line that starts a directive,
// skipping earlier ones such as the slashes of a URL in a string literal.
func findIgnoreDirective(line string) (int, ignoreRule, bool) {
	for offset := 0; offset < len(line); {
		idx := strings.Index(line[offset:], "//")
		if idx < 0 {
			break
		}

		slash := offset + idx

		if r, ok := parseIgnoreDirective(line[slash:]); ok {
			return slash, r, true
		}

		offset = slash + 2
	}

	return -1, ignoreRule{}, false
}

func isLeadingComment(line string, slash int) bool {
	return strings.TrimSpace(line[:slash]) == ""
}

func filterIgnored(findings []m.Finding, lineRules map[int]ignoreRule) []m.Finding {
	if len(lineRules) == 0 {
		return findings
	}

	kept := findings[:0]

	for _, f := range findings {
		if rule, ok := lineRules[f.Line]; ok && rule.ignores(f.Rule) {
			continue
		}

		kept = append(kept, f)
	}

	return kept
}
