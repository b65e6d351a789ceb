package domain

import (
	"fmt"

	m "github.com/mouse-blink/checkcodedoc/internal/model"
)

const (
	msgUndocumented     = "Method is not documented, or doc block is malformed"
	msgShortDescription = "Code doc only contains one line of description"
	msgArgumentCount    = "Documented arguments don't match method signature, %d documented, %d actual"
	msgInvalidType      = "Documented argument is not a valid type ( %s )"
)

// ValidTypes is the set of type names accepted when strict types are enforced.
var ValidTypes = map[string]struct{}{
	"Boolean":   {},
	"Null":      {},
	"Undefined": {},
	"Number":    {},
	"String":    {},
	"Symbol":    {},
	"Object":    {},
	"Array":     {},
	"Function":  {},
}

// CheckDocBlock applies the documentation rules to one documented method. The
// checks are independent; every violated rule adds a finding.
func CheckDocBlock(method string, data m.MethodData, line int, rules m.Rules) []m.Finding {
	var findings []m.Finding

	if rules.ShortDocWarnings && len(data.Description) == 1 {
		findings = append(findings, m.Finding{
			Severity: m.SeverityWarning,
			Rule:     m.RuleShortDescription,
			Message:  msgShortDescription,
			Line:     line,
			Method:   method,
		})
	}

	if len(data.Covered) != len(data.Arguments) && !isEmptyParameterList(data.Arguments) {
		findings = append(findings, m.Finding{
			Severity: m.SeverityError,
			Rule:     m.RuleArgumentCount,
			Message:  fmt.Sprintf(msgArgumentCount, len(data.Covered), len(data.Arguments)),
			Line:     line,
			Method:   method,
		})
	}

	if rules.EnforceStrictTypes {
		for _, doc := range data.Covered {
			if _, ok := ValidTypes[doc.Type]; ok {
				continue
			}

			findings = append(findings, m.Finding{
				Severity: m.SeverityWarning,
				Rule:     m.RuleStrictTypes,
				Message:  fmt.Sprintf(msgInvalidType, doc.Type),
				Line:     line,
				Method:   method,
			})
		}
	}

	return findings
}

// isEmptyParameterList recognises the split of an empty parameter list, which
// declares zero parameters rather than one unnamed one.
func isEmptyParameterList(arguments []string) bool {
	return len(arguments) == 1 && arguments[0] == ""
}
