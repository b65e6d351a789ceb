package domain

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/checkcodedoc/internal/model"
)

const docLinePrefix = "*"

var annotationPattern = regexp.MustCompile(`^\s*@\w+`)

// ExtractMethodData partitions a closed doc block into description lines and
// parameter tags, and splits the signature's parameter list. Documented and
// declared parameters are only ever compared by count.
func ExtractMethodData(buffer string, sig m.Signature, rules m.Rules) m.MethodData {
	data := m.MethodData{
		Description: []string{},
		Arguments:   splitArguments(sig.Params),
		Covered:     []m.ParamDoc{},
	}

	for _, segment := range strings.Split(buffer, docLinePrefix) {
		if doc, ok := matchParamDoc(rules.ParamDocPattern, segment); ok {
			data.Covered = append(data.Covered, doc)
			continue
		}

		if isDescriptionLine(segment) {
			data.Description = append(data.Description, segment)
		}
	}

	return data
}

func matchParamDoc(pattern *regexp.Regexp, segment string) (m.ParamDoc, bool) {
	if pattern == nil {
		return m.ParamDoc{}, false
	}

	groups := pattern.FindStringSubmatch(segment)
	if groups == nil {
		return m.ParamDoc{}, false
	}

	var doc m.ParamDoc
	if len(groups) > 1 {
		doc.Type = groups[1]
	}

	if len(groups) > 2 {
		doc.Description = groups[2]
	}

	return doc, true
}

// isDescriptionLine rejects annotation lines, delimiter leftovers (anything
// holding a slash) and blank segments.
func isDescriptionLine(segment string) bool {
	if annotationPattern.MatchString(segment) {
		return false
	}

	if strings.Contains(segment, "/") {
		return false
	}

	return strings.TrimSpace(segment) != ""
}

// splitArguments strips only the first space after each comma. An empty
// parameter list becomes []string{""}; see isEmptyParameterList.
func splitArguments(params string) []string {
	parts := strings.Split(params, ",")
	for i := 1; i < len(parts); i++ {
		parts[i] = strings.TrimPrefix(parts[i], " ")
	}

	return parts
}
