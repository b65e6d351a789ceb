package controller

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/checkcodedoc/internal/model"
)

func sampleReports() []m.FileReport {
	return []m.FileReport{
		{
			File: "src/app.js",
			Findings: []m.Finding{
				{Severity: m.SeverityError, Rule: m.RuleUndocumented, Message: "Method is not documented, or doc block is malformed", Line: 3, Method: "add"},
				{Severity: m.SeverityWarning, Rule: m.RuleStrictTypes, Message: "Documented argument is not a valid type ( Bool )", Line: 12, Method: "toggle"},
			},
		},
		{
			File: "src/util.js",
			Findings: []m.Finding{
				{Severity: m.SeverityError, Rule: m.RuleArgumentCount, Message: "Documented arguments don't match method signature, 1 documented, 2 actual", Line: 0, Method: "wrap"},
			},
		},
	}
}

func TestNewReporter(t *testing.T) {
	assert.IsType(t, TextReporter{}, NewReporter(m.ReporterText))
	assert.IsType(t, JSONReporter{}, NewReporter(m.ReporterJSON))
	assert.IsType(t, XMLReporter{}, NewReporter(m.ReporterXML))
	assert.IsType(t, TextReporter{}, NewReporter("checkstyle"))
}

func TestTextReporter_Render(t *testing.T) {
	out, err := TextReporter{}.Render(sampleReports())
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "\nFile: src/app.js\n")
	assert.Contains(t, text, "\nFile: src/util.js\n")
	assert.Contains(t, text, "Line No.")
	assert.Contains(t, text, "Method Name")
	assert.Contains(t, text, "Error")
	assert.Contains(t, text, "Warning")
	assert.Contains(t, text, "toggle")
	assert.Contains(t, text, "1 documented, 2 actual")
	assert.Less(t, strings.Index(text, "src/app.js"), strings.Index(text, "src/util.js"))
	assert.NotContains(t, text, "\x1b[")
}

func TestTextReporter_Empty(t *testing.T) {
	out, err := TextReporter{Styles: PlainStyles()}.Render(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestTextReporter_UsesStyles(t *testing.T) {
	styles := Styles{
		Severity: func(s m.Severity, text string) string { return "<" + string(s) + ">" + text },
		Line:     func(text string) string { return "#" + text },
	}

	out, err := TextReporter{Styles: styles}.Render(sampleReports())
	require.NoError(t, err)
	assert.Contains(t, string(out), "<error>Error")
	assert.Contains(t, string(out), "#12")
}

func TestJSONReporter_Render(t *testing.T) {
	out, err := JSONReporter{}.Render(sampleReports())
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded, 2)

	assert.Equal(t, "src/app.js", decoded[0]["fileName"])

	errs, ok := decoded[0]["errors"].([]any)
	require.True(t, ok)
	first, ok := errs[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "error", first["type"])
	assert.Equal(t, "add", first["methodName"])
	assert.Equal(t, float64(3), first["lineNumber"])
	assert.Equal(t, "Method is not documented, or doc block is malformed", first["msg"])
	assert.True(t, strings.HasSuffix(string(out), "\n"))
}

func TestJSONReporter_Empty(t *testing.T) {
	out, err := JSONReporter{}.Render(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(out))
}

func TestXMLReporter_Render(t *testing.T) {
	out, err := XMLReporter{}.Render(sampleReports())
	require.NoError(t, err)

	text := string(out)
	assert.True(t, strings.HasPrefix(text, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<files>"))
	assert.Contains(t, text, "<file>")
	assert.Contains(t, text, "<fileName>src/app.js</fileName>")
	assert.Contains(t, text, "<errors>")
	assert.Contains(t, text, "<error>")
	assert.Contains(t, text, "<type>warning</type>")
	assert.Contains(t, text, "<lineNumber>12</lineNumber>")
	assert.Contains(t, text, "<methodName>wrap</methodName>")
	assert.Contains(t, text, "don&#39;t match")
	assert.True(t, strings.HasSuffix(text, "</files>\n"))
}

func TestXMLReporter_Empty(t *testing.T) {
	out, err := XMLReporter{}.Render(nil)
	require.NoError(t, err)
	assert.Contains(t, string(out), "<files></files>")
}
