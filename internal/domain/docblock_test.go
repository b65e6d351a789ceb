package domain

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/checkcodedoc/internal/model"
)

var defaultTestRules = m.Rules{
	ParamDocPattern:    regexp.MustCompile(`@param\s*\{(.+)\}\s(.+)`),
	ShortDocWarnings:   true,
	EnforceStrictTypes: true,
}

func TestExtractMethodData(t *testing.T) {
	buffer := "    /**" +
		"     * Adds two numbers" +
		"     * and returns the sum." +
		"     * @param {Number} a first operand" +
		"     * @param {Number} b second operand" +
		"     * @return {Number}" +
		"     */"

	data := ExtractMethodData(buffer, m.Signature{Name: "add", Params: "a, b"}, defaultTestRules)

	assert.Equal(t, []string{" Adds two numbers     ", " and returns the sum.     "}, data.Description)
	assert.Equal(t, []string{"a", "b"}, data.Arguments)
	require.Len(t, data.Covered, 2)
	assert.Equal(t, m.ParamDoc{Type: "Number", Description: "a first operand     "}, data.Covered[0])
	assert.Equal(t, "Number", data.Covered[1].Type)
}

func TestExtractMethodData_Description(t *testing.T) {
	tests := []struct {
		name   string
		buffer string
		want   int
	}{
		{"no description", "/** * @param {String} a x */", 0},
		{"one line", "/** * Does it. */", 1},
		{"text after opening marker counts", "/** Opening text * Body */", 2},
		{"slash excludes a line", "/** * See http://example.com * Body */", 1},
		{"annotation is not description", "/** * @deprecated * Body * More */", 2},
		{"blank segments", "/** *   *\t* Body */", 1},
		{"no star prefix", "/**Body line*/", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := ExtractMethodData(tt.buffer, m.Signature{}, defaultTestRules)
			assert.Len(t, data.Description, tt.want)
		})
	}
}

func TestExtractMethodData_CustomPattern(t *testing.T) {
	rules := m.Rules{ParamDocPattern: regexp.MustCompile(`@arg\s+(\w+)\s+(.+)`)}

	data := ExtractMethodData("/** * Body * @arg Number count * @param {String} x */", m.Signature{Params: "count"}, rules)

	require.Len(t, data.Covered, 1)
	assert.Equal(t, "Number", data.Covered[0].Type)
	assert.Equal(t, []string{" Body "}, data.Description)
}

func TestSplitArguments(t *testing.T) {
	tests := []struct {
		name   string
		params string
		want   []string
	}{
		{"empty", "", []string{""}},
		{"single", "a", []string{"a"}},
		{"comma space", "a, b, c", []string{"a", "b", "c"}},
		{"no spaces", "a,b", []string{"a", "b"}},
		{"only one space stripped", "a,  b", []string{"a", " b"}},
		{"leading space kept", " a", []string{" a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitArguments(tt.params))
		})
	}
}
