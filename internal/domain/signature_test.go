package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchSignature(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantOK     bool
		wantName   string
		wantParams string
	}{
		{"object literal", "    add: function(a, b) {", true, "add", "a, b"},
		{"indented variable", "  var add = function(a, b) {", true, "var add", "a, b"},
		{"variable at column zero", "var add = function(a, b) {", true, "add", "a, b"},
		{"object literal at column zero", "add: function(a) {", false, "", ""},
		{"assignment at column zero", "module.exports = function() {", false, "", ""},
		{"member assignment", "  this.state.reset = function() {", true, "this.state.reset", ""},
		{"space before paren", "  run: function (task) {", true, "run", "task"},
		{"greedy params", "  wrap: function(fn) { return call(fn) }", true, "wrap", "fn) { return call(fn"},
		{"call is not a declaration", "  register(function(a) {", false, "", ""},
		{"no space after operator", "  add:function(a) {", false, "", ""},
		{"two spaces after operator", "  add:  function(a) {", false, "", ""},
		{"line comment", "  // add: function(a) {", false, "", ""},
		{"block comment line", "   * add: function(a) {", false, "", ""},
		{"block comment start", "  /* add: function(a) { */", false, "", ""},
		{"plain statement", "  return a + b;", false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig, ok := MatchSignature(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantName, sig.Name)
			assert.Equal(t, tt.wantParams, sig.Params)
		})
	}
}

func TestMatchDocumentedSignature(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantKind sigKind
		wantName string
	}{
		{"object literal", "  add: function(a, b) {", sigStandard, "add"},
		{"object literal at column zero", "add: function(a) {", sigNone, ""},
		{"variable", "  var add = function(a, b) {", sigVariable, "add"},
		{"variable with colon", "  var add : function(a) {", sigVariable, "add"},
		{"variable at column zero", "var add = function(a) {", sigAssignment, "add"},
		{"member assignment", "  this.add = function(a) {", sigAssignment, "this.add"},
		{"prototype assignment", "  Calc.prototype.add = function(a) {", sigAssignment, "Calc.prototype.add"},
		{"quoted key", "  'add': function(a) {", sigAssignment, "'add'"},
		{"call", "  register(function(a) {", sigNone, ""},
		{"comment", "  // add: function(a) {", sigNone, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig, kind, ok := matchDocumentedSignature(tt.line)
			assert.Equal(t, tt.wantKind != sigNone, ok)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantName, sig.Name)
		})
	}
}
