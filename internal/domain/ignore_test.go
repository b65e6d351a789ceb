package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/checkcodedoc/internal/model"
)

func TestParseIgnoreDirective_All(t *testing.T) {
	r, ok := parseIgnoreDirective("// checkcodedoc:ignore")
	require.True(t, ok)
	assert.True(t, r.all)
	assert.Nil(t, r.names)
}

func TestParseIgnoreDirective_Names(t *testing.T) {
	r, ok := parseIgnoreDirective("//checkcodedoc:ignore Strict-Types, argument-count ")
	require.True(t, ok)
	assert.False(t, r.all)
	assert.Len(t, r.names, 2)
	assert.Contains(t, r.names, "strict-types")
	assert.Contains(t, r.names, "argument-count")
}

func TestParseIgnoreDirective_Rejects(t *testing.T) {
	for _, text := range []string{
		"/* checkcodedoc:ignore */",
		"// see http://example.com",
		"checkcodedoc:ignore",
		"// checkcodedoc",
	} {
		_, ok := parseIgnoreDirective(text)
		assert.False(t, ok, text)
	}
}

func TestParseIgnoreDirective_OnlySeparators(t *testing.T) {
	r, ok := parseIgnoreDirective("// checkcodedoc:ignore , ,")
	require.True(t, ok)
	assert.True(t, r.all)
}

func TestIgnoreRule_Ignores(t *testing.T) {
	assert.True(t, ignoreRule{all: true}.ignores(m.RuleUndocumented))
	assert.False(t, ignoreRule{}.ignores(m.RuleUndocumented))

	named := ignoreRule{names: map[string]struct{}{"strict-types": {}}}
	assert.True(t, named.ignores(m.RuleStrictTypes))
	assert.False(t, named.ignores(m.RuleArgumentCount))
}

func TestMergeIgnoreRule(t *testing.T) {
	var dst ignoreRule

	mergeIgnoreRule(&dst, ignoreRule{names: map[string]struct{}{"strict-types": {}}})
	mergeIgnoreRule(&dst, ignoreRule{names: map[string]struct{}{"undocumented": {}}})
	assert.Len(t, dst.names, 2)

	mergeIgnoreRule(&dst, ignoreRule{all: true})
	assert.True(t, dst.all)
	assert.Nil(t, dst.names)

	mergeIgnoreRule(&dst, ignoreRule{names: map[string]struct{}{"argument-count": {}}})
	assert.True(t, dst.all)
	assert.Nil(t, dst.names)
}

func TestBuildLineIgnoreRules(t *testing.T) {
	lines := []string{
		"  // checkcodedoc:ignore strict-types",
		"foo: function(a) {},",
		"bar: function(a) {}, // checkcodedoc:ignore",
		"// checkcodedoc:ignore undocumented",
		"// checkcodedoc:ignore argument-count",
		"baz: function(a) {},",
	}

	rules := buildLineIgnoreRules(lines)

	require.Contains(t, rules, 1)
	assert.True(t, rules[1].ignores(m.RuleStrictTypes))
	assert.False(t, rules[1].ignores(m.RuleUndocumented))

	require.Contains(t, rules, 2)
	assert.True(t, rules[2].all)

	require.Contains(t, rules, 4)
	assert.True(t, rules[4].ignores(m.RuleUndocumented))

	require.Contains(t, rules, 5)
	assert.True(t, rules[5].ignores(m.RuleArgumentCount))
	assert.False(t, rules[5].ignores(m.RuleUndocumented))
}

func TestBuildLineIgnoreRules_DirectiveAfterURL(t *testing.T) {
	lines := []string{
		`  var u = "http://x"; // checkcodedoc:ignore`,
		`  // see https://example.com // checkcodedoc:ignore undocumented`,
		`  var v = "http://y";`,
	}

	rules := buildLineIgnoreRules(lines)

	require.Contains(t, rules, 0)
	assert.True(t, rules[0].all)

	require.Contains(t, rules, 1)
	assert.True(t, rules[1].ignores(m.RuleUndocumented))
	assert.NotContains(t, rules, 2)
	assert.Len(t, rules, 2)
}

func TestFilterIgnored(t *testing.T) {
	findings := []m.Finding{
		{Line: 1, Rule: m.RuleUndocumented},
		{Line: 2, Rule: m.RuleStrictTypes},
		{Line: 2, Rule: m.RuleArgumentCount},
	}

	rules := map[int]ignoreRule{2: {names: map[string]struct{}{"strict-types": {}}}}

	kept := filterIgnored(findings, rules)

	assert.Equal(t, []m.Finding{
		{Line: 1, Rule: m.RuleUndocumented},
		{Line: 2, Rule: m.RuleArgumentCount},
	}, kept)
}
