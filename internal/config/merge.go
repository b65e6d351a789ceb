package config

import (
	"slices"
	"strings"

	m "github.com/mouse-blink/checkcodedoc/internal/model"
)

// Merge applies layers over base in order; later layers win. A nil field in a
// layer leaves the value below it untouched.
func Merge(base Settings, layers ...Config) Settings {
	out := base
	out.Include = slices.Clone(base.Include)
	out.Exclude = slices.Clone(base.Exclude)

	for _, layer := range layers {
		out.ParamDocPattern = override(out.ParamDocPattern, layer.ParamDocPattern)
		out.ShortDocWarnings = override(out.ShortDocWarnings, layer.ShortDocWarnings)
		out.EnforceStrictTypes = override(out.EnforceStrictTypes, layer.EnforceStrictTypes)
		out.Reporter = m.ReporterKind(strings.ToLower(overrideTrimmed(string(out.Reporter), layer.Reporter)))
		out.ReporterOutput = m.Path(overrideTrimmed(string(out.ReporterOutput), layer.ReporterOutput))
		out.Verbose = override(out.Verbose, layer.Verbose)
		out.Include = overrideList(out.Include, layer.Include)
		out.Exclude = overrideList(out.Exclude, layer.Exclude)
		out.Jobs = override(out.Jobs, layer.Jobs)
		out.Cache = m.Path(overrideTrimmed(string(out.Cache), layer.Cache))
		out.FailOn = m.FailLevel(strings.ToLower(overrideTrimmed(string(out.FailOn), layer.FailOn)))
		out.LogLevel = overrideTrimmed(out.LogLevel, layer.LogLevel)
	}

	return out
}

// override returns *value when the layer sets it, current otherwise.
func override[T any](current T, value *T) T {
	if value == nil {
		return current
	}

	return *value
}

// overrideTrimmed is override for free-form strings read from files or flags.
func overrideTrimmed(current string, value *string) string {
	return strings.TrimSpace(override(current, value))
}

// overrideList replaces the whole list; layers never append to each other.
// The result does not alias the layer's slice.
func overrideList(current []string, value *[]string) []string {
	if value == nil {
		return current
	}

	return slices.Clone(*value)
}
