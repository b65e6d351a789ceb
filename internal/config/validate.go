package config

import (
	"fmt"
	"regexp"

	m "github.com/mouse-blink/checkcodedoc/internal/model"
)

// Validate checks the resolved settings and compiles the parameter pattern
// into the rules handed to the scanner.
func (s Settings) Validate() (m.Rules, error) {
	pattern, err := CompileParamDocPattern(s.ParamDocPattern)
	if err != nil {
		return m.Rules{}, err
	}

	switch s.FailOn {
	case m.FailNone, m.FailWarning, m.FailError:
	default:
		return m.Rules{}, fmt.Errorf("invalid fail_on: %s (want none, warning or error)", s.FailOn)
	}

	if s.Jobs < 1 {
		return m.Rules{}, fmt.Errorf("jobs must be at least 1, got %d", s.Jobs)
	}

	if s.ReporterOutput == "" {
		return m.Rules{}, fmt.Errorf("reporter_output must not be empty")
	}

	return m.Rules{
		ParamDocPattern:    pattern,
		ShortDocWarnings:   s.ShortDocWarnings,
		EnforceStrictTypes: s.EnforceStrictTypes,
	}, nil
}

// CompileParamDocPattern compiles raw and requires the type and description
// capture groups.
func CompileParamDocPattern(raw string) (*regexp.Regexp, error) {
	pattern, err := regexp.Compile(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid param_doc_pattern: %w", err)
	}

	if pattern.NumSubexp() < 2 {
		return nil, fmt.Errorf("param_doc_pattern %q needs two capture groups (type, description), has %d", raw, pattern.NumSubexp())
	}

	return pattern, nil
}
