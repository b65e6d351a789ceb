// Package config loads and merges checkcodedoc settings from defaults, config
// files and command-line flags.
package config

import (
	"runtime"

	m "github.com/mouse-blink/checkcodedoc/internal/model"
)

// DefaultParamDocPattern captures the type and description of `@param {Type} text`.
const DefaultParamDocPattern = `@param\s*\{(.+)\}\s(.+)`

// Config is one configuration layer. Nil fields leave lower layers untouched.
type Config struct {
	ParamDocPattern    *string   `yaml:"param_doc_pattern" toml:"param_doc_pattern" json:"param_doc_pattern"`
	ShortDocWarnings   *bool     `yaml:"short_doc_warnings" toml:"short_doc_warnings" json:"short_doc_warnings"`
	EnforceStrictTypes *bool     `yaml:"enforce_strict_types" toml:"enforce_strict_types" json:"enforce_strict_types"`
	Reporter           *string   `yaml:"reporter" toml:"reporter" json:"reporter"`
	ReporterOutput     *string   `yaml:"reporter_output" toml:"reporter_output" json:"reporter_output"`
	Verbose            *bool     `yaml:"verbose" toml:"verbose" json:"verbose"`
	Include            *[]string `yaml:"include" toml:"include" json:"include"`
	Exclude            *[]string `yaml:"exclude" toml:"exclude" json:"exclude"`
	Jobs               *int      `yaml:"jobs" toml:"jobs" json:"jobs"`
	Cache              *string   `yaml:"cache" toml:"cache" json:"cache"`
	FailOn             *string   `yaml:"fail_on" toml:"fail_on" json:"fail_on"`
	LogLevel           *string   `yaml:"log_level" toml:"log_level" json:"log_level"`
}

// Settings is the fully resolved configuration of a run.
type Settings struct {
	ParamDocPattern    string
	ShortDocWarnings   bool
	EnforceStrictTypes bool
	Reporter           m.ReporterKind
	ReporterOutput     m.Path
	Verbose            bool
	Include            []string
	Exclude            []string
	Jobs               int
	Cache              m.Path // empty disables the scan cache
	FailOn             m.FailLevel
	LogLevel           string
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		ParamDocPattern:    DefaultParamDocPattern,
		ShortDocWarnings:   true,
		EnforceStrictTypes: true,
		Reporter:           m.ReporterText,
		ReporterOutput:     "tmp/output.xml",
		Verbose:            true,
		Include:            []string{"**/*.js"},
		Exclude:            []string{"**/node_modules/**", "**/vendor/**", "**/.git/**", "**/*.min.js"},
		Jobs:               runtime.NumCPU(),
		FailOn:             m.FailError,
		LogLevel:           "warn",
	}
}
