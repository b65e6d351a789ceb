package model

import "regexp"

// Signature is a function declaration recognised on a single source line.
type Signature struct {
	Name   string
	Params string // raw text between the parentheses
}

// ParamDoc is one documentation tag matched by the parameter pattern.
type ParamDoc struct {
	Type        string
	Description string
}

// MethodData aggregates what a doc block and its signature declare.
type MethodData struct {
	Description []string
	// Arguments is the comma split of the signature's parameter text. An empty
	// parameter list yields a single empty entry.
	Arguments []string
	Covered   []ParamDoc
}

// Rules is the part of the configuration read by the scanner. It is never
// mutated once a run starts.
type Rules struct {
	ParamDocPattern    *regexp.Regexp
	ShortDocWarnings   bool
	EnforceStrictTypes bool
}
