// Package ir defines the Intermediate Representation for parsed C enum
// declarations. Parsers produce these descriptors and generators transform
// them into C source code.
package ir

// Source represents where a declaration was read from.
type Source struct {
	// File is the input file name. Empty when parsing in-memory text.
	File string

	// StartLine and EndLine are the inclusive 1-based line window that was
	// fed to the parser. Zero means the window was not restricted.
	StartLine int
	EndLine   int
}

// IsZero returns true if the source location is empty.
func (s Source) IsZero() bool {
	return s.File == "" && s.StartLine == 0 && s.EndLine == 0
}

// Warning represents a non-fatal issue encountered during generation.
type Warning struct {
	// Code is a machine-readable warning identifier.
	Code string

	// Message is a human-readable description.
	Message string

	// Source is the location that triggered the warning, if applicable.
	Source *Source

	// Name is the identifier that triggered the warning, if applicable.
	Name string
}
