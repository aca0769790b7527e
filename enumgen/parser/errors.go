package parser

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

var (
	// ErrMalformedDeclaration matches any *MalformedDeclarationError via errors.Is.
	ErrMalformedDeclaration = errors.New("malformed enum declaration")

	// ErrVariantCapacityExceeded matches any *CapacityError via errors.Is.
	ErrVariantCapacityExceeded = errors.New("variant capacity exceeded")
)

// maxFoundPreview bounds how much of the remaining text is quoted in
// error messages. The full text stays available in Found.
const maxFoundPreview = 32

// MalformedDeclarationError reports a required token that was not present
// at the expected position.
type MalformedDeclarationError struct {
	// Expected is the literal (or "identifier") the parser required.
	Expected string

	// Found is the unconsumed text at the failure position.
	Found string

	// Pos is the failure position within the parsed text.
	Pos lexer.Position
}

func (e *MalformedDeclarationError) Error() string {
	found := "end of input"
	if e.Found != "" {
		preview := e.Found
		if len(preview) > maxFoundPreview {
			preview = preview[:maxFoundPreview] + "..."
		}
		found = fmt.Sprintf("%q", preview)
	}
	loc := fmt.Sprintf("%d:%d", e.Pos.Line, e.Pos.Column)
	if e.Pos.Filename != "" {
		loc = e.Pos.Filename + ":" + loc
	}
	return fmt.Sprintf("%s: expected %s, but got %s", loc, e.Expected, found)
}

func (e *MalformedDeclarationError) Is(target error) bool {
	return target == ErrMalformedDeclaration
}

// CapacityError reports an enum with more variants than the configured limit.
type CapacityError struct {
	Limit int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("enum declares more than %d variants", e.Limit)
}

func (e *CapacityError) Is(target error) bool {
	return target == ErrVariantCapacityExceeded
}
