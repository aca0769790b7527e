package ir

import (
	"errors"
	"strings"
)

// ErrEmptyDisplayName is returned when a declaration has neither a tag nor
// an alias, leaving nothing to name the generated function after.
var ErrEmptyDisplayName = errors.New("enum has neither a tag nor a typedef alias")

// EnumDescriptor represents one parsed C enum declaration.
// It is built once by the parser and never mutated afterwards.
type EnumDescriptor struct {
	// Tag is the name following the enum keyword. Empty for anonymous enums.
	Tag string

	// Alias is the typedef name following the closing brace. May be empty.
	Alias string

	// Variants holds the enumerators in declaration order.
	Variants []string

	// Source describes where the declaration was read from.
	Source Source
}

// DisplayName returns the name used for code generation: the alias if
// present, otherwise the tag.
func (d *EnumDescriptor) DisplayName() string {
	if d.Alias != "" {
		return d.Alias
	}
	return d.Tag
}

// FunctionName returns the generated function identifier, the prefix
// followed by the lowercased display name.
func (d *EnumDescriptor) FunctionName(prefix string) string {
	return prefix + strings.ToLower(d.DisplayName())
}

// Validate reports whether the descriptor can be rendered.
func (d *EnumDescriptor) Validate() error {
	if d.DisplayName() == "" {
		return ErrEmptyDisplayName
	}
	return nil
}
