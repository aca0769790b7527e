package c

import (
	"fmt"

	"github.com/broady/showenum/enumgen/ir"
)

// C reserved words (C11, plus the C23 additions).
var reservedWords = map[string]bool{
	"alignas":        true,
	"alignof":        true,
	"auto":           true,
	"bool":           true,
	"break":          true,
	"case":           true,
	"char":           true,
	"const":          true,
	"constexpr":      true,
	"continue":       true,
	"default":        true,
	"do":             true,
	"double":         true,
	"else":           true,
	"enum":           true,
	"extern":         true,
	"false":          true,
	"float":          true,
	"for":            true,
	"goto":           true,
	"if":             true,
	"inline":         true,
	"int":            true,
	"long":           true,
	"nullptr":        true,
	"register":       true,
	"restrict":       true,
	"return":         true,
	"short":          true,
	"signed":         true,
	"sizeof":         true,
	"static":         true,
	"static_assert":  true,
	"struct":         true,
	"switch":         true,
	"thread_local":   true,
	"true":           true,
	"typedef":        true,
	"typeof":         true,
	"typeof_unqual":  true,
	"union":          true,
	"unsigned":       true,
	"void":           true,
	"volatile":       true,
	"while":          true,
	"_Alignas":       true,
	"_Alignof":       true,
	"_Atomic":        true,
	"_Bool":          true,
	"_Complex":       true,
	"_Generic":       true,
	"_Imaginary":     true,
	"_Noreturn":      true,
	"_Static_assert": true,
	"_Thread_local":  true,
}

// Warning codes.
const (
	WarnReservedWord      = "W001"
	WarnInvalidIdentifier = "W002"
	WarnDuplicateVariant  = "W003"
)

// isReservedWord reports whether name is a C keyword.
func isReservedWord(name string) bool {
	return reservedWords[name]
}

// isIdentifier reports whether name matches [A-Za-z_][A-Za-z0-9_]*.
func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		ch := name[i]
		switch {
		case ch == '_', ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z':
		case ch >= '0' && ch <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// checkIdentifiers reports names that would not compile as written.
// The output is still emitted verbatim.
func checkIdentifiers(d *ir.EnumDescriptor) []ir.Warning {
	var warnings []ir.Warning

	check := func(kind, name string) {
		switch {
		case isReservedWord(name):
			warnings = append(warnings, ir.Warning{
				Code:    WarnReservedWord,
				Message: fmt.Sprintf("%s %q is a C reserved word", kind, name),
				Source:  sourceOf(d),
				Name:    name,
			})
		case !isIdentifier(name):
			warnings = append(warnings, ir.Warning{
				Code:    WarnInvalidIdentifier,
				Message: fmt.Sprintf("%s %q is not a valid C identifier", kind, name),
				Source:  sourceOf(d),
				Name:    name,
			})
		}
	}

	check("type name", d.DisplayName())

	seen := make(map[string]bool, len(d.Variants))
	for _, v := range d.Variants {
		check("variant", v)
		if seen[v] {
			warnings = append(warnings, ir.Warning{
				Code:    WarnDuplicateVariant,
				Message: fmt.Sprintf("variant %q is declared more than once", v),
				Source:  sourceOf(d),
				Name:    v,
			})
		}
		seen[v] = true
	}

	return warnings
}

func sourceOf(d *ir.EnumDescriptor) *ir.Source {
	if d.Source.IsZero() {
		return nil
	}
	src := d.Source
	return &src
}
