package c

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/broady/showenum/enumgen/ir"
)

// Emitter handles C code emission for enum descriptors.
type Emitter struct {
	config  GeneratorConfig
	indent  string
	newline string
}

// NewEmitter returns an Emitter for cfg, with defaults filled in.
func NewEmitter(cfg GeneratorConfig) *Emitter {
	cfg = applyDefaults(cfg)
	newline := "\n"
	if cfg.LineEnding == "crlf" {
		newline = "\r\n"
	}
	return &Emitter{
		config:  cfg,
		indent:  strings.Repeat(" ", cfg.IndentSize),
		newline: newline,
	}
}

// Emit writes the stringification function for d to buf:
//
//	const char *show_status(Status self) {
//	    switch (self) {
//	        case OK: return "OK";
//	        default: return "";
//	    }
//	}
//
// Cases follow declaration order. Nothing is written when d has no
// display name.
func (e *Emitter) Emit(buf *bytes.Buffer, d *ir.EnumDescriptor) ([]ir.Warning, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	name := d.DisplayName()
	warnings := checkIdentifiers(d)

	fmt.Fprintf(buf, "const char *%s(%s self) {%s", d.FunctionName(e.config.FunctionPrefix), name, e.newline)
	e.line(buf, 1, "switch (self) {")
	for _, v := range d.Variants {
		e.line(buf, 2, fmt.Sprintf("case %s: return %s;", v, quote(v)))
	}
	e.line(buf, 2, `default: return "";`)
	e.line(buf, 1, "}")
	buf.WriteString("}")

	if e.config.TrailingNewline {
		buf.WriteString(e.newline)
	}

	return warnings, nil
}

// line writes one indented line.
func (e *Emitter) line(buf *bytes.Buffer, depth int, text string) {
	for i := 0; i < depth; i++ {
		buf.WriteString(e.indent)
	}
	buf.WriteString(text)
	buf.WriteString(e.newline)
}

// quote renders s as a C string literal. Identifiers need no escaping, but
// a malformed variant must not break out of the literal.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; ch {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteByte(ch)
		default:
			b.WriteByte(ch)
		}
	}
	b.WriteByte('"')
	return b.String()
}
