// Package parser extracts an enum descriptor from the text of a single C
// enum declaration such as
//
//	typedef enum Tag { A, B, C } Alias;
//
// Parsing runs three phases over one cursor: the tag, the enumerator list
// and the typedef alias. There is no backtracking between phases and the
// first missing token aborts the parse.
package parser

import (
	"github.com/broady/showenum/enumgen/ir"
)

// DefaultMaxVariants is the number of enumerators accepted when no
// WithMaxVariants option is given.
const DefaultMaxVariants = 50

type options struct {
	maxVariants int
	filename    string
	startLine   int
	endLine     int
}

// Option configures Parse.
type Option func(*options)

// WithMaxVariants sets the largest number of enumerators Parse accepts.
// A value of zero or less removes the limit.
func WithMaxVariants(n int) Option {
	return func(o *options) { o.maxVariants = n }
}

// WithFilename records the input file name in error positions and in the
// descriptor's Source.
func WithFilename(name string) Option {
	return func(o *options) { o.filename = name }
}

// WithLineWindow records that the parsed text is lines start through end of
// its file. Error positions are reported as file lines and the window is
// stored in the descriptor's Source. Zero bounds mean the window is open.
func WithLineWindow(start, end int) Option {
	return func(o *options) {
		o.startLine = start
		o.endLine = end
	}
}

// Parse parses one enum declaration.
//
// The returned descriptor may have both Tag and Alias empty; callers that
// need a display name should call Validate on it.
func Parse(source string, opts ...Option) (*ir.EnumDescriptor, error) {
	o := options{maxVariants: DefaultMaxVariants}
	for _, opt := range opts {
		opt(&o)
	}

	c := newCursor(o.filename, source)
	if o.startLine > 1 {
		c.firstLine = o.startLine
	}

	tag, c, err := parseTag(c)
	if err != nil {
		return nil, err
	}

	variants, c, err := parseFields(c, o.maxVariants)
	if err != nil {
		return nil, err
	}

	alias, err := parseAlias(c)
	if err != nil {
		return nil, err
	}

	return &ir.EnumDescriptor{
		Tag:      tag,
		Alias:    alias,
		Variants: variants,
		Source: ir.Source{
			File:      o.filename,
			StartLine: o.startLine,
			EndLine:   o.endLine,
		},
	}, nil
}

// parseTag consumes `[typedef] enum [Tag]` and returns the tag.
func parseTag(c cursor) (string, cursor, error) {
	c = c.skipWhitespace()
	c = c.optional("typedef")
	c = c.skipWhitespace()

	c, err := c.expect("enum")
	if err != nil {
		return "", c, err
	}
	c = c.skipWhitespace()

	tag, c := c.scanUntil(func(b byte) bool {
		return isSpace(b) || b == '{'
	})
	return tag, c, nil
}

// parseFields consumes `{ A, B, C` up to, but not including, the closing
// brace. The loop stops at the first enumerator not followed by a comma;
// parseAlias then rejects anything other than `}` at that point.
func parseFields(c cursor, limit int) ([]string, cursor, error) {
	c = c.skipWhitespace()

	c, err := c.expect("{")
	if err != nil {
		return nil, c, err
	}
	c = c.skipWhitespace()

	var variants []string
	for {
		if b, ok := c.peek(); !ok || b == '}' {
			break
		}

		var name string
		name, c = c.scanUntil(func(b byte) bool {
			return isSpace(b) || b == ',' || b == '}'
		})
		if name == "" {
			return nil, c, c.malformed("identifier")
		}
		if limit > 0 && len(variants) == limit {
			return nil, c, &CapacityError{Limit: limit}
		}
		variants = append(variants, name)

		c = c.skipWhitespace()
		if b, ok := c.peek(); !ok || b != ',' {
			break
		}
		c = c.optional(",")
		c = c.skipWhitespace()
	}

	return variants, c, nil
}

// parseAlias consumes `} [Alias]` and returns the alias.
func parseAlias(c cursor) (string, error) {
	c = c.skipWhitespace()

	c, err := c.expect("}")
	if err != nil {
		return "", err
	}
	c = c.skipWhitespace()

	alias, _ := c.scanUntil(func(b byte) bool {
		return isSpace(b) || b == ';'
	})
	return alias, nil
}
