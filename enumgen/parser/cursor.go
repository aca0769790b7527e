package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// cursor is a read position within an immutable declaration text.
// Scanning methods take and return cursors by value, so each parse phase
// hands its final position to the next one.
type cursor struct {
	filename string
	text     string
	pos      int

	// firstLine is the line number of the first line of text within its file.
	firstLine int
}

func newCursor(filename, text string) cursor {
	return cursor{filename: filename, text: text, firstLine: 1}
}

// atEnd reports whether the whole text has been consumed.
func (c cursor) atEnd() bool {
	return c.pos >= len(c.text)
}

// peek returns the byte under the cursor.
func (c cursor) peek() (byte, bool) {
	if c.atEnd() {
		return 0, false
	}
	return c.text[c.pos], true
}

// rest returns the unconsumed text.
func (c cursor) rest() string {
	if c.atEnd() {
		return ""
	}
	return c.text[c.pos:]
}

// skipWhitespace advances past consecutive whitespace bytes.
func (c cursor) skipWhitespace() cursor {
	for !c.atEnd() && isSpace(c.text[c.pos]) {
		c.pos++
	}
	return c
}

// expect consumes lit, or fails with a MalformedDeclarationError naming it.
func (c cursor) expect(lit string) (cursor, error) {
	if !strings.HasPrefix(c.rest(), lit) {
		return c, c.malformed(lit)
	}
	c.pos += len(lit)
	return c, nil
}

// optional consumes lit if the text continues with it.
func (c cursor) optional(lit string) cursor {
	if strings.HasPrefix(c.rest(), lit) {
		c.pos += len(lit)
	}
	return c
}

// scanUntil consumes bytes up to the first one for which stop returns true,
// or up to the end of the text. The consumed run may be empty.
func (c cursor) scanUntil(stop func(byte) bool) (string, cursor) {
	start := c.pos
	for !c.atEnd() && !stop(c.text[c.pos]) {
		c.pos++
	}
	return c.text[start:c.pos], c
}

// position converts the byte offset into a line and column.
func (c cursor) position() lexer.Position {
	line, col := max(c.firstLine, 1), 1
	for i := 0; i < c.pos && i < len(c.text); i++ {
		if c.text[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return lexer.Position{
		Filename: c.filename,
		Offset:   c.pos,
		Line:     line,
		Column:   col,
	}
}

func (c cursor) malformed(expected string) *MalformedDeclarationError {
	return &MalformedDeclarationError{
		Expected: expected,
		Found:    c.rest(),
		Pos:      c.position(),
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
