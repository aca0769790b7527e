// Package source loads declaration text and narrows it to a line window.
package source

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrInvalidRange is returned for a line window that selects nothing
// meaningful, such as a negative bound or a start after the end.
var ErrInvalidRange = errors.New("invalid line range")

// Load reads the file at path. A missing file yields an error matching
// fs.ErrNotExist.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), nil
}

// Slice returns lines start through end of text, inclusive and 1-based,
// joined with "\n". A zero start means the first line and a zero end means
// the last line. An end past the last line is clamped; a start past the
// last line yields the empty string.
func Slice(text string, start, end int) (string, error) {
	if start < 0 || end < 0 {
		return "", fmt.Errorf("%w: bounds must not be negative (start %d, end %d)", ErrInvalidRange, start, end)
	}
	if start != 0 && end != 0 && start > end {
		return "", fmt.Errorf("%w: start %d is after end %d", ErrInvalidRange, start, end)
	}

	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		// A trailing newline terminates the last line, it does not start a new one.
		lines = lines[:n-1]
	}

	if start == 0 {
		start = 1
	}
	if end == 0 || end > len(lines) {
		end = len(lines)
	}
	if start > end {
		return "", nil
	}
	return strings.Join(lines[start-1:end], "\n"), nil
}
