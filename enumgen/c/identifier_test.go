package c

import "testing"

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"OK", true},
		{"_private", true},
		{"snake_case_9", true},
		{"", false},
		{"9lives", false},
		{"has-dash", false},
		{"FAIL}", false},
		{"ünicode", false},
	}
	for _, tt := range tests {
		if got := isIdentifier(tt.name); got != tt.want {
			t.Errorf("isIdentifier(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsReservedWord(t *testing.T) {
	for _, w := range []string{"switch", "case", "default", "_Bool", "enum"} {
		if !isReservedWord(w) {
			t.Errorf("isReservedWord(%q) = false, want true", w)
		}
	}
	for _, w := range []string{"Status", "OK", "Switch", "DEFAULT"} {
		if isReservedWord(w) {
			t.Errorf("isReservedWord(%q) = true, want false", w)
		}
	}
}
