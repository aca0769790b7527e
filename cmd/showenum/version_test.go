package main

import (
	"strings"
	"testing"

	"github.com/Masterminds/semver/v3"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"0.3.0\n", "0.3.0"},
		{"v1.2.3", "1.2.3"},
		{"1.2", "1.2.0"},
		{"v2.0.0-rc.1", "2.0.0-rc.1"},
		{"not-a-version", "not-a-version"},
	}
	for _, tt := range tests {
		if got := canonical(tt.in); got != tt.want {
			t.Errorf("canonical(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEmbeddedVersionIsSemver(t *testing.T) {
	if _, err := semver.StrictNewVersion(strings.TrimSpace(embeddedVersion)); err != nil {
		t.Errorf("VERSION %q is not a strict semantic version: %v", embeddedVersion, err)
	}
}

func TestVersion(t *testing.T) {
	v := Version()
	if !strings.Contains(v, canonical(embeddedVersion)) && !strings.HasPrefix(v, "v") {
		t.Errorf("Version() = %q, want it to mention %q", v, canonical(embeddedVersion))
	}
}
