package main

import (
	_ "embed"
	"runtime/debug"
	"strings"

	"github.com/Masterminds/semver/v3"
)

//go:embed VERSION
var embeddedVersion string

// Version returns the version string.
//
// When installed via `go install ...@version`, returns the module version (e.g., "v0.3.0").
// For development builds, returns "devel-0.3.0+abc1234" with VCS revision if available.
func Version() string {
	base := canonical(embeddedVersion)

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return base
	}

	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return "v" + canonical(info.Main.Version)
	}

	var vcsRev string
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			vcsRev = s.Value[:7]
			break
		}
	}

	if vcsRev != "" {
		return "devel-" + base + "+" + vcsRev
	}
	return "devel-" + base
}

// canonical normalizes a version string to its semver form without the
// leading "v". Strings that are not semver are returned trimmed.
func canonical(s string) string {
	s = strings.TrimSpace(s)
	v, err := semver.NewVersion(s)
	if err != nil {
		return s
	}
	return v.String()
}
