// Package build reports build-time information for just-code.
package build

import (
	_ "embed"
	"runtime"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// Overridable with -ldflags "-X github.com/tacogips/just-code/internal/build.<name>=<value>".
var (
	version   string
	gitCommit = "unknown"
	buildDate = "unknown"
)

// Info describes the running binary.
type Info struct {
	Version   string
	GoVersion string
	Commit    string
	BuildDate string
	OS        string
	Arch      string
}

// Version returns the application version: the ldflags value when set,
// otherwise the embedded VERSION file.
func Version() string {
	if version != "" {
		return version
	}
	return strings.TrimSpace(embeddedVersion)
}

// Current returns information about the running binary.
func Current() Info {
	return Info{
		Version:   Version(),
		GoVersion: runtime.Version(),
		Commit:    gitCommit,
		BuildDate: buildDate,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}
