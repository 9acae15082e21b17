// ============================================================================
// KisueerOS - Interactive Shell
// ============================================================================
//
// Package:     version
// Description: Build and release information
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Shell is the release version of KisueerOS
const Shell = "1.0.0"

// Set at build time via -ldflags "-X".
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info describes the running binary
type Info struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Version:   Shell,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders a one-line summary, e.g. "KisueerOS v1.0.0 (development)"
func (i Info) String() string {
	return fmt.Sprintf("KisueerOS v%s (%s)", i.Version, i.GitCommit)
}
