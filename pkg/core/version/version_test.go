package version

import (
	"regexp"
	"runtime"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestShellVersionFormat(t *testing.T) {
	if !semverRegex.MatchString(Shell) {
		t.Errorf("Shell version %q is not valid semver", Shell)
	}
}

func TestGet(t *testing.T) {
	info := Get()

	if info.Version != Shell {
		t.Errorf("Version = %q, want %q", info.Version, Shell)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q", info.GoVersion)
	}
	if info.Platform != runtime.GOOS+"/"+runtime.GOARCH {
		t.Errorf("Platform = %q", info.Platform)
	}
	if !strings.HasPrefix(info.String(), "KisueerOS v"+Shell) {
		t.Errorf("String() = %q", info.String())
	}
}
