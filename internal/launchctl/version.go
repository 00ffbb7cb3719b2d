package launchctl

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var versionPattern = regexp.MustCompile(`[Vv]ersion\s+v?(\d+\.\d+(?:\.\d+)?)`)

// ParseVersion extracts the semantic version from the launchctl version
// banner, e.g. "Darwin Bootstrapper Version 7.0.0: ..." → 7.0.0.
func ParseVersion(banner string) (*semver.Version, error) {
	m := versionPattern.FindStringSubmatch(banner)
	if m == nil {
		return nil, fmt.Errorf("no version number in %q", firstLine(banner))
	}
	v, err := semver.NewVersion(m[1])
	if err != nil {
		return nil, fmt.Errorf("parsing launchd version %q: %w", m[1], err)
	}
	return v, nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
