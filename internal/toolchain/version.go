package toolchain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var versionPattern = regexp.MustCompile(`v?\d+(\.\d+){0,2}(-[0-9A-Za-z.-]+)?`)

// CompareVersions compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
// Handles "v" prefix tolerance (strips leading "v" before parsing).
func CompareVersions(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// ExtractVersion finds the first version number in a tool's --version
// output, e.g. "git version 2.43.0" → "2.43.0", "v20.11.1" → "20.11.1".
func ExtractVersion(output string) (string, error) {
	match := versionPattern.FindString(output)
	if match == "" {
		return "", fmt.Errorf("no version number in %q", strings.TrimSpace(output))
	}
	v, err := parseSemver(match)
	if err != nil {
		return "", fmt.Errorf("parsing version %q: %w", match, err)
	}
	return v.String(), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	return semver.NewVersion(version)
}
