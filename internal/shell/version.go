package shell

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/GradienceTeam/gradience-shell/internal/executor"
)

// SupportedVersions lists the GNOME Shell major versions that have templates.
var SupportedVersions = []int{42, 43}

// IsSupported reports whether v is one of SupportedVersions.
func IsSupported(v int) bool {
	return slices.Contains(SupportedVersions, v)
}

// ValidateVersion returns ErrUnsupportedVersion (wrapped) unless v is supported.
func ValidateVersion(v int) error {
	if !IsSupported(v) {
		return fmt.Errorf("%w: %d not in %v", ErrUnsupportedVersion, v, SupportedVersions)
	}
	return nil
}

// ParseDetectedVersion maps a raw shell version string such as "43.2" to a
// supported major version. Only 4x versions are considered; 3.x is legacy
// and always rejected.
func ParseDetectedVersion(raw string) (int, error) {
	s := strings.TrimSpace(raw)

	switch {
	case strings.HasPrefix(s, "4"):
		if len(s) < 2 {
			return 0, fmt.Errorf("%w: %q", ErrUnsupportedVersion, raw)
		}
		v, err := strconv.Atoi(s[:2])
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrUnsupportedVersion, raw)
		}
		if err := ValidateVersion(v); err != nil {
			return 0, err
		}
		return v, nil
	case strings.HasPrefix(s, "3"):
		return 0, fmt.Errorf("%w: legacy version %s not in %v", ErrUnsupportedVersion, s, SupportedVersions)
	default:
		return 0, fmt.Errorf("%w: unrecognised version %q", ErrUnsupportedVersion, raw)
	}
}

// VersionDetector reports the version string of the running GNOME Shell.
type VersionDetector interface {
	DetectVersion(ctx context.Context) (string, error)
}

var shellVersionRegex = regexp.MustCompile(`(\d+(?:\.\w+)*)`)

// CommandDetector asks the gnome-shell binary for its version.
type CommandDetector struct {
	Path   string
	Runner executor.ProcessRunner
}

// NewCommandDetector returns a detector running "gnome-shell --version".
func NewCommandDetector(runner executor.ProcessRunner) *CommandDetector {
	if runner == nil {
		runner = executor.NewRealProcessRunner()
	}
	return &CommandDetector{Path: "gnome-shell", Runner: runner}
}

// DetectVersion runs the shell binary and extracts the numeric version from
// output like "GNOME Shell 43.2".
func (d *CommandDetector) DetectVersion(ctx context.Context) (string, error) {
	stdout, stderr, err := d.Runner.Run(ctx, d.Path, []string{"--version"}, nil)
	if err != nil {
		if msg := strings.TrimSpace(string(stderr)); msg != "" {
			return "", fmt.Errorf("failed to query %s version: %w: %s", d.Path, err, msg)
		}
		return "", fmt.Errorf("failed to query %s version: %w", d.Path, err)
	}

	match := shellVersionRegex.FindString(string(stdout))
	if match == "" {
		return "", fmt.Errorf("no version found in %s output %q", d.Path, strings.TrimSpace(string(stdout)))
	}
	return match, nil
}

// StaticDetector always reports the same version. Useful for tests and for
// environments where the shell binary is not reachable.
type StaticDetector string

// DetectVersion returns the static version string.
func (s StaticDetector) DetectVersion(context.Context) (string, error) {
	return string(s), nil
}
