// Package version reports build metadata stamped in with -ldflags, e.g.
//
//	-X github.com/GradienceTeam/gradience-shell/internal/version.Version=1.0.0
//	-X github.com/GradienceTeam/gradience-shell/internal/version.Commit=$(git rev-parse HEAD)
//	-X github.com/GradienceTeam/gradience-shell/internal/version.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)
package version

import (
	"fmt"
	"runtime"
)

const unknown = "unknown"

var (
	Version = "dev"
	Commit  = unknown
	Date    = unknown
)

// Info is the build metadata of the running binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get collects the build metadata.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// ShortCommit returns the first eight characters of the commit hash.
func (i Info) ShortCommit() string {
	if len(i.Commit) > 8 {
		return i.Commit[:8]
	}
	return i.Commit
}

// String formats the metadata for "gradience-shell version".
func String() string {
	i := Get()
	if i.Commit == unknown || i.Date == unknown {
		return fmt.Sprintf("gradience-shell %s (%s, %s)", i.Version, i.GoVersion, i.Platform)
	}
	return fmt.Sprintf("gradience-shell %s (commit %s, built %s, %s, %s)",
		i.Version, i.ShortCommit(), i.Date, i.GoVersion, i.Platform)
}

// Short returns just the version number.
func Short() string {
	return Version
}
