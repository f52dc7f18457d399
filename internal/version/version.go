// Package version reports how a colorsful binary was built. The variables are
// set with -ldflags "-X github.com/colorsful/colorsful/internal/version.Version=x.y.z"
// (likewise Commit and Date).
package version

import (
	"fmt"
	"runtime"
)

// Name identifies the application in version strings and HTTP requests.
const Name = "colorsful"

var (
	Version   = "dev"
	Commit    = "unknown"
	Date      = "unknown" // RFC3339
	GoVersion = runtime.Version()
)

// Info is the build description printed by `colorsful version`.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// GetInfo returns the current build description.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: GoVersion,
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Released reports whether commit and date were stamped at build time.
func (i Info) Released() bool {
	return i.Commit != "unknown" && i.Date != "unknown"
}

// ShortCommit returns the first eight characters of the commit hash.
func (i Info) ShortCommit() string {
	if len(i.Commit) > 8 {
		return i.Commit[:8]
	}
	return i.Commit
}

func (i Info) String() string {
	if i.Released() {
		return fmt.Sprintf("%s version %s (commit: %s, built: %s, %s, %s)",
			Name, i.Version, i.ShortCommit(), i.Date, i.GoVersion, i.Platform)
	}
	return fmt.Sprintf("%s version %s (%s, %s)", Name, i.Version, i.GoVersion, i.Platform)
}

// String describes the running binary.
func String() string {
	return GetInfo().String()
}

// Short returns the bare version, as used by --version.
func Short() string {
	return Version
}

// UserAgent is the User-Agent sent when fetching remote catalogs and
// boundary tables.
func UserAgent() string {
	info := GetInfo()
	return fmt.Sprintf("%s/%s (%s)", Name, info.Version, info.Platform)
}
