// Package build holds build-time metadata injected via -ldflags.
package build

import (
	"fmt"
	"runtime"
)

// Info contains build-time metadata about the dcminspect CLI.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

var info *Info

// SetBuildInfo initializes the global build info with values injected at build time.
func SetBuildInfo(version, commit, date string) {
	info = &Info{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// Get returns the current build info, or a default if SetBuildInfo was
// never called.
func Get() Info {
	if info == nil {
		return Info{
			Version:   "unknown",
			Commit:    "unknown",
			BuildDate: "unknown",
			GoVersion: runtime.Version(),
			Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		}
	}
	return *info
}

// String renders Info for kong's --version output.
func (i Info) String() string {
	return fmt.Sprintf("dcminspect version %s (commit: %s, built: %s, %s, %s)",
		i.Version, i.Commit, i.BuildDate, i.GoVersion, i.Platform)
}
