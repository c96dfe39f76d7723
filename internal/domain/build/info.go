// Package build describes the running binary.
package build

import (
	"runtime"
	"runtime/debug"
)

const (
	repoURL        = "https://github.com/bnema/mosaic"
	unknownVersion = "dev"
)

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// New fills the Go version and, for `go install` builds without ldflags,
// the module version and VCS revision recorded by the toolchain.
func New(version, commit, date string) Info {
	info := Info{Version: version, Commit: commit, BuildDate: date, GoVersion: runtime.Version()}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if (info.Version == "" || info.Version == unknownVersion) && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && (info.Commit == "" || info.Commit == "unknown"):
			info.Commit = shortRevision(s.Value)
		case s.Key == "vcs.time" && (info.BuildDate == "" || info.BuildDate == "unknown"):
			info.BuildDate = s.Value
		}
	}
	return info
}

func shortRevision(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

// Contributors returns the list of project contributors.
func Contributors() []string {
	return []string{"bnema"}
}

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return repoURL
}
