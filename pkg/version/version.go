package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set at build time with -ldflags "-X github.com/ehsaniara/peerflow/pkg/version.Version=...".
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Component string `json:"component"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetBuildInfo fills in the commit from the module's VCS stamp when it was
// not set through ldflags.
func GetBuildInfo(component string) BuildInfo {
	return BuildInfo{
		Component: component,
		Version:   Version,
		GitCommit: commit(),
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// GetShortVersion returns e.g. "v1.2.0 (1a2b3c4)".
func GetShortVersion() string {
	c := commit()
	if c != "unknown" && len(c) >= 7 {
		return fmt.Sprintf("%s (%s)", Version, c[:7])
	}
	return Version
}

// GetLongVersion is the multi-line text printed by "version".
func GetLongVersion(component string) string {
	info := GetBuildInfo(component)

	output := fmt.Sprintf("%s version %s\n", info.Component, GetShortVersion())
	if info.BuildDate != "unknown" {
		output += fmt.Sprintf("Built: %s\n", info.BuildDate)
	}
	output += fmt.Sprintf("Go: %s\n", info.GoVersion)
	output += fmt.Sprintf("Platform: %s\n", info.Platform)
	return output
}

func commit() string {
	if GitCommit != "unknown" && GitCommit != "" {
		return GitCommit
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return s.Value
			}
		}
	}
	return "unknown"
}
