// Package version reports how the bouncer-cli binary was built.
package version

import (
	"fmt"
	"runtime"
)

// Overridden with -ldflags "-X github.com/neutree-ai/bouncer-probe/internal/version.release=..."
var (
	release   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// Info describes a build of bouncer-cli.
type Info struct {
	Release   string `json:"release"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func Get() Info {
	return Info{
		Release:   release,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Short is the release with the abbreviated commit, e.g. "1.2.0+3f098b3".
func (i Info) Short() string {
	if i.Commit == "" || i.Commit == "unknown" {
		return i.Release
	}

	c := i.Commit
	if len(c) > 7 {
		c = c[:7]
	}

	return i.Release + "+" + c
}

func (i Info) String() string {
	return fmt.Sprintf("bouncer-cli %s\n  commit:   %s\n  built:    %s\n  go:       %s\n  platform: %s",
		i.Short(), i.Commit, i.BuildDate, i.GoVersion, i.Platform)
}
