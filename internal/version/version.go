// version.go exposes build metadata stamped into the stackci binaries.
package version

import (
	"fmt"
	"runtime"
	"strings"
)

// These values are overridden at build time via -ldflags "-X ...".
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown" // RFC3339 UTC preferred
)

type Info struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string
}

func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String is the one-line form printed by --version.
func (i Info) String() string {
	parts := []string{i.Version}
	if i.GitCommit != "" && i.GitCommit != "unknown" {
		commit := i.GitCommit
		if len(commit) > 12 {
			commit = commit[:12]
		}
		parts = append(parts, "commit "+commit)
	}
	if i.BuildDate != "" && i.BuildDate != "unknown" {
		parts = append(parts, "built "+i.BuildDate)
	}
	parts = append(parts, i.GoVersion, i.Platform)
	return strings.Join(parts, ", ")
}
