package buildinfo

import (
	"fmt"
	"runtime"
)

// Stamped at release time via ldflags:
//
//	go build -ldflags "-X github.com/neatops/pulsectl/internal/infra/buildinfo.version=v1.2.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info describes the running binary. The version command emits it as
// JSON under these field names.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
}

// Get returns the build description. GoVersion comes from the runtime,
// the rest from the ldflags stamp.
func Get() Info {
	return Info{
		Version:   version,
		Commit:    commit,
		Date:      date,
		GoVersion: runtime.Version(),
	}
}

// String renders the one-line form shown by --version, e.g.
// "dev (none)" or "v1.2.0 (8f3acd1)".
func String() string {
	return fmt.Sprintf("%s (%s)", version, commit)
}
