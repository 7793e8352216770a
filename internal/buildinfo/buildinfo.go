// Package buildinfo reports the version of the running binary.
package buildinfo

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

const devVersion = "0.1.0"

// Linker-overridable build metadata:
//
//	go build -ldflags "-X github.com/agusx1211/warrior/internal/buildinfo.Version=v1.0.0"
var (
	Version    = devVersion
	CommitHash = ""
	BuildDate  = ""
)

// Info is normalized build metadata for display.
type Info struct {
	Version    string
	CommitHash string
	BuildDate  string
}

// String renders the one-line form printed by `warrior version`.
func (i Info) String() string {
	return fmt.Sprintf("warrior %s (commit %s, built %s)", i.Version, i.CommitHash, i.BuildDate)
}

// Current merges linker overrides with the module's embedded VCS settings.
func Current() Info {
	info := Info{
		Version:    strings.TrimSpace(Version),
		CommitHash: strings.TrimSpace(CommitHash),
		BuildDate:  strings.TrimSpace(BuildDate),
	}

	var revision, vcsTime string
	dirty := false
	if bi, ok := debug.ReadBuildInfo(); ok {
		if (info.Version == "" || info.Version == devVersion) && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				revision = strings.TrimSpace(s.Value)
			case "vcs.time":
				vcsTime = strings.TrimSpace(s.Value)
			case "vcs.modified":
				dirty = strings.EqualFold(strings.TrimSpace(s.Value), "true")
			}
		}
	}

	if info.CommitHash == "" && revision != "" {
		info.CommitHash = revision
		if dirty {
			info.CommitHash += "-dirty"
		}
	}
	if info.BuildDate == "" {
		info.BuildDate = vcsTime
	}
	if parsed, err := time.Parse(time.RFC3339, info.BuildDate); err == nil {
		info.BuildDate = parsed.UTC().Format("2006-01-02 15:04:05 UTC")
	}

	info.Version = orUnknown(info.Version)
	info.CommitHash = orUnknown(info.CommitHash)
	info.BuildDate = orUnknown(info.BuildDate)
	return info
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
