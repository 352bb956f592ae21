package version

import (
	"runtime/debug"
	"strings"
)

// ModulePath is the import path of this module.
const ModulePath = "github.com/kbukum/gomonad"

var (
	// These variables are set at build time using -ldflags
	Version = "dev"
	Commit  = ""
)

// Info represents version information.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	GoVersion string `json:"go_version"`
	Dirty     bool   `json:"dirty,omitempty"`
}

// Get returns the library version, falling back to build info for fields
// not set via -ldflags.
func Get() Info {
	info := Info{Version: Version, Commit: Commit}

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	return fromBuildInfo(info, buildInfo)
}

func fromBuildInfo(info Info, bi *debug.BuildInfo) Info {
	info.GoVersion = bi.GoVersion
	if info.Version == "dev" {
		if m := findModule(bi); m != nil && m.Version != "" && m.Version != "(devel)" {
			info.Version = strings.TrimPrefix(m.Version, "v")
		}
	}
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.Commit == "" && len(setting.Value) >= 7 {
				info.Commit = setting.Value[:7]
			}
		case "vcs.modified":
			info.Dirty = setting.Value == "true"
		}
	}
	return info
}

func findModule(bi *debug.BuildInfo) *debug.Module {
	if bi.Main.Path == ModulePath {
		return &bi.Main
	}
	for _, dep := range bi.Deps {
		if dep.Path == ModulePath {
			if dep.Replace != nil {
				return dep.Replace
			}
			return dep
		}
	}
	return nil
}

// Short returns "version" or "version-commit", with a "-dirty" suffix for
// modified working trees.
func Short() string {
	return Get().String()
}

func (i Info) String() string {
	s := i.Version
	if i.Commit != "" {
		s += "-" + i.Commit
	}
	if i.Dirty {
		s += "-dirty"
	}
	return s
}
