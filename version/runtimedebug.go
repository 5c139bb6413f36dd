package version

import (
	"fmt"
	"runtime/debug"
)

const develVersion = "(devel)"

// Info summarizes the build of the running binary.
type Info struct {
	Version   string `json:"version"`
	GoVersion string `json:"goVersion"`
	Revision  string `json:"revision,omitempty"`
	Time      string `json:"time,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
}

// BuildInfo returns the build information
func BuildInfo() (*debug.BuildInfo, error) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, fmt.Errorf("fetching build info failed")
	}

	if bi == nil {
		return nil, fmt.Errorf("build information is empty")
	}

	return bi, nil
}

// Version returns the module version of the main package, or "(devel)".
func Version() string {
	bi, err := BuildInfo()
	if err != nil || bi.Main.Version == "" {
		return develVersion
	}

	return bi.Main.Version
}

// Get collects the version and VCS stamp of the running binary.
func Get() Info {
	bi, err := BuildInfo()
	if err != nil {
		return Info{Version: develVersion}
	}

	return infoFrom(bi)
}

func infoFrom(bi *debug.BuildInfo) Info {
	info := Info{
		Version:   bi.Main.Version,
		GoVersion: bi.GoVersion,
	}
	if info.Version == "" {
		info.Version = develVersion
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
		case "vcs.time":
			info.Time = s.Value
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}

	return info
}
