package version

import (
	"runtime/debug"
	"strings"
)

const defaultModule = "pkt.systems/wsnav"

// buildVersion is set via -ldflags "-X pkt.systems/wsnav/internal/version.buildVersion=...".
var buildVersion = ""

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// Info describes the running binary.
type Info struct {
	Module    string
	Version   string
	GoVersion string
	Revision  string
	Time      string
	Modified  bool
}

// Current returns the best available version string.
func Current() string {
	return Read().Version
}

// Module returns the module path from build info when available.
func Module() string {
	return Read().Module
}

// Read collects version details from the ldflags override and build info.
func Read() Info {
	info := Info{Module: defaultModule, Version: "devel"}
	bi, ok := readBuildInfo()
	if ok && bi != nil {
		if path := strings.TrimSpace(bi.Main.Path); path != "" {
			info.Module = path
		}
		info.GoVersion = bi.GoVersion
		for _, setting := range bi.Settings {
			switch setting.Key {
			case "vcs.revision":
				info.Revision = setting.Value
			case "vcs.time":
				info.Time = setting.Value
			case "vcs.modified":
				info.Modified = setting.Value == "true"
			}
		}
		switch v := strings.TrimSpace(bi.Main.Version); {
		case v != "" && v != "(devel)":
			info.Version = v
		case info.Revision != "":
			info.Version = "devel-" + shortRevision(info.Revision)
			if info.Modified {
				info.Version += "+dirty"
			}
		}
	}
	if v := strings.TrimSpace(buildVersion); v != "" {
		info.Version = v
	}
	return info
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}
