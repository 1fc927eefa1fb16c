// Package settings provides build metadata and per-run settings shared by
// the spatialnav command and its packages.
package settings

// CliBinaryName is the canonical binary name.
const CliBinaryName = "spatialnav"

// VersionInformation is populated at build time via ldflags.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-dev",
	BuildTime:    "unknown",
}

// VersionInfo holds build metadata.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds settings for a single execution.
type Run struct {
	MinLogLevel int8
	LogFile     string
	ConfigFile  string
	NoColor     bool
	Snapshot    bool
	MetricsAddr string
}

// NewCliParams returns the settings used when no flags are given.
func NewCliParams() *Run {
	return &Run{}
}
