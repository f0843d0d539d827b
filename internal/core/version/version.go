// Package version reports the build of the running binary
package version

// ServiceName names the api binary in logs and meta endpoints
const ServiceName = "modhook-api"

// BuildInfo holds version information about the service build
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information. version, commit and date are set with
// -ldflags "-X 'modhook/internal/core/version.version=v0.1.0' -X ...commit=abcd -X ...date=2026-10-19"
func Info() BuildInfo {
	return BuildInfo{
		Service: ServiceName,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
