// Package buildinfo holds build-time metadata injected via -ldflags.
package buildinfo

// Version is the semantic version or tag for this build.
// Inject via: -X github.com/chaeni-dev/ICT-INNO/internal/buildinfo.Version=...
var Version = ""

// Commit is the git commit SHA for this build.
// Inject via: -X github.com/chaeni-dev/ICT-INNO/internal/buildinfo.Commit=...
var Commit = ""

// BuildDate is the RFC3339 build timestamp.
// Inject via: -X github.com/chaeni-dev/ICT-INNO/internal/buildinfo.BuildDate=...
var BuildDate = ""

// Release returns the identifier reported to error tracking, preferring
// the version tag and falling back to the commit SHA.
func Release() string {
	if Version != "" {
		return Version
	}
	return Commit
}
