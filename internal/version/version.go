// Package version provides version information for the sequencer binaries.
// Version, GitCommit and BuildDate can be injected with -ldflags.
package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var (
	// Version is the semantic version of the application.
	Version = "0.1.0"

	// GitCommit is the git commit hash when the binary was built.
	GitCommit = "unknown"

	// BuildDate is the date when the binary was built.
	BuildDate = "unknown"
)

// versionCodenames maps minor releases to their nucleobase codenames.
var versionCodenames = map[string]string{
	"0.1.0": "Adenine",
	"0.2.0": "Cytosine",
	"0.3.0": "Guanine",
	"0.4.0": "Thymine",
	"1.0.0": "Uracil",
}

// Info represents version information.
type Info struct {
	Version   string          `json:"version"`
	Codename  string          `json:"codename"`
	GitCommit string          `json:"gitCommit"`
	BuildDate string          `json:"buildDate"`
	GoVersion string          `json:"goVersion"`
	Platform  string          `json:"platform"`
	SemVer    *semver.Version `json:"-"`
}

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// GetCodename returns the codename for the current version.
func GetCodename() string {
	return GetCodenameForVersion(Version)
}

// GetCodenameForVersion returns the codename of version, using the
// major.minor.0 release for patch and prerelease versions.
func GetCodenameForVersion(version string) string {
	if codename, exists := versionCodenames[version]; exists {
		return codename
	}

	sv, err := semver.NewVersion(version)
	if err != nil {
		return ""
	}

	baseVersion := fmt.Sprintf("%d.%d.0", sv.Major(), sv.Minor())
	return versionCodenames[baseVersion]
}

// GetInfo returns version information, failing on an invalid Version.
func GetInfo() (*Info, error) {
	sv, err := semver.NewVersion(Version)
	if err != nil {
		return nil, fmt.Errorf("invalid semantic version '%s': %w", Version, err)
	}

	return &Info{
		Version:   Version,
		Codename:  GetCodename(),
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		SemVer:    sv,
	}, nil
}

// GetFormattedVersion returns a one-line version string for app.
func GetFormattedVersion(app string) string {
	info, err := GetInfo()
	if err != nil {
		return fmt.Sprintf("%s v%s (invalid version)", app, Version)
	}

	var parts []string
	if info.Codename != "" {
		parts = append(parts, fmt.Sprintf("%s v%s '%s'", app, info.Version, info.Codename))
	} else {
		parts = append(parts, fmt.Sprintf("%s v%s", app, info.Version))
	}

	if info.GitCommit != "unknown" && info.GitCommit != "" {
		shortCommit := info.GitCommit
		if len(shortCommit) > 7 {
			shortCommit = shortCommit[:7]
		}
		parts = append(parts, fmt.Sprintf("commit %s", shortCommit))
	}

	if info.BuildDate != "unknown" && info.BuildDate != "" {
		parts = append(parts, fmt.Sprintf("built %s", info.BuildDate))
	}

	return strings.Join(parts, ", ")
}

// GetDetailedVersion returns multi-line version information.
func GetDetailedVersion(app string) string {
	info, err := GetInfo()
	if err != nil {
		return fmt.Sprintf("%s v%s (error: %v)", app, Version, err)
	}

	lines := []string{GetFormattedVersion(app)}
	lines = append(lines, fmt.Sprintf("Git Commit: %s", info.GitCommit))
	lines = append(lines, fmt.Sprintf("Build Date: %s", info.BuildDate))
	if meta := info.SemVer.Metadata(); meta != "" {
		lines = append(lines, fmt.Sprintf("Build Metadata: %s", meta))
	}
	lines = append(lines, fmt.Sprintf("Go Version: %s", info.GoVersion))
	lines = append(lines, fmt.Sprintf("Platform: %s", info.Platform))

	return strings.Join(lines, "\n")
}

// ValidateVersion validates that Version is a valid semantic version.
func ValidateVersion() error {
	if _, err := semver.NewVersion(Version); err != nil {
		return fmt.Errorf("invalid semantic version '%s': %w", Version, err)
	}
	return nil
}

// IsPrerelease returns true if the current version is a prerelease.
func IsPrerelease() bool {
	sv, err := semver.NewVersion(Version)
	if err != nil {
		return false
	}
	return sv.Prerelease() != ""
}

// IsDevelopment returns true if build information was not injected.
func IsDevelopment() bool {
	return GitCommit == "unknown" || BuildDate == "unknown"
}
