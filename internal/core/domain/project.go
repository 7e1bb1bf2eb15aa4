package domain

import (
	"regexp"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

var validProjectNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// pep440VersionRegex accepts the public and local version forms of PEP 440:
// epoch, release, pre, post and dev segments and a local label.
var pep440VersionRegex = regexp.MustCompile(`(?i)^v?` +
	`(?:[0-9]+!)?` +
	`[0-9]+(?:\.[0-9]+)*` +
	`(?:[-_.]?(?:a|b|c|rc|alpha|beta|pre|preview)[-_.]?[0-9]*)?` +
	`(?:-[0-9]+|[-_.]?(?:post|rev|r)[-_.]?[0-9]*)?` +
	`(?:[-_.]?dev[-_.]?[0-9]*)?` +
	`(?:\+[a-z0-9]+(?:[-_.][a-z0-9]+)*)?$`)

// Project holds the static metadata of the distribution being packaged.
type Project struct {
	Name        string
	Version     string
	Author      string
	AuthorEmail string
}

// Validate checks the project name and version.
func (p Project) Validate() error {
	if p.Name == "" {
		return ErrMissingProjectName
	}
	if !validProjectNameRegex.MatchString(p.Name) {
		return zerr.With(ErrInvalidProjectName, "project", p.Name)
	}
	return ValidateVersion(p.Version)
}

// ValidateVersion checks that v is a semantic version or, failing that, a
// PEP 440 version such as "2.0rc1", "1.0.post1" or "1!2.0".
func ValidateVersion(v string) error {
	if v == "" {
		return ErrMissingProjectVersion
	}
	_, err := semver.NewVersion(v)
	if err == nil || pep440VersionRegex.MatchString(v) {
		return nil
	}
	return zerr.With(zerr.Wrap(err, ErrInvalidProjectVersion.Error()), "version", v)
}

// DiscoveryOptions controls package discovery.
type DiscoveryOptions struct {
	// Root is the directory that is searched for packages.
	Root string
	// Exclude holds glob patterns matched against dotted package names.
	Exclude []string
}

// ProjectConfig is the loaded project file with all paths resolved.
type ProjectConfig struct {
	Project Project

	// Dir is the directory that holds the project file.
	Dir string

	// Manifest is the absolute path of the requirements manifest.
	Manifest string

	// Newline selects the newline handling of the requirements reader.
	Newline NewlineMode

	// Discovery controls package discovery.
	Discovery DiscoveryOptions
}
