package domain

import "time"

// Distribution is the descriptor handed to the packaging tool.
type Distribution struct {
	Name            string        `json:"name" yaml:"name"`
	Version         string        `json:"version" yaml:"version"`
	Author          string        `json:"author,omitempty" yaml:"author,omitempty"`
	AuthorEmail     string        `json:"author_email,omitempty" yaml:"author_email,omitempty"`
	Packages        []string      `json:"packages" yaml:"packages"`
	InstallRequires []Requirement `json:"install_requires" yaml:"install_requires"`
	PackageURLs     []string      `json:"package_urls,omitempty" yaml:"package_urls,omitempty"`
}

// BuildRecord is the persisted result of the last setup run for a project.
type BuildRecord struct {
	// Project is the project name, used as the store key.
	Project string `json:"project"`

	// ManifestDigest is the xxhash digest of the manifest bytes.
	ManifestDigest string `json:"manifest_digest"`

	// Distribution is the descriptor produced by the run.
	Distribution Distribution `json:"distribution"`

	// Timestamp is when the record was written.
	Timestamp time.Time `json:"timestamp"`
}
