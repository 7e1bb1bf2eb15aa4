package domain

import "go.trai.ch/zerr"

var (
	// ErrManifestNotFound is returned when the requirements manifest does not exist.
	ErrManifestNotFound = zerr.New("requirements manifest not found")

	// ErrManifestReadFailed is returned when the requirements manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read requirements manifest")

	// ErrConfigNotFound is returned when no project file can be found.
	ErrConfigNotFound = zerr.New("could not find reqs.yaml")

	// ErrConfigReadFailed is returned when the project file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read project file")

	// ErrConfigParseFailed is returned when the project file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse project file")

	// ErrMissingProjectName is returned when the project file does not declare a name.
	ErrMissingProjectName = zerr.New("missing project name")

	// ErrInvalidProjectName is returned when a project name contains invalid characters.
	ErrInvalidProjectName = zerr.New(
		"project name must start with a letter or digit and contain only letters, digits, '.', '_' and '-'",
	)

	// ErrMissingProjectVersion is returned when the project file does not declare a version.
	ErrMissingProjectVersion = zerr.New("missing project version")

	// ErrInvalidProjectVersion is returned when the project version is not a valid version.
	ErrInvalidProjectVersion = zerr.New("invalid project version")

	// ErrInvalidNewlineMode is returned when the newline mode is neither 'space' nor 'strip'.
	ErrInvalidNewlineMode = zerr.New("invalid newline mode, expected 'space' or 'strip'")

	// ErrInvalidOutputFormat is returned when the descriptor format is neither 'json' nor 'yaml'.
	ErrInvalidOutputFormat = zerr.New("invalid output format, expected 'json' or 'yaml'")

	// ErrPackageDiscoveryFailed is returned when walking the package root fails.
	ErrPackageDiscoveryFailed = zerr.New("failed to discover packages")

	// ErrStoreCreateFailed is returned when the record store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create record store directory")

	// ErrStoreReadFailed is returned when the record store cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read record store")

	// ErrStoreUnmarshalFailed is returned when the record store cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal record store")

	// ErrStoreMarshalFailed is returned when the record store cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal record store")

	// ErrStoreWriteFailed is returned when the record store cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write record store")

	// ErrOutputWriteFailed is returned when the distribution descriptor cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write distribution descriptor")
)
