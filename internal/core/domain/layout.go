package domain

import "path/filepath"

const (
	// ReqsDirName is the name of the internal state directory.
	ReqsDirName = ".reqs"

	// StateFileName is the name of the record store file.
	StateFileName = "state.json"

	// ProjectFileName is the name of the project configuration file.
	ProjectFileName = "reqs.yaml"

	// ManifestFileName is the default name of the requirements manifest.
	ManifestFileName = "requirements.txt"

	// PackageMarker is the file that turns a directory into a package.
	PackageMarker = "__init__.py"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultStatePath returns the default path of the record store under root.
// It joins root, .reqs and state.json.
func DefaultStatePath(root string) string {
	return filepath.Join(root, ReqsDirName, StateFileName)
}
