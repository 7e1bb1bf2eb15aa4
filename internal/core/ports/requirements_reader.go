package ports

import "go.trai.ch/reqs/internal/core/domain"

// RequirementsReader defines the interface for reading a requirements manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=requirements_reader.go -destination=mocks/mock_requirements_reader.go -package=mocks
type RequirementsReader interface {
	// Read returns the dependency declarations of the manifest at path, in file order,
	// with the editable-install sentinel removed.
	Read(path string, mode domain.NewlineMode) ([]domain.Requirement, error)
}
