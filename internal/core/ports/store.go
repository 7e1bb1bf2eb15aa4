package ports

import "go.trai.ch/reqs/internal/core/domain"

// RecordStore defines the interface for storing and retrieving build records.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RecordStore interface {
	// Get retrieves the last build record of a project below root.
	// Returns nil, nil if not found.
	Get(root, project string) (*domain.BuildRecord, error)

	// Put stores the build record below root.
	Put(root string, record domain.BuildRecord) error
}
