// Package cas implements build record storage.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/reqs/internal/core/domain"
	"go.trai.ch/reqs/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RecordStore = (*Store)(nil)

// Store implements ports.RecordStore using one flat JSON file per root,
// keyed by project name.
type Store struct {
	mu sync.RWMutex
}

// NewStore creates a new RecordStore.
func NewStore() (*Store, error) {
	return &Store{}, nil
}

// Get retrieves the build record of a project below root.
func (s *Store) Get(root, project string) (*domain.BuildRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records, err := s.load(root)
	if err != nil {
		return nil, err
	}

	record, ok := records[project]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Put stores the build record below root, replacing any earlier record of the same project.
func (s *Store) Put(root string, record domain.BuildRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(root)
	if err != nil {
		return err
	}
	records[record.Project] = record

	return s.save(root, records)
}

func (s *Store) load(root string) (map[string]domain.BuildRecord, error) {
	records := make(map[string]domain.BuildRecord)

	path := domain.DefaultStatePath(root)
	//nolint:gosec // Path is constructed from trusted root
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return records, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", path)
	}

	if len(data) == 0 {
		return records, nil
	}

	if err := json.Unmarshal(data, &records); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", path)
	}

	return records, nil
}

func (s *Store) save(root string, records map[string]domain.BuildRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	path := domain.DefaultStatePath(root)
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", path)
	}

	//nolint:gosec // Path is constructed from trusted root
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}

	return nil
}
