// Package fs provides file system adapters for package discovery and hashing.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
)

// Walker provides directory walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkDirs yields every directory below root in lexical order, parents before
// children. The root itself is not yielded. Directories whose name cannot be
// part of a dotted package name (any name containing '.', which covers VCS
// metadata and other hidden directories) and __pycache__ are skipped together
// with their contents.
//
// A directory that cannot be read ends the walk: its error is yielded with an
// empty path and nothing follows.
func (w *Walker) WalkDirs(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				yield(path, err)
				return filepath.SkipAll
			}

			if !d.IsDir() || path == root {
				return nil
			}

			if w.shouldSkipDir(d.Name()) {
				return filepath.SkipDir
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}

// shouldSkipDir reports whether a directory with the given base name is pruned.
func (w *Walker) shouldSkipDir(name string) bool {
	return strings.Contains(name, ".") || name == "__pycache__"
}
