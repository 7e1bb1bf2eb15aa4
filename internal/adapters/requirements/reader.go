// Package requirements reads dependency declarations from a requirements manifest.
package requirements

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"go.trai.ch/reqs/internal/core/domain"
	"go.trai.ch/reqs/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RequirementsReader = (*Reader)(nil)

// Reader implements ports.RequirementsReader for line-oriented manifests.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read returns the declarations of the manifest at path in file order.
//
// Every newline is replaced according to mode and the first line equal to the
// editable-install sentinel is dropped. Nothing else is trimmed, so blank lines
// survive as blank declarations.
func (r *Reader) Read(path string, mode domain.NewlineMode) ([]domain.Requirement, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Join(domain.ErrManifestNotFound, zerr.With(zerr.Wrap(err, "failed to open manifest"), "path", path))
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // read-only handle

	lines, err := readLines(f)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	return Transform(lines, mode), nil
}

// Transform applies the newline replacement and sentinel removal to raw lines
// that still carry their terminators.
func Transform(lines []string, mode domain.NewlineMode) []domain.Requirement {
	reqs := make([]domain.Requirement, 0, len(lines))
	removed := false
	for _, line := range lines {
		if !removed && IsSentinel(line) {
			removed = true
			continue
		}
		reqs = append(reqs, domain.Requirement(strings.ReplaceAll(line, "\n", mode.Replacement())))
	}
	return reqs
}

// IsSentinel reports whether a raw line is the editable-install sentinel.
// Only the terminating newline is ignored; "-e . " is not the sentinel.
func IsSentinel(line string) bool {
	return strings.TrimSuffix(line, "\n") == domain.EditableSentinel
}

// readLines splits the input into lines, keeping each newline terminator.
// The last line is returned without a terminator if the input does not end in one.
func readLines(rd io.Reader) ([]string, error) {
	br := bufio.NewReader(rd)
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
