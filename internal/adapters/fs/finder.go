package fs

import (
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"
	"go.trai.ch/reqs/internal/core/domain"
	"go.trai.ch/reqs/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PackageFinder = (*Finder)(nil)

// Finder discovers importable packages: directories holding a package marker
// whose parents up to the discovery root are packages as well.
type Finder struct {
	walker *Walker
}

// NewFinder creates a new Finder.
func NewFinder(walker *Walker) *Finder {
	return &Finder{walker: walker}
}

// FindPackages returns the dotted names of all packages below opts.Root, sorted.
// Names matching one of opts.Exclude are left out, but their subpackages are
// still reported unless excluded themselves.
func (f *Finder) FindPackages(opts domain.DiscoveryOptions) ([]string, error) {
	root := opts.Root
	if root == "" {
		root = "."
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPackageDiscoveryFailed.Error()), "root", root)
	}
	if !info.IsDir() {
		return nil, zerr.With(domain.ErrPackageDiscoveryFailed, "root", root)
	}

	found := make(map[string]bool)
	for dir, err := range f.walker.WalkDirs(root) {
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrPackageDiscoveryFailed.Error()), "path", dir)
		}

		rel, err := filepath.Rel(root, dir)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrPackageDiscoveryFailed.Error()), "path", dir)
		}

		if parent := filepath.Dir(rel); parent != "." && !found[parent] {
			continue
		}

		if !isPackage(dir) {
			continue
		}
		found[rel] = true
	}

	names := lo.FilterMap(lo.Keys(found), func(rel string, _ int) (string, bool) {
		name := strings.ReplaceAll(filepath.ToSlash(rel), "/", ".")
		return name, !excluded(name, opts.Exclude)
	})
	slices.Sort(names)

	return names, nil
}

func isPackage(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, domain.PackageMarker))
	return err == nil && !info.IsDir()
}

func excluded(name string, patterns []string) bool {
	return lo.SomeBy(patterns, func(pattern string) bool {
		matched, _ := path.Match(pattern, name)
		return matched
	})
}
