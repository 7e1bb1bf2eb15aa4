package fs_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reqs/internal/adapters/fs"
	"go.trai.ch/reqs/internal/core/domain"
)

// layout creates the given files (and their parent directories) below root.
func layout(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, nil, 0o600))
	}
}

func TestWalker_WalkDirs(t *testing.T) {
	root := t.TempDir()
	layout(t, root,
		".git/config",
		".venv/lib/site.py",
		"__pycache__/x.pyc",
		"foo.bar/inner/mod.py",
		"src/pkg/mod.py",
		"README.md",
	)

	var got []string
	for dir, err := range fs.NewWalker().WalkDirs(root) {
		require.NoError(t, err)
		rel, err := filepath.Rel(root, dir)
		require.NoError(t, err)
		got = append(got, filepath.ToSlash(rel))
	}

	assert.Equal(t, []string{"src", "src/pkg"}, got)
}

func TestWalker_WalkDirs_MissingRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	var errs []error
	for dir, err := range fs.NewWalker().WalkDirs(missing) {
		assert.Equal(t, missing, dir)
		errs = append(errs, err)
	}

	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], os.ErrNotExist)
}

func TestWalker_WalkDirs_EarlyStop(t *testing.T) {
	root := t.TempDir()
	layout(t, root, "a/x", "b/x", "c/x")

	count := 0
	for range fs.NewWalker().WalkDirs(root) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestFinder_FindPackages(t *testing.T) {
	root := t.TempDir()
	layout(t, root,
		"mylib/__init__.py",
		"mylib/core/__init__.py",
		"mylib/core/utils.py",
		"mylib/data/loader.py",
		"mylib/data/nested/__init__.py",
		"scripts/run.py",
		"tests/__init__.py",
		"tests/unit/__init__.py",
		".hidden/__init__.py",
		"__pycache__/__init__.py",
	)

	finder := fs.NewFinder(fs.NewWalker())

	got, err := finder.FindPackages(domain.DiscoveryOptions{Root: root})
	require.NoError(t, err)
	assert.Equal(t, []string{"mylib", "mylib.core", "tests", "tests.unit"}, got)
	assert.True(t, slices.IsSorted(got))
}

func TestFinder_FindPackages_Exclude(t *testing.T) {
	root := t.TempDir()
	layout(t, root,
		"mylib/__init__.py",
		"tests/__init__.py",
		"tests/unit/__init__.py",
		"examples/__init__.py",
		"examples/demo/__init__.py",
	)

	finder := fs.NewFinder(fs.NewWalker())

	got, err := finder.FindPackages(domain.DiscoveryOptions{
		Root:    root,
		Exclude: []string{"tests", "tests.*", "examples"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"examples.demo", "mylib"}, got)
}

func TestFinder_FindPackages_Empty(t *testing.T) {
	finder := fs.NewFinder(fs.NewWalker())

	got, err := finder.FindPackages(domain.DiscoveryOptions{Root: t.TempDir()})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFinder_FindPackages_MissingRoot(t *testing.T) {
	finder := fs.NewFinder(fs.NewWalker())

	_, err := finder.FindPackages(domain.DiscoveryOptions{Root: filepath.Join(t.TempDir(), "nope")})
	require.ErrorContains(t, err, domain.ErrPackageDiscoveryFailed.Error())
}

func TestFinder_FindPackages_RootIsFile(t *testing.T) {
	root := t.TempDir()
	layout(t, root, "file.txt")

	finder := fs.NewFinder(fs.NewWalker())

	_, err := finder.FindPackages(domain.DiscoveryOptions{Root: filepath.Join(root, "file.txt")})
	require.ErrorContains(t, err, domain.ErrPackageDiscoveryFailed.Error())
}

func TestHasher_ComputeFileDigest(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	c := filepath.Join(dir, "c.txt")
	require.NoError(t, os.WriteFile(a, []byte("pandas\nnumpy\n"), 0o600))
	require.NoError(t, os.WriteFile(b, []byte("pandas\nnumpy\n"), 0o600))
	require.NoError(t, os.WriteFile(c, []byte("pandas\n"), 0o600))

	h := fs.NewHasher()

	da, err := h.ComputeFileDigest(a)
	require.NoError(t, err)
	db, err := h.ComputeFileDigest(b)
	require.NoError(t, err)
	dc, err := h.ComputeFileDigest(c)
	require.NoError(t, err)

	assert.Len(t, da, 16)
	assert.Equal(t, da, db)
	assert.NotEqual(t, da, dc)
}

func TestHasher_ComputeFileDigest_Missing(t *testing.T) {
	_, err := fs.NewHasher().ComputeFileDigest(filepath.Join(t.TempDir(), "missing"))
	require.ErrorContains(t, err, "failed to open file")
}

func TestFinder_FindPackages_DottedDirectory(t *testing.T) {
	root := t.TempDir()
	layout(t, root,
		"app/__init__.py",
		"foo.bar/__init__.py",
		"foo.bar/sub/__init__.py",
		"app/v1.2/__init__.py",
	)

	got, err := fs.NewFinder(fs.NewWalker()).FindPackages(domain.DiscoveryOptions{Root: root})
	require.NoError(t, err)
	assert.Equal(t, []string{"app"}, got)
}

func TestFinder_FindPackages_UnreadableSubtree(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}

	root := t.TempDir()
	layout(t, root, "app/__init__.py", "app/locked/__init__.py")

	locked := filepath.Join(root, "app", "locked")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o750) })

	got, err := fs.NewFinder(fs.NewWalker()).FindPackages(domain.DiscoveryOptions{Root: root})
	require.ErrorContains(t, err, domain.ErrPackageDiscoveryFailed.Error())
	assert.Nil(t, got)
}
