package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/package-url/packageurl-go"
	"github.com/samber/lo"
	"go.trai.ch/reqs/internal/core/domain"
	"go.trai.ch/zerr"
)

// SetupOptions configures the Setup method.
type SetupOptions struct {
	// Cwd is where the project file search starts. Defaults to ".".
	Cwd string
}

// SetupResult is the outcome of a setup run.
type SetupResult struct {
	Distribution domain.Distribution
	// Changed is false when the manifest is byte-identical to the previous run.
	Changed bool
}

// Setup assembles the distribution descriptor of the project: static metadata,
// discovered packages and the install requirements read from the manifest.
// The run is recorded so the next one can tell whether the manifest changed.
func (a *App) Setup(ctx context.Context, opts SetupOptions) (*SetupResult, error) {
	cfg, err := a.configLoader.Load(cwdOrDefault(opts.Cwd))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if err := cfg.Project.Validate(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reqs, err := a.readManifest(cfg.Manifest, cfg.Newline)
	if err != nil {
		return nil, err
	}

	packages, err := a.finder.FindPackages(cfg.Discovery)
	if err != nil {
		return nil, err
	}
	if len(packages) == 0 {
		a.logger.Warn(fmt.Sprintf("no packages found below %s", cfg.Discovery.Root))
	}

	dist := NewDistribution(cfg.Project, packages, reqs)

	changed, err := a.record(cfg, dist)
	if err != nil {
		return nil, err
	}

	a.logger.Info(fmt.Sprintf("%s %s: %d package(s), %d requirement(s)",
		dist.Name, dist.Version, len(dist.Packages), len(dist.InstallRequires)))

	return &SetupResult{Distribution: dist, Changed: changed}, nil
}

// record compares the manifest digest with the stored record and stores the new one.
func (a *App) record(cfg *domain.ProjectConfig, dist domain.Distribution) (bool, error) {
	digest, err := a.hasher.ComputeFileDigest(cfg.Manifest)
	if err != nil {
		return false, err
	}

	prev, err := a.store.Get(cfg.Dir, cfg.Project.Name)
	if err != nil {
		return false, err
	}

	changed := prev == nil || prev.ManifestDigest != digest
	if !changed {
		a.logger.Info("requirements unchanged since last setup")
	}

	err = a.store.Put(cfg.Dir, domain.BuildRecord{
		Project:        cfg.Project.Name,
		ManifestDigest: digest,
		Distribution:   dist,
		Timestamp:      time.Now().UTC(),
	})
	if err != nil {
		return false, err
	}

	return changed, nil
}

// NewDistribution builds the descriptor handed to the packaging tool.
// Requirements are passed through verbatim. Package URLs are derived only for
// declarations that name a distribution, so comments and pip options get none.
func NewDistribution(p domain.Project, packages []string, reqs []domain.Requirement) domain.Distribution {
	if packages == nil {
		packages = []string{}
	}
	if reqs == nil {
		reqs = []domain.Requirement{}
	}

	return domain.Distribution{
		Name:            p.Name,
		Version:         p.Version,
		Author:          p.Author,
		AuthorEmail:     p.AuthorEmail,
		Packages:        packages,
		InstallRequires: reqs,
		PackageURLs: lo.FilterMap(reqs, func(r domain.Requirement, _ int) (string, bool) {
			if r.Name() == "" {
				return "", false
			}
			return PackageURL(r), true
		}),
	}
}

// PackageURL returns the pypi package URL of a requirement. The name is
// normalized the way pypi package URLs expect: lower case, '_' as '-'.
func PackageURL(r domain.Requirement) string {
	name := strings.ReplaceAll(strings.ToLower(r.Name()), "_", "-")
	return packageurl.NewPackageURL(packageurl.TypePyPi, "", name, r.PinnedVersion(), nil, "").ToString()
}
