// Package app implements the application layer for reqs.
package app

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"go.trai.ch/reqs/internal/core/domain"
	"go.trai.ch/reqs/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	reader       ports.RequirementsReader
	finder       ports.PackageFinder
	hasher       ports.Hasher
	store        ports.RecordStore
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	reader ports.RequirementsReader,
	finder ports.PackageFinder,
	hasher ports.Hasher,
	store ports.RecordStore,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		reader:       reader,
		finder:       finder,
		hasher:       hasher,
		store:        store,
		logger:       log,
	}
}

// RequirementsOptions configures the Requirements method.
type RequirementsOptions struct {
	// Cwd is where the project file search starts. Defaults to ".".
	Cwd string
	// File reads this manifest directly instead of the one named by the project file.
	File string
	// Newline overrides the newline mode. Empty keeps the configured mode.
	Newline string
}

// Requirements reads the dependency declarations of the project manifest.
func (a *App) Requirements(ctx context.Context, opts RequirementsOptions) ([]domain.Requirement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	manifest := opts.File
	mode := domain.NewlineSpace

	if manifest == "" {
		cfg, err := a.configLoader.Load(cwdOrDefault(opts.Cwd))
		if err != nil {
			return nil, zerr.Wrap(err, "failed to load configuration")
		}
		manifest = cfg.Manifest
		mode = cfg.Newline
	}

	if opts.Newline != "" {
		m, err := domain.ParseNewlineMode(opts.Newline)
		if err != nil {
			return nil, err
		}
		mode = m
	}

	return a.readManifest(manifest, mode)
}

func (a *App) readManifest(path string, mode domain.NewlineMode) ([]domain.Requirement, error) {
	reqs, err := a.reader.Read(path, mode)
	if err != nil {
		return nil, err
	}

	if blank := lo.CountBy(reqs, domain.Requirement.IsBlank); blank > 0 {
		a.logger.Warn(fmt.Sprintf("%s contains %d blank declaration(s)", path, blank))
	}

	return reqs, nil
}

func cwdOrDefault(cwd string) string {
	if cwd == "" {
		return "."
	}
	return cwd
}
