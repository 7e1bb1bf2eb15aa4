// Package config provides the project file loader for reqs.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"go.trai.ch/reqs/internal/core/domain"
	"go.trai.ch/reqs/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds reqs.yaml in cwd or the closest parent directory and returns the
// resolved project configuration. Relative paths in the file are resolved
// against the directory that holds it.
func (l *Loader) Load(cwd string) (*domain.ProjectConfig, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	var reqsfile Reqsfile
	if err := readAndUnmarshalYAML(configPath, &reqsfile); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	return l.toProjectConfig(configPath, &reqsfile)
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrConfigNotFound.Error()), "cwd", cwd)
	}

	currentDir := absCwd
	for {
		candidate := filepath.Join(currentDir, domain.ProjectFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func (l *Loader) toProjectConfig(configPath string, f *Reqsfile) (*domain.ProjectConfig, error) {
	if f.Name == "" {
		return nil, zerr.With(domain.ErrMissingProjectName, "path", configPath)
	}
	if f.Version == "" {
		return nil, zerr.With(domain.ErrMissingProjectVersion, "path", configPath)
	}

	mode, err := domain.ParseNewlineMode(f.Newline)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	manifest := f.Requirements
	if manifest == "" {
		manifest = domain.ManifestFileName
	}

	discovery := domain.DiscoveryOptions{}
	if f.Packages != nil {
		discovery.Root = f.Packages.Root
		discovery.Exclude = l.validPatterns(f.Packages.Exclude)
	}

	dir := filepath.Dir(configPath)
	discovery.Root = resolvePath(dir, discovery.Root)

	return &domain.ProjectConfig{
		Project: domain.Project{
			Name:        f.Name,
			Version:     f.Version,
			Author:      f.Author,
			AuthorEmail: f.AuthorEmail,
		},
		Dir:       dir,
		Manifest:  resolvePath(dir, manifest),
		Newline:   mode,
		Discovery: discovery,
	}, nil
}

// validPatterns drops exclude patterns that can never match and warns about them.
func (l *Loader) validPatterns(patterns []string) []string {
	valid := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if _, err := path.Match(p, ""); err != nil {
			l.Logger.Warn(fmt.Sprintf("ignoring malformed exclude pattern %q", p))
			continue
		}
		valid = append(valid, p)
	}
	return valid
}

func resolvePath(dir, p string) string {
	if p == "" {
		return filepath.Clean(dir)
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(dir, p))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
// Unknown keys are rejected; an empty file leaves target untouched.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(configFile))
	dec.KnownFields(true)
	if parseErr := dec.Decode(target); parseErr != nil && !errors.Is(parseErr, io.EOF) {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
