package ports

import "go.trai.ch/reqs/internal/core/domain"

// ConfigLoader defines the interface for loading the project file.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds the project file at or above cwd and returns the resolved configuration.
	Load(cwd string) (*domain.ProjectConfig, error)
}
