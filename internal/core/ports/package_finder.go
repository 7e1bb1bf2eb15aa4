package ports

import "go.trai.ch/reqs/internal/core/domain"

// PackageFinder defines the interface for discovering importable packages.
//
//go:generate go run go.uber.org/mock/mockgen -source=package_finder.go -destination=mocks/mock_package_finder.go -package=mocks
type PackageFinder interface {
	// FindPackages returns the dotted names of all packages below opts.Root, sorted.
	FindPackages(opts domain.DiscoveryOptions) ([]string, error)
}
