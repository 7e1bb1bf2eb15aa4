// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/reqs/internal/adapters/cas"
	_ "go.trai.ch/reqs/internal/adapters/config"
	_ "go.trai.ch/reqs/internal/adapters/fs"
	_ "go.trai.ch/reqs/internal/adapters/logger"
	_ "go.trai.ch/reqs/internal/adapters/requirements"
	// Register app nodes.
	_ "go.trai.ch/reqs/internal/app"
)
