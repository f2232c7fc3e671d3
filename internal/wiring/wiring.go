// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/kick/internal/adapters/config"
	_ "go.trai.ch/kick/internal/adapters/fs"
	_ "go.trai.ch/kick/internal/adapters/logger"
	_ "go.trai.ch/kick/internal/adapters/shell"
	_ "go.trai.ch/kick/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/kick/internal/app"
	_ "go.trai.ch/kick/internal/engine/bootstrap"
)
