// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/hoist/internal/adapters/cargo"
	_ "go.trai.ch/hoist/internal/adapters/config"
	_ "go.trai.ch/hoist/internal/adapters/journal"
	_ "go.trai.ch/hoist/internal/adapters/linear"
	_ "go.trai.ch/hoist/internal/adapters/logger"
	_ "go.trai.ch/hoist/internal/adapters/manifest"
	_ "go.trai.ch/hoist/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/hoist/internal/app"
)
