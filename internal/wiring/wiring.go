// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/heatsweep/internal/adapters/blob"
	_ "go.trai.ch/heatsweep/internal/adapters/freqfile"
	_ "go.trai.ch/heatsweep/internal/adapters/geometry"
	_ "go.trai.ch/heatsweep/internal/adapters/kcache"
	_ "go.trai.ch/heatsweep/internal/adapters/logger"
	_ "go.trai.ch/heatsweep/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/heatsweep/internal/app"
)
