package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/heatsweep/internal/adapters/freqfile"           //nolint:depguard // Wired in app layer
	"go.trai.ch/heatsweep/internal/adapters/geometry"           //nolint:depguard // Wired in app layer
	"go.trai.ch/heatsweep/internal/adapters/kcache"             //nolint:depguard // Wired in app layer
	"go.trai.ch/heatsweep/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/heatsweep/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/heatsweep/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			logger.LogFileNodeID,
			freqfile.NodeID,
			geometry.NodeID,
			kcache.NodeID,
			progrock.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	logFile, err := graft.Dep[ports.LogFile](ctx)
	if err != nil {
		return nil, err
	}

	frequencies, err := graft.Dep[ports.FrequencyLoader](ctx)
	if err != nil {
		return nil, err
	}

	geo, err := graft.Dep[ports.GeometryLoader](ctx)
	if err != nil {
		return nil, err
	}

	cache, err := graft.Dep[ports.CacheStore](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(log, logFile, frequencies, geo, cache, telemetry), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
