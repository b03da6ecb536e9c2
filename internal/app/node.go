package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hoist/internal/adapters/cargo"     //nolint:depguard // Wired in app layer
	"go.trai.ch/hoist/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/hoist/internal/adapters/journal"   //nolint:depguard // Wired in app layer
	"go.trai.ch/hoist/internal/adapters/linear"    //nolint:depguard // Wired in app layer
	"go.trai.ch/hoist/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/hoist/internal/adapters/manifest"  //nolint:depguard // Wired in app layer
	"go.trai.ch/hoist/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/hoist/internal/core/ports"
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
			config.NodeID,
			logger.NodeID,
			cargo.NodeID,
			linear.ReporterNodeID,
			linear.PresenterNodeID,
			manifest.StoreNodeID,
			manifest.RewriterNodeID,
			manifest.InspectorNodeID,
			journal.NodeID,
			telemetry.NodeID,
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
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	var (
		deps Deps
		err  error
	)

	if deps.ConfigLoader, err = graft.Dep[ports.ConfigLoader](ctx); err != nil {
		return nil, err
	}
	if deps.Logger, err = graft.Dep[ports.Logger](ctx); err != nil {
		return nil, err
	}
	if deps.Registry, err = graft.Dep[ports.Registry](ctx); err != nil {
		return nil, err
	}
	if deps.Reporter, err = graft.Dep[ports.Reporter](ctx); err != nil {
		return nil, err
	}
	if deps.Presenter, err = graft.Dep[ports.Presenter](ctx); err != nil {
		return nil, err
	}
	if deps.Store, err = graft.Dep[ports.ManifestStore](ctx); err != nil {
		return nil, err
	}
	if deps.Rewriter, err = graft.Dep[ports.DependencyRewriter](ctx); err != nil {
		return nil, err
	}
	if deps.Inspector, err = graft.Dep[ports.ManifestInspector](ctx); err != nil {
		return nil, err
	}
	if deps.Journal, err = graft.Dep[ports.Journal](ctx); err != nil {
		return nil, err
	}
	if deps.Telemetry, err = graft.Dep[ports.TelemetryFactory](ctx); err != nil {
		return nil, err
	}

	return New(deps), nil
}
