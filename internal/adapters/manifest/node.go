package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hoist/internal/adapters/logger"
	"go.trai.ch/hoist/internal/core/ports"
)

const (
	// StoreNodeID is the unique identifier for the manifest store Graft node.
	StoreNodeID graft.ID = "adapter.manifest_store"
	// RewriterNodeID is the unique identifier for the dependency rewriter Graft node.
	RewriterNodeID graft.ID = "adapter.dependency_rewriter"
	// InspectorNodeID is the unique identifier for the manifest inspector Graft node.
	InspectorNodeID graft.ID = "adapter.manifest_inspector"
)

func init() {
	graft.Register(graft.Node[ports.ManifestStore]{
		ID:        StoreNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ManifestStore, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(log), nil
		},
	})

	graft.Register(graft.Node[ports.DependencyRewriter]{
		ID:        RewriterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DependencyRewriter, error) {
			return NewRewriter(), nil
		},
	})

	graft.Register(graft.Node[ports.ManifestInspector]{
		ID:        InspectorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestInspector, error) {
			return NewInspector(), nil
		},
	})
}
