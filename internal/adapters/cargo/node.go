package cargo

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hoist/internal/adapters/logger"
	"go.trai.ch/hoist/internal/core/ports"
)

// NodeID is the unique identifier for the registry Graft node.
const NodeID graft.ID = "adapter.registry"

func init() {
	graft.Register(graft.Node[ports.Registry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Registry, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRegistry(log), nil
		},
	})
}
