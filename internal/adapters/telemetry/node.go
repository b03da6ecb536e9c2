package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hoist/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry factory Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.TelemetryFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TelemetryFactory, error) {
			return NewFactory(), nil
		},
	})
}
