package linear

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hoist/internal/core/ports"
)

const (
	// ReporterNodeID is the unique identifier for the progress reporter Graft node.
	ReporterNodeID graft.ID = "adapter.reporter"
	// PresenterNodeID is the unique identifier for the view presenter Graft node.
	PresenterNodeID graft.ID = "adapter.presenter"
)

func init() {
	graft.Register(graft.Node[ports.Reporter]{
		ID:        ReporterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Reporter, error) {
			return NewReporter(nil), nil
		},
	})

	graft.Register(graft.Node[ports.Presenter]{
		ID:        PresenterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Presenter, error) {
			return NewReporter(nil), nil
		},
	})
}
