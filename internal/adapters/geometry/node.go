package geometry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/heatsweep/internal/core/ports"
)

// NodeID is the unique identifier for the geometry loader Graft node.
const NodeID graft.ID = "adapter.geometry_loader"

func init() {
	graft.Register(graft.Node[ports.GeometryLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.GeometryLoader, error) {
			return NewLoader(), nil
		},
	})
}
