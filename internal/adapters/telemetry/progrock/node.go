package progrock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/heatsweep/internal/core/ports"
)

// NodeID is the graft node providing ports.Telemetry.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Telemetry, error) {
			return New(), nil
		},
	})
}
