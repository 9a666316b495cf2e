package freqfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/heatsweep/internal/core/ports"
)

// NodeID is the unique identifier for the frequency loader Graft node.
const NodeID graft.ID = "adapter.frequency_loader"

func init() {
	graft.Register(graft.Node[ports.FrequencyLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FrequencyLoader, error) {
			return New(), nil
		},
	})
}
