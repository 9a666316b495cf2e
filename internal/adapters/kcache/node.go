package kcache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/heatsweep/internal/adapters/blob"
	"go.trai.ch/heatsweep/internal/core/ports"
)

// NodeID is the unique identifier for the kernel cache Graft node.
const NodeID graft.ID = "adapter.kernel_cache"

func init() {
	graft.Register(graft.Node[ports.CacheStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{blob.NodeID},
		Run: func(ctx context.Context) (ports.CacheStore, error) {
			blobs, err := graft.Dep[ports.BlobStore](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(blobs), nil
		},
	})
}
