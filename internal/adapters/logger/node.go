package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/heatsweep/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// NodeID is the graft node providing ports.Logger.
	NodeID graft.ID = "adapter.logger"
	// LogFileNodeID is the graft node providing ports.LogFile.
	LogFileNodeID graft.ID = "adapter.log_file"
)

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			return New(), nil
		},
	})

	graft.Register(graft.Node[ports.LogFile]{
		ID:        LogFileNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.LogFile, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			lf, ok := log.(ports.LogFile)
			if !ok {
				return nil, zerr.New("logger does not support log files")
			}
			return lf, nil
		},
	})
}
