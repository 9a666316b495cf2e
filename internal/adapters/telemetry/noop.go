// Package telemetry holds telemetry implementations that need no backend.
package telemetry

import (
	"context"

	"go.trai.ch/heatsweep/internal/core/ports"
)

// Noop discards every vertex.
type Noop struct{}

// NewNoop creates a Noop telemetry.
func NewNoop() *Noop {
	return &Noop{}
}

// Record returns ctx unchanged and a vertex that ignores all calls.
func (n *Noop) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, noopVertex{}
}

// Close does nothing.
func (n *Noop) Close() error {
	return nil
}

type noopVertex struct{}

func (noopVertex) Log(string)     {}
func (noopVertex) Complete(error) {}
