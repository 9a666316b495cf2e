// Package progrock records sweep progress on a progrock tape.
package progrock

import (
	"context"
	"fmt"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/heatsweep/internal/core/ports"
)

// Recorder implements ports.Telemetry with one progrock vertex per recorded name.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder

	mu    sync.Mutex
	count map[string]int
}

// New creates a Recorder on a fresh tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder writing status updates to w.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:     w,
		rec:   progrock.NewRecorder(w),
		count: make(map[string]int),
	}
}

// Record starts a vertex. Repeated names get distinct digests so that a
// frequency listed twice shows up twice.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	r.mu.Lock()
	n := r.count[name]
	r.count[name] = n + 1
	r.mu.Unlock()

	key := name
	if n > 0 {
		key = fmt.Sprintf("%s#%d", name, n)
	}
	return ctx, &Vertex{vertex: r.rec.Vertex(digest.FromString(key), name)}
}

// Close flushes and closes the tape.
func (r *Recorder) Close() error {
	return r.w.Close()
}
