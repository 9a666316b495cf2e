package progrock

import (
	"github.com/vito/progrock"
)

// Vertex implements ports.Vertex on a progrock vertex recorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Log writes msg as a line on the vertex output.
func (v *Vertex) Log(msg string) {
	_, _ = v.vertex.Stdout().Write([]byte(msg + "\n"))
}

// Complete marks the vertex as done, failed when err is non-nil.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}
