package output

import (
	"bufio"
	"fmt"
	"io"

	"go.trai.ch/heatsweep/internal/core/domain"
	"go.trai.ch/heatsweep/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FluxWriter = (*FluxWriter)(nil)

// FluxWriter writes one line per flux sample:
//
//	<omega> <tag> <label> <x> <y> <z> <flux>
type FluxWriter struct {
	w      *bufio.Writer
	closer io.Closer
	path   string
}

// CreateFlux creates the flux file at path and writes the header.
func CreateFlux(path string) (*FluxWriter, error) {
	f, err := createFile(path)
	if err != nil {
		return nil, err
	}
	return NewFluxWriter(f, f, path), nil
}

// NewFluxWriter writes to w and closes closer, if non-nil, on Close.
func NewFluxWriter(w io.Writer, closer io.Closer, path string) *FluxWriter {
	fw := &FluxWriter{w: bufio.NewWriter(w), closer: closer, path: path}
	_, _ = fw.w.WriteString("# omega tag object x y z flux\n")
	return fw
}

// WriteFlux appends the samples.
func (f *FluxWriter) WriteFlux(samples []domain.FluxSample) error {
	for _, s := range samples {
		_, err := fmt.Fprintf(f.w, "%s %s %s %g %g %g %s\n",
			s.Omega, s.Tag, s.Label, s.Center.X, s.Center.Y, s.Center.Z, formatValue(s.Flux))
		if err != nil {
			return f.fail(err)
		}
	}
	if err := f.w.Flush(); err != nil {
		return f.fail(err)
	}
	return nil
}

// Close flushes and closes the underlying file.
func (f *FluxWriter) Close() error {
	if err := f.w.Flush(); err != nil {
		return f.fail(err)
	}
	if f.closer == nil {
		return nil
	}
	if err := f.closer.Close(); err != nil {
		return f.fail(err)
	}
	return nil
}

func (f *FluxWriter) fail(err error) error {
	return zerr.With(fmt.Errorf("%w: %w", domain.ErrOutputWriteFailed, err), "path", f.path)
}
