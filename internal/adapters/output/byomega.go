// Package output writes and reads the frequency-resolved and flux output files.
package output

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"go.trai.ch/heatsweep/internal/core/domain"
	"go.trai.ch/heatsweep/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ResultWriter = (*ByOmegaWriter)(nil)

// ByOmegaWriter writes one line per frequency and transformation:
//
//	<omega> <tag> <value>
//
// Unavailable entries are written as NaN. Lines are flushed after every
// result vector so an aborted run keeps everything written so far.
type ByOmegaWriter struct {
	w      *bufio.Writer
	closer io.Closer
	path   string
}

// CreateByOmega creates the file at path and writes the header.
func CreateByOmega(path, geometry string) (*ByOmegaWriter, error) {
	f, err := createFile(path)
	if err != nil {
		return nil, err
	}
	w, err := NewByOmegaWriter(f, f, path, geometry)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return w, nil
}

// NewByOmegaWriter writes to w and closes closer, if non-nil, on Close.
func NewByOmegaWriter(w io.Writer, closer io.Closer, path, geometry string) (*ByOmegaWriter, error) {
	bw := &ByOmegaWriter{w: bufio.NewWriter(w), closer: closer, path: path}
	header := []string{
		"# heatsweep frequency-resolved output",
		"# geometry: " + geometry,
		"# columns:",
		"# 1: angular frequency (3e14 rad/sec)",
		"# 2: transformation tag",
		"# 3: spectral density of transferred power",
	}
	for _, line := range header {
		if _, err := bw.w.WriteString(line + "\n"); err != nil {
			return nil, bw.fail(err)
		}
	}
	if err := bw.w.Flush(); err != nil {
		return nil, bw.fail(err)
	}
	return bw, nil
}

// WriteResult appends one line per transformation of result.
func (b *ByOmegaWriter) WriteResult(result domain.ResultVector) error {
	omega := result.Omega.String()
	for i, tag := range result.Tags {
		if _, err := fmt.Fprintf(b.w, "%s %s %s\n", omega, tag, formatValue(result.Values[i])); err != nil {
			return b.fail(err)
		}
	}
	if err := b.w.Flush(); err != nil {
		return b.fail(err)
	}
	return nil
}

// Close flushes and closes the underlying file.
func (b *ByOmegaWriter) Close() error {
	if err := b.w.Flush(); err != nil {
		return b.fail(err)
	}
	if b.closer == nil {
		return nil
	}
	if err := b.closer.Close(); err != nil {
		return b.fail(err)
	}
	return nil
}

func (b *ByOmegaWriter) fail(err error) error {
	return zerr.With(fmt.Errorf("%w: %w", domain.ErrOutputWriteFailed, err), "path", b.path)
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'e', 8, 64)
}

func createFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrOutputWriteFailed, err), "path", path)
		}
	}
	//nolint:gosec // Path is supplied by the user on purpose.
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrOutputWriteFailed, err), "path", path)
	}
	return f, nil
}
