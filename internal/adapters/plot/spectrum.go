// Package plot renders frequency-resolved spectra.
package plot

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"go.trai.ch/heatsweep/internal/adapters/output"
	"go.trai.ch/heatsweep/internal/core/domain"
	"go.trai.ch/zerr"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const (
	// DefaultWidth is the default image width.
	DefaultWidth = 6 * vg.Inch
	// DefaultHeight is the default image height.
	DefaultHeight = 4 * vg.Inch
)

// Options controls rendering.
type Options struct {
	Title  string
	Width  vg.Length
	Height vg.Length
}

// Spectrum builds a plot with one line per series. Unavailable points are
// dropped. The value axis is logarithmic when every value is positive.
func Spectrum(series []output.Series, opts Options) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "omega (3e14 rad/sec)"
	p.Y.Label.Text = "spectral density"

	logScale := true
	lines := make([]any, 0, 2*len(series))
	for _, s := range series {
		pts := make(plotter.XYs, 0, len(s.Omega))
		for i := range s.Omega {
			v := s.Values[i]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if v <= 0 {
				logScale = false
			}
			pts = append(pts, plotter.XY{X: s.Omega[i], Y: v})
		}
		if len(pts) == 0 {
			continue
		}
		lines = append(lines, s.Tag, pts)
	}
	if len(lines) == 0 {
		return nil, zerr.Wrap(domain.ErrInvalidInputFile, "no plottable data")
	}

	if logScale {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	if err := plotutil.AddLinePoints(p, lines...); err != nil {
		return nil, zerr.Wrap(err, "failed to add lines")
	}
	return p, nil
}

// WriteTo renders series in the given image format ("png", "svg", "pdf", ...).
func WriteTo(w io.Writer, series []output.Series, format string, opts Options) error {
	p, err := Spectrum(series, opts)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(size(opts.Width, DefaultWidth), size(opts.Height, DefaultHeight), format)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "unsupported image format"), "format", format)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrOutputWriteFailed, err)
	}
	return nil
}

// Save renders series to path. The image format follows the file extension.
func Save(path string, series []output.Series, opts Options) error {
	p, err := Spectrum(series, opts)
	if err != nil {
		return err
	}
	if err := p.Save(size(opts.Width, DefaultWidth), size(opts.Height, DefaultHeight), path); err != nil {
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrOutputWriteFailed, err), "path", path)
	}
	return nil
}

// FormatOf returns the image format implied by the extension of path.
func FormatOf(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

func size(v, fallback vg.Length) vg.Length {
	if v <= 0 {
		return fallback
	}
	return v
}
