// Package validator checks option combinations before any work is done.
package validator

import (
	"fmt"

	"go.trai.ch/heatsweep/internal/core/domain"
	"go.trai.ch/zerr"
)

// Validate rejects option sets that cannot describe a run. It reports the first
// violation found and has no side effects.
func Validate(opts domain.Options) error {
	if opts.Geometry == "" {
		return zerr.With(zerr.Wrap(domain.ErrMissingRequiredOption, "--geometry option is mandatory"), "option", "geometry")
	}

	if opts.Cache != "" && opts.WriteCache != "" {
		return conflict("--cache and --writecache options are mutually exclusive", "cache", "writecache")
	}

	if target := opts.WriteBackTarget(); target != "" {
		if _, err := domain.ParseLocation(target); err != nil {
			return err
		}
	}

	if opts.PlotFlux && opts.ByOmegaFile != "" {
		return conflict("--byomegafile may not be used with --plotflux", "plotflux", "byomegafile")
	}

	if opts.Threads < 0 {
		return zerr.With(
			fmt.Errorf("%w: --nthread must not be negative", domain.ErrConfigParseFailed),
			"nthread", opts.Threads,
		)
	}

	return nil
}

func conflict(msg, first, second string) error {
	err := zerr.Wrap(domain.ErrConflictingOptions, msg)
	err = zerr.With(err, "option", first)
	return zerr.With(err, "conflicts_with", second)
}
