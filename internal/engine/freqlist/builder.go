// Package freqlist assembles the frequencies of a run from the frequency file,
// the explicitly listed values, and the integration range options.
package freqlist

import (
	"fmt"

	"go.trai.ch/heatsweep/internal/core/domain"
	"go.trai.ch/heatsweep/internal/core/ports"
	"go.trai.ch/zerr"
)

// Builder produces the frequency plan of a run.
type Builder struct {
	loader ports.FrequencyLoader
	logger ports.Logger
}

// NewBuilder creates a Builder reading frequency files through loader.
func NewBuilder(loader ports.FrequencyLoader, log ports.Logger) *Builder {
	return &Builder{
		loader: loader,
		logger: log,
	}
}

// Build returns either a non-empty discrete plan or a validated range plan.
//
// File frequencies come first, in file order, followed by the explicit values
// in the order given. A discrete list combined with either range bound is
// rejected with domain.ErrConflictingFrequencyMode. Without any discrete
// frequency the bounds describe an integral: the lower bound defaults to zero
// and an unset upper bound means infinity.
func (b *Builder) Build(opts domain.Options) (domain.FrequencyPlan, error) {
	var list []domain.Frequency

	if opts.OmegaFile != "" {
		fromFile, err := b.loader.LoadFrequencies(opts.OmegaFile)
		if err != nil {
			return domain.FrequencyPlan{}, err
		}
		list = fromFile
		b.logger.Info(fmt.Sprintf("read %d frequencies from file %s", len(fromFile), opts.OmegaFile))
	}

	if len(opts.Omegas) > 0 {
		merged := make([]domain.Frequency, 0, len(list)+len(opts.Omegas))
		merged = append(merged, list...)
		merged = append(merged, opts.Omegas...)
		list = merged
		b.logger.Info(fmt.Sprintf("read %d frequencies from command line", len(opts.Omegas)))
	}

	if len(list) > 0 {
		if opts.OmegaMinSet || opts.OmegaMaxSet {
			return domain.FrequencyPlan{}, zerr.With(
				fmt.Errorf("%w: %w", domain.ErrConflictingOptions, domain.ErrConflictingFrequencyMode),
				"frequencies", len(list),
			)
		}
		b.logger.Info(fmt.Sprintf("computing spectral density at %d frequencies", len(list)))
		return domain.NewDiscretePlan(list), nil
	}

	rng, err := resolveRange(opts)
	if err != nil {
		return domain.FrequencyPlan{}, err
	}
	b.logger.Info("integrating over range omega=" + rng.String())
	return domain.NewRangePlan(rng), nil
}

func resolveRange(opts domain.Options) (domain.FrequencyRange, error) {
	var rng domain.FrequencyRange

	if opts.OmegaMinSet {
		if opts.OmegaMin.Real() < 0 || !opts.OmegaMin.IsReal() {
			return rng, zerr.With(
				zerr.Wrap(domain.ErrInvalidRangeBound, "invalid value specified for omegamin"),
				"omegamin", opts.OmegaMin.String(),
			)
		}
		rng.Min = opts.OmegaMin.Real()
	}

	if opts.OmegaMaxSet {
		if opts.OmegaMax.Real() < rng.Min || !opts.OmegaMax.IsReal() {
			return rng, zerr.With(
				zerr.Wrap(domain.ErrInvalidRangeBound, "invalid value specified for omegamax"),
				"omegamax", opts.OmegaMax.String(),
			)
		}
		rng.Max = opts.OmegaMax.Real()
		rng.Bounded = true
	}

	return rng, nil
}
