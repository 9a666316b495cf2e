// Package sweep evaluates the integrand over a list of frequencies and geometric transformations.
package sweep

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/heatsweep/internal/core/domain"
	"go.trai.ch/heatsweep/internal/core/ports"
	"go.trai.ch/zerr"
)

// Summary counts the work done by one sweep.
type Summary struct {
	Frequencies int
	Evaluations int
	Failures    int
}

// Driver runs the frequency sweep. Frequencies and transformations are visited
// sequentially in the order given; only the evaluator may parallelize internally.
type Driver struct {
	evaluator ports.Evaluator
	results   ports.ResultWriter
	telemetry ports.Telemetry
	logger    ports.Logger

	fluxEvaluator ports.FluxEvaluator
	fluxWriter    ports.FluxWriter

	keepGoing bool
}

// Option configures a Driver.
type Option func(*Driver)

// WithFlux additionally evaluates per-object flux and hands it to out.
func WithFlux(eval ports.FluxEvaluator, out ports.FluxWriter) Option {
	return func(d *Driver) {
		d.fluxEvaluator = eval
		d.fluxWriter = out
	}
}

// WithKeepGoing marks failed entries as unavailable instead of aborting the sweep.
// A sweep with failures still ends with domain.ErrSweepIncomplete.
func WithKeepGoing(keepGoing bool) Option {
	return func(d *Driver) {
		d.keepGoing = keepGoing
	}
}

// NewDriver creates a Driver.
func NewDriver(
	evaluator ports.Evaluator,
	results ports.ResultWriter,
	telemetry ports.Telemetry,
	logger ports.Logger,
	opts ...Option,
) *Driver {
	d := &Driver{
		evaluator: evaluator,
		results:   results,
		telemetry: telemetry,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run evaluates every frequency against every transformation and writes one
// result vector per frequency. The first failed evaluation aborts the sweep
// unless the driver keeps going.
func (d *Driver) Run(
	ctx context.Context,
	freqs []domain.Frequency,
	transforms domain.TransformationSet,
) (Summary, error) {
	var summary Summary
	tags := transforms.Tags()

	for _, omega := range freqs {
		failures, err := d.step(ctx, omega, tags, &summary)
		summary.Failures += failures
		if err != nil {
			return summary, err
		}
		summary.Frequencies++
	}

	if summary.Failures > 0 {
		return summary, zerr.With(
			zerr.Wrap(domain.ErrSweepIncomplete, "some entries could not be evaluated"),
			"failures", summary.Failures,
		)
	}
	return summary, nil
}

// step evaluates a single frequency. It returns the number of entries marked unavailable.
func (d *Driver) step(
	ctx context.Context,
	omega domain.Frequency,
	tags []string,
	summary *Summary,
) (failures int, err error) {
	vctx, vertex := d.telemetry.Record(ctx, "omega="+omega.String())
	defer func() { vertex.Complete(err) }()

	d.logger.Info("computing quantities at omega=" + omega.String())

	result := domain.NewResultVector(omega, tags)
	for i, tag := range tags {
		summary.Evaluations++
		value, evalErr := d.evaluator.Evaluate(vctx, omega, i)
		if evalErr != nil {
			evalErr = evaluationError(evalErr, omega, tag)
			if !d.keepGoing {
				return failures, evalErr
			}
			failures++
			d.logger.Warn(fmt.Sprintf("entry unavailable: %v", evalErr))
			vertex.Log("unavailable: " + tag)
			continue
		}
		result.Values[i] = value
		vertex.Log(fmt.Sprintf("%s: %.8e", tag, value))
	}

	if d.fluxEvaluator != nil {
		n, fluxErr := d.stepFlux(vctx, omega, tags)
		failures += n
		if fluxErr != nil {
			return failures, fluxErr
		}
	}

	if err := d.results.WriteResult(result); err != nil {
		return failures, zerr.With(zerr.Wrap(err, "writing result vector"), "omega", omega.String())
	}
	return failures, nil
}

func (d *Driver) stepFlux(ctx context.Context, omega domain.Frequency, tags []string) (int, error) {
	failures := 0
	for i, tag := range tags {
		samples, err := d.fluxEvaluator.EvaluateFlux(ctx, omega, i)
		if err != nil {
			err = evaluationError(err, omega, tag)
			if !d.keepGoing {
				return failures, err
			}
			failures++
			d.logger.Warn(fmt.Sprintf("flux unavailable: %v", err))
			continue
		}
		if err := d.fluxWriter.WriteFlux(samples); err != nil {
			return failures, zerr.With(zerr.Wrap(err, "writing flux samples"), "omega", omega.String())
		}
	}
	return failures, nil
}

func evaluationError(err error, omega domain.Frequency, tag string) error {
	if errors.Is(err, domain.ErrEvaluationFailure) {
		err = zerr.Wrap(err, "evaluator failed")
	} else {
		err = fmt.Errorf("%w: %w", domain.ErrEvaluationFailure, err)
	}
	return zerr.With(zerr.With(err, "omega", omega.String()), "transform", tag)
}
