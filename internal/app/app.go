// Package app implements the application layer for heatsweep.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.trai.ch/heatsweep/internal/adapters/dipole"
	"go.trai.ch/heatsweep/internal/adapters/output"
	"go.trai.ch/heatsweep/internal/adapters/plot"
	"go.trai.ch/heatsweep/internal/core/domain"
	"go.trai.ch/heatsweep/internal/core/ports"
	"go.trai.ch/heatsweep/internal/engine/freqlist"
	"go.trai.ch/heatsweep/internal/engine/sweep"
	"go.trai.ch/heatsweep/internal/engine/validator"
	"go.trai.ch/zerr"
)

// EvaluatorFactory creates the evaluator of one run.
type EvaluatorFactory func(
	geo *domain.Geometry,
	transforms domain.TransformationSet,
	cache ports.KernelCache,
	threads int,
) ports.Evaluator

// App represents the main application logic.
type App struct {
	logger       ports.Logger
	logFile      ports.LogFile
	frequencies  ports.FrequencyLoader
	geometry     ports.GeometryLoader
	cache        ports.CacheStore
	telemetry    ports.Telemetry
	newEvaluator EvaluatorFactory
}

// New creates a new App instance evaluating with the dipole evaluator.
func New(
	log ports.Logger,
	logFile ports.LogFile,
	frequencies ports.FrequencyLoader,
	geometry ports.GeometryLoader,
	cache ports.CacheStore,
	telemetry ports.Telemetry,
) *App {
	return &App{
		logger:       log,
		logFile:      logFile,
		frequencies:  frequencies,
		geometry:     geometry,
		cache:        cache,
		telemetry:    telemetry,
		newEvaluator: newDipoleEvaluator,
	}
}

// WithEvaluatorFactory replaces the evaluator used by Run.
func (a *App) WithEvaluatorFactory(f EvaluatorFactory) *App {
	a.newEvaluator = f
	return a
}

func newDipoleEvaluator(
	geo *domain.Geometry,
	transforms domain.TransformationSet,
	cache ports.KernelCache,
	threads int,
) ports.Evaluator {
	return dipole.New(geo, transforms, cache, threads)
}

// Run performs one frequency sweep.
//
// Options are validated before anything is read. The cache is written back
// whenever the sweep started, even if it failed.
//
//nolint:cyclop // orchestration function
func (a *App) Run(ctx context.Context, opts domain.Options) (err error) {
	// 1. Validate
	if err := validator.Validate(opts); err != nil {
		return err
	}

	if err := a.logFile.OpenLogFile(opts.LogPath()); err != nil {
		return err
	}
	defer func() {
		if closeErr := a.logFile.CloseLogFile(); closeErr != nil {
			a.logger.Warn(fmt.Sprintf("closing log file: %v", closeErr))
		}
	}()
	defer func() {
		if closeErr := a.telemetry.Close(); closeErr != nil {
			a.logger.Warn(fmt.Sprintf("closing telemetry: %v", closeErr))
		}
	}()

	// 2. Plan the frequencies
	plan, err := freqlist.NewBuilder(a.frequencies, a.logger).Build(opts)
	if err != nil {
		return err
	}
	if plan.IsRange() {
		err := zerr.With(
			zerr.Wrap(domain.ErrUnsupportedMode, "use --omega or --omegafile to list frequencies"),
			"range", plan.Range().String(),
		)
		return zerr.With(err, "output", opts.OutputPath())
	}

	// 3. Load the geometry and open the outputs
	geo, err := a.geometry.LoadGeometry(opts.Geometry)
	if err != nil {
		return err
	}
	transforms, err := a.geometry.LoadTransformations(opts.TransFile, geo)
	if err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("read %d objects and %d transformations", len(geo.Objects), len(transforms)))

	if opts.OutputFile != "" {
		a.logger.Warn("--outputfile is unused when computing at discrete frequencies")
	}

	results, err := output.CreateByOmega(opts.ByOmegaPath(), opts.Geometry)
	if err != nil {
		return err
	}
	defer closeInto(results, &err)

	evaluator := a.newEvaluator(geo, transforms, a.cache, opts.Threads)
	driverOpts := []sweep.Option{sweep.WithKeepGoing(opts.KeepGoing)}
	if opts.PlotFlux {
		fluxEval, ok := evaluator.(ports.FluxEvaluator)
		if !ok {
			return zerr.Wrap(domain.ErrConflictingOptions, "the evaluator cannot resolve flux spatially")
		}
		var fluxOut *output.FluxWriter
		if fluxOut, err = output.CreateFlux(opts.FluxPath()); err != nil {
			return err
		}
		defer closeInto(fluxOut, &err)
		driverOpts = append(driverOpts, sweep.WithFlux(fluxEval, fluxOut))
	}

	// 4. Preload
	a.preload(ctx, opts.PreloadSources())

	// 5. Sweep
	summary, sweepErr := sweep.NewDriver(evaluator, results, a.telemetry, a.logger, driverOpts...).
		Run(ctx, plan.Frequencies(), transforms)
	a.logger.Info(fmt.Sprintf(
		"computed %d frequencies (%d evaluations, %d unavailable)",
		summary.Frequencies, summary.Evaluations, summary.Failures,
	))

	// 6. Write back
	writeErr := a.writeBack(ctx, opts.WriteBackTarget())
	a.logStats()

	return errors.Join(sweepErr, writeErr)
}

// preload merges every source in order. Earlier sources win on collisions and
// failures only cost cache hits.
func (a *App) preload(ctx context.Context, sources []string) {
	for _, loc := range sources {
		n, err := a.cache.Preload(ctx, loc)
		switch {
		case errors.Is(err, domain.ErrLocationNotFound):
			a.logger.Info(fmt.Sprintf("kernel cache %s does not exist yet", loc))
			continue
		case err != nil:
			a.logger.Warn(fmt.Sprintf("could not preload kernel cache %s: %v", loc, err))
			continue
		}
		a.logger.Info(fmt.Sprintf("preloaded %d kernel values from %s", n, loc))
	}
}

func (a *App) writeBack(ctx context.Context, target string) error {
	if target == "" {
		return nil
	}
	if err := a.cache.WriteBack(ctx, target); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("wrote %d kernel values to %s", a.cache.Len(), target))
	return nil
}

func (a *App) logStats() {
	st := a.cache.Stats()
	a.logger.Info(fmt.Sprintf(
		"kernel cache: %d hits, %d misses, %d inserts, %d preloaded, hit rate %.1f%%",
		st.Hits, st.Misses, st.Inserts, st.Preloaded, 100*st.HitRate,
	))
}

type closer interface {
	Close() error
}

// closeInto closes c and keeps the first error in dst.
func closeInto(c closer, dst *error) {
	if err := c.Close(); err != nil && *dst == nil {
		*dst = err
	}
}

// Plot renders the frequency-resolved output at input to an image at outPath.
func (a *App) Plot(input, outPath string, opts plot.Options) error {
	//nolint:gosec // Path is supplied by the user on purpose.
	f, err := os.Open(input)
	if err != nil {
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrInvalidInputFile, err), "path", input)
	}
	defer func() { _ = f.Close() }()

	series, err := output.ReadByOmega(f)
	if err != nil {
		return zerr.With(err, "path", input)
	}

	if opts.Title == "" {
		opts.Title = domain.FileBase(input)
	}
	if err := plot.Save(outPath, series, opts); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("wrote spectrum of %d transformations to %s", len(series), outPath))
	return nil
}
