// Package dipole evaluates the heat-transfer integrand for objects small
// compared to the wavelength, treating each object as a point dipole.
//
// Lengths are in micrometers and angular frequencies in units of 3e14 rad/sec,
// so the vacuum wavenumber k equals the real part of omega.
package dipole

import (
	"context"
	"fmt"
	"math"
	"math/cmplx"
	"runtime"

	"go.trai.ch/heatsweep/internal/core/domain"
	"go.trai.ch/heatsweep/internal/core/ports"
	"go.trai.ch/heatsweep/internal/vec3"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// prefactor is 4/(3 pi).
const prefactor = 4 / (3 * math.Pi)

var (
	_ ports.Evaluator     = (*Evaluator)(nil)
	_ ports.FluxEvaluator = (*Evaluator)(nil)
)

// Evaluator implements ports.Evaluator and ports.FluxEvaluator.
//
// With one object it computes the emitted power spectral density, with two
// objects the power transferred from the first object to the second.
type Evaluator struct {
	geo        *domain.Geometry
	transforms domain.TransformationSet
	cache      ports.KernelCache
	threads    int
}

// New creates an Evaluator. Threads bounds the number of concurrent kernel
// computations; zero selects the number of CPUs.
func New(geo *domain.Geometry, transforms domain.TransformationSet, cache ports.KernelCache, threads int) *Evaluator {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	return &Evaluator{
		geo:        geo,
		transforms: transforms,
		cache:      cache,
		threads:    threads,
	}
}

// Evaluate returns the integrand at omega for the transformation at transformIndex.
func (e *Evaluator) Evaluate(ctx context.Context, omega domain.Frequency, transformIndex int) (float64, error) {
	tr, err := e.transform(transformIndex)
	if err != nil {
		return 0, err
	}

	alphas, err := e.polarizabilities(ctx, omega)
	if err != nil {
		return 0, err
	}

	k := omega.Real()
	var value float64
	if len(alphas) == 1 {
		value = prefactor * k * k * k * imag(alphas[0])
	} else {
		coupling, err := e.coupling(omega, tr)
		if err != nil {
			return 0, err
		}
		value = prefactor * imag(alphas[0]) * imag(alphas[1]) * coupling
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, zerr.With(
			zerr.Wrap(domain.ErrEvaluationFailure, "integrand is not finite"),
			"omega", omega.String(),
		)
	}
	return value, nil
}

// EvaluateFlux attributes the integrand to the objects of the geometry: the
// emitter of a single-object geometry carries the emitted power, in a
// two-object geometry the source loses what the receiver absorbs.
func (e *Evaluator) EvaluateFlux(ctx context.Context, omega domain.Frequency, transformIndex int) ([]domain.FluxSample, error) {
	value, err := e.Evaluate(ctx, omega, transformIndex)
	if err != nil {
		return nil, err
	}
	tr := e.transforms[transformIndex]

	samples := make([]domain.FluxSample, len(e.geo.Objects))
	for i, obj := range e.geo.Objects {
		flux := value
		if len(e.geo.Objects) == 2 && i == 0 {
			flux = -value
		}
		samples[i] = domain.FluxSample{
			Omega:  omega,
			Tag:    tr.Tag,
			Label:  obj.Label,
			Center: tr.Centers[i],
			Flux:   flux,
		}
	}
	return samples, nil
}

func (e *Evaluator) transform(index int) (domain.Transformation, error) {
	if index < 0 || index >= len(e.transforms) {
		return domain.Transformation{}, zerr.With(
			zerr.Wrap(domain.ErrEvaluationFailure, "transformation index out of range"),
			"index", index,
		)
	}
	return e.transforms[index], nil
}

// polarizabilities returns the polarizability of every object, computing
// cache misses concurrently.
func (e *Evaluator) polarizabilities(ctx context.Context, omega domain.Frequency) ([]complex128, error) {
	alphas := make([]complex128, len(e.geo.Objects))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.threads)
	for i := range e.geo.Objects {
		obj := &e.geo.Objects[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			key := domain.CacheKey{
				Geometry: e.geo.Identity,
				Omega:    omega,
				Kind:     domain.PolarizabilityKind(obj.Label),
			}
			if alpha, ok := e.cache.Lookup(key); ok {
				alphas[i] = alpha
				return nil
			}

			alpha, err := polarizability(*obj, omega)
			if err != nil {
				return err
			}
			e.cache.Insert(key, alpha)
			alphas[i] = alpha
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return alphas, nil
}

// polarizability is the quasi-static sphere polarizability a^3 (eps-1)/(eps+2).
func polarizability(obj domain.Object, omega domain.Frequency) (complex128, error) {
	eps := obj.Material.Permittivity(omega)
	a3 := complex(obj.Radius*obj.Radius*obj.Radius, 0)
	alpha := a3 * (eps - 1) / (eps + 2)
	if cmplx.IsNaN(alpha) || cmplx.IsInf(alpha) {
		err := zerr.Wrap(domain.ErrEvaluationFailure, "polarizability is not finite")
		err = zerr.With(err, "object", obj.Label)
		return 0, zerr.With(err, "epsilon", fmt.Sprint(eps))
	}
	return alpha, nil
}

// coupling returns (3 + (kd)^2 + (kd)^4) / d^6 for the center distance d of
// the transformed objects.
func (e *Evaluator) coupling(omega domain.Frequency, tr domain.Transformation) (float64, error) {
	key := domain.CacheKey{
		Geometry:  e.geo.Identity,
		Omega:     omega,
		Transform: tr.Identity,
		Kind:      domain.KindCoupling,
	}
	if value, ok := e.cache.Lookup(key); ok {
		return real(value), nil
	}

	d := vec3.Distance(tr.Centers[0], tr.Centers[1])
	if !(d > 0) {
		return 0, zerr.With(
			zerr.Wrap(domain.ErrEvaluationFailure, "objects overlap"),
			"transform", tr.Tag,
		)
	}

	kd := omega.Real() * d
	kd2 := kd * kd
	d3 := d * d * d
	value := (3 + kd2 + kd2*kd2) / (d3 * d3)
	e.cache.Insert(key, complex(value, 0))
	return value, nil
}
