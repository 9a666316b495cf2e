package domain

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Frequency is a complex angular frequency in units of 3e14 rad/sec.
// The real part is the propagating frequency; a non-zero imaginary part
// evaluates the integrand off the real axis.
type Frequency complex128

// ParseFrequency parses a real or complex literal such as "3", "2.5+0.1i" or "(1+2i)".
func ParseFrequency(s string) (Frequency, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, zerr.With(zerr.Wrap(ErrInvalidFrequency, "empty value"), "value", s)
	}
	c, err := strconv.ParseComplex(trimmed, 128)
	if err != nil {
		return 0, zerr.With(fmt.Errorf("%w: %w", ErrInvalidFrequency, err), "value", s)
	}
	if math.IsNaN(real(c)) || math.IsNaN(imag(c)) || math.IsInf(real(c), 0) || math.IsInf(imag(c), 0) {
		return 0, zerr.With(zerr.Wrap(ErrInvalidFrequency, "value is not finite"), "value", s)
	}
	return Frequency(c), nil
}

// Real returns the real part.
func (f Frequency) Real() float64 { return real(complex128(f)) }

// Imag returns the imaginary part.
func (f Frequency) Imag() float64 { return imag(complex128(f)) }

// IsReal reports whether the imaginary part is exactly zero.
func (f Frequency) IsReal() bool { return f.Imag() == 0 }

// String formats real frequencies as plain numbers and complex ones as Go complex literals.
// The result is accepted by ParseFrequency.
func (f Frequency) String() string {
	if f.IsReal() {
		return strconv.FormatFloat(f.Real(), 'g', -1, 64)
	}
	return strconv.FormatComplex(complex128(f), 'g', -1, 128)
}

// FrequencyRange is a continuous integration interval on the positive real axis.
type FrequencyRange struct {
	Min float64
	// Max is meaningful only when Bounded is true.
	Max     float64
	Bounded bool
}

func (r FrequencyRange) String() string {
	if !r.Bounded {
		return fmt.Sprintf("(%g,infinity)", r.Min)
	}
	return fmt.Sprintf("(%g,%g)", r.Min, r.Max)
}

// PlanMode selects between a discrete sweep and a frequency integral.
type PlanMode int

const (
	// ModeDiscrete evaluates the integrand at an explicit list of frequencies.
	ModeDiscrete PlanMode = iota
	// ModeRange integrates the integrand over a FrequencyRange.
	ModeRange
)

func (m PlanMode) String() string {
	switch m {
	case ModeDiscrete:
		return "discrete"
	case ModeRange:
		return "range"
	default:
		return "unknown"
	}
}

// FrequencyPlan is the outcome of building the frequency list: either a non-empty
// ordered list of frequencies or a validated range, never both.
type FrequencyPlan struct {
	mode PlanMode
	list []Frequency
	rng  FrequencyRange
}

// NewDiscretePlan creates a plan that sweeps the given frequencies in order.
// The slice is copied.
func NewDiscretePlan(list []Frequency) FrequencyPlan {
	return FrequencyPlan{mode: ModeDiscrete, list: slices.Clone(list)}
}

// NewRangePlan creates a plan that integrates over r.
func NewRangePlan(r FrequencyRange) FrequencyPlan {
	return FrequencyPlan{mode: ModeRange, rng: r}
}

// Mode returns the plan mode.
func (p FrequencyPlan) Mode() PlanMode { return p.mode }

// IsRange reports whether the plan requests frequency integration.
func (p FrequencyPlan) IsRange() bool { return p.mode == ModeRange }

// Len returns the number of discrete frequencies. It is zero in range mode.
func (p FrequencyPlan) Len() int { return len(p.list) }

// Frequencies returns a copy of the discrete frequencies in evaluation order.
func (p FrequencyPlan) Frequencies() []Frequency { return slices.Clone(p.list) }

// Range returns the integration range. It is the zero value in discrete mode.
func (p FrequencyPlan) Range() FrequencyRange { return p.rng }
