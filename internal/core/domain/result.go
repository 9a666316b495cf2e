package domain

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ResultVector holds one integrand value per transformation for a single frequency.
// It is created fresh for each frequency and handed to the output writer.
type ResultVector struct {
	Omega  Frequency
	Tags   []string
	Values []float64
}

// NewResultVector allocates a vector of len(tags) unavailable entries.
func NewResultVector(omega Frequency, tags []string) ResultVector {
	values := make([]float64, len(tags))
	for i := range values {
		values[i] = math.NaN()
	}
	return ResultVector{Omega: omega, Tags: tags, Values: values}
}

// Available reports whether the entry at index i holds an evaluated value.
func (r ResultVector) Available(i int) bool {
	return !math.IsNaN(r.Values[i])
}

// FluxSample is the flux attributed to one object for one frequency and transformation.
type FluxSample struct {
	Omega  Frequency
	Tag    string
	Label  string
	Center r3.Vec
	Flux   float64
}
