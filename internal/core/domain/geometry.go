package domain

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Material describes the dielectric response of an object.
// Either Epsilon is set (frequency-independent) or the Drude parameters are.
type Material struct {
	Epsilon complex128
	Drude   *DrudeModel
}

// DrudeModel is eps(w) = EpsInf - OmegaP^2 / (w (w + i Gamma)).
type DrudeModel struct {
	EpsInf float64
	OmegaP float64
	Gamma  float64
}

// Permittivity returns the relative permittivity at omega.
func (m Material) Permittivity(omega Frequency) complex128 {
	if m.Drude == nil {
		return m.Epsilon
	}
	w := complex128(omega)
	wp := complex(m.Drude.OmegaP, 0)
	return complex(m.Drude.EpsInf, 0) - wp*wp/(w*(w+complex(0, m.Drude.Gamma)))
}

// Object is a compact body of the geometry.
type Object struct {
	Label    string
	Center   r3.Vec
	Radius   float64
	Material Material
}

// Geometry is the base configuration before any transformation is applied.
type Geometry struct {
	// Path is the file the geometry was read from.
	Path string
	// Identity is a content hash of the geometry file. It keys cache entries.
	Identity string
	Objects  []Object
}

// ObjectIndex returns the index of the object with the given label, or -1.
func (g *Geometry) ObjectIndex(label string) int {
	for i := range g.Objects {
		if g.Objects[i].Label == label {
			return i
		}
	}
	return -1
}

// Transformation is a named rigid-body placement of the geometry's objects.
// Centers holds the transformed center of every object, indexed like Geometry.Objects.
type Transformation struct {
	Tag string
	// Identity is a content hash of Tag and Centers. It keys cache entries.
	Identity string
	Centers  []r3.Vec
}

// TransformationSet is the ordered list of transformations of one run.
// Its length is the width of every result vector.
type TransformationSet []Transformation

// Tags returns the transformation tags in order.
func (s TransformationSet) Tags() []string {
	tags := make([]string, len(s))
	for i, t := range s {
		tags[i] = t.Tag
	}
	return tags
}
