// Package vec3 provides 3-vector algebra for geometry and evaluator code.
//
// Vectors are gonum r3.Vec values. Every function is allocation free and
// side-effect free except PlusEquals and Normalize, which update their first
// argument in place.
package vec3

import (
	"go.trai.ch/heatsweep/internal/core/domain"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vec is a point or displacement in 3-space.
type Vec = r3.Vec

// New returns the vector (x, y, z).
func New(x, y, z float64) Vec {
	return Vec{X: x, Y: y, Z: z}
}

// FromSlice converts a 3-element slice. ok is false for any other length.
func FromSlice(s []float64) (v Vec, ok bool) {
	if len(s) != 3 {
		return Vec{}, false
	}
	return Vec{X: s[0], Y: s[1], Z: s[2]}, true
}

// Zero returns the zero vector.
func Zero() Vec {
	return Vec{}
}

// Scale returns alpha*v.
func Scale(alpha float64, v Vec) Vec {
	return r3.Scale(alpha, v)
}

// ScaleAdd returns v1 + alpha*v2.
func ScaleAdd(v1 Vec, alpha float64, v2 Vec) Vec {
	return Vec{
		X: v1.X + alpha*v2.X,
		Y: v1.Y + alpha*v2.Y,
		Z: v1.Z + alpha*v2.Z,
	}
}

// LinComb returns alpha*v1 + beta*v2.
func LinComb(alpha float64, v1 Vec, beta float64, v2 Vec) Vec {
	return Vec{
		X: alpha*v1.X + beta*v2.X,
		Y: alpha*v1.Y + beta*v2.Y,
		Z: alpha*v1.Z + beta*v2.Z,
	}
}

// Add returns v1 + v2.
func Add(v1, v2 Vec) Vec {
	return r3.Add(v1, v2)
}

// Sub returns v1 - v2.
func Sub(v1, v2 Vec) Vec {
	return r3.Sub(v1, v2)
}

// PlusEquals performs v1 += alpha*v2 in place.
func PlusEquals(v1 *Vec, alpha float64, v2 Vec) {
	v1.X += alpha * v2.X
	v1.Y += alpha * v2.Y
	v1.Z += alpha * v2.Z
}

// Cross returns v1 × v2.
func Cross(v1, v2 Vec) Vec {
	return r3.Cross(v1, v2)
}

// Dot returns v1 · v2.
func Dot(v1, v2 Vec) float64 {
	return r3.Dot(v1, v2)
}

// Norm2 returns |v|².
func Norm2(v Vec) float64 {
	return r3.Norm2(v)
}

// Norm returns |v|.
func Norm(v Vec) float64 {
	return r3.Norm(v)
}

// Distance returns |v1 - v2|.
func Distance(v1, v2 Vec) float64 {
	return r3.Norm(r3.Sub(v1, v2))
}

// Distance2 returns |v1 - v2|².
func Distance2(v1, v2 Vec) float64 {
	return r3.Norm2(r3.Sub(v1, v2))
}

// Normalize scales v to unit length in place and returns its original length.
// A zero vector is left unchanged and ErrDegenerateVector is returned.
func Normalize(v *Vec) (float64, error) {
	d := r3.Norm(*v)
	if d == 0 {
		return 0, domain.ErrDegenerateVector
	}
	v.X /= d
	v.Y /= d
	v.Z /= d
	return d, nil
}

// Rotate returns v rotated by angle radians about the axis through origin
// with direction axis. A zero axis yields ErrDegenerateVector.
func Rotate(v Vec, angle float64, axis, origin Vec) (Vec, error) {
	if r3.Norm2(axis) == 0 {
		return Vec{}, domain.ErrDegenerateVector
	}
	rel := r3.Sub(v, origin)
	return r3.Add(origin, r3.Rotate(rel, angle, axis)), nil
}
