package vec3_test

import (
	"errors"
	"math"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/heatsweep/internal/core/domain"
	"go.trai.ch/heatsweep/internal/vec3"
)

const tol = 1e-12

func assertVec(t *testing.T, want, got vec3.Vec) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, "X")
	assert.InDelta(t, want.Y, got.Y, tol, "Y")
	assert.InDelta(t, want.Z, got.Z, tol, "Z")
}

func TestArithmetic(t *testing.T) {
	v1 := vec3.New(1, 2, 3)
	v2 := vec3.New(4, 5, 6)

	tests := []struct {
		name string
		got  vec3.Vec
		want vec3.Vec
	}{
		{"zero", vec3.Zero(), vec3.New(0, 0, 0)},
		{"scale", vec3.Scale(2, v1), vec3.New(2, 4, 6)},
		{"scale add", vec3.ScaleAdd(v1, 2, v2), vec3.New(9, 12, 15)},
		{"lin comb", vec3.LinComb(2, v1, -1, v2), vec3.New(-2, -1, 0)},
		{"add", vec3.Add(v1, v2), vec3.New(5, 7, 9)},
		{"sub", vec3.Sub(v1, v2), vec3.New(-3, -3, -3)},
		{"cross", vec3.Cross(v1, v2), vec3.New(-3, 6, -3)},
		{"cross unit", vec3.Cross(vec3.New(1, 0, 0), vec3.New(0, 1, 0)), vec3.New(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec(t, tt.want, tt.got)
		})
	}
}

func TestScalars(t *testing.T) {
	v1 := vec3.New(1, 2, 3)
	v2 := vec3.New(4, 6, 3)

	assert.InDelta(t, 25.0, vec3.Dot(v1, v2), tol)
	assert.InDelta(t, 14.0, vec3.Norm2(v1), tol)
	assert.InDelta(t, math.Sqrt(14), vec3.Norm(v1), tol)
	assert.InDelta(t, 25.0, vec3.Distance2(v1, v2), tol)
	assert.InDelta(t, 5.0, vec3.Distance(v1, v2), tol)
}

func TestPlusEquals(t *testing.T) {
	v := vec3.New(1, 1, 1)
	vec3.PlusEquals(&v, 0.5, vec3.New(2, 4, 6))
	assertVec(t, vec3.New(2, 3, 4), v)
}

func TestNormalize(t *testing.T) {
	v := vec3.New(3, 0, 4)
	d, err := vec3.Normalize(&v)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, d, tol)
	assertVec(t, vec3.New(0.6, 0, 0.8), v)
}

func TestNormalize_ZeroVector(t *testing.T) {
	v := vec3.Zero()
	d, err := vec3.Normalize(&v)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDegenerateVector))
	assert.Zero(t, d)
	assertVec(t, vec3.Zero(), v)
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name   string
		v      vec3.Vec
		angle  float64
		axis   vec3.Vec
		origin vec3.Vec
		want   vec3.Vec
	}{
		{
			name:  "quarter turn about z",
			v:     vec3.New(1, 0, 0),
			angle: math.Pi / 2,
			axis:  vec3.New(0, 0, 1),
			want:  vec3.New(0, 1, 0),
		},
		{
			name:  "unnormalized axis",
			v:     vec3.New(0, 1, 0),
			angle: math.Pi,
			axis:  vec3.New(5, 0, 0),
			want:  vec3.New(0, -1, 0),
		},
		{
			name:   "about offset origin",
			v:      vec3.New(2, 0, 0),
			angle:  math.Pi,
			axis:   vec3.New(0, 0, 1),
			origin: vec3.New(1, 0, 0),
			want:   vec3.New(0, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := vec3.Rotate(tt.v, tt.angle, tt.axis, tt.origin)
			require.NoError(t, err)
			assertVec(t, tt.want, got)
		})
	}
}

func TestRotate_ZeroAxis(t *testing.T) {
	_, err := vec3.Rotate(vec3.New(1, 0, 0), 1, vec3.Zero(), vec3.Zero())
	assert.ErrorIs(t, err, domain.ErrDegenerateVector)
}

func TestFromSlice(t *testing.T) {
	v, ok := vec3.FromSlice([]float64{1, 2, 3})
	require.True(t, ok)
	assertVec(t, vec3.New(1, 2, 3), v)

	_, ok = vec3.FromSlice([]float64{1, 2})
	assert.False(t, ok)
}

// bounded keeps quick-check inputs away from overflow.
func bounded(x float64) float64 {
	return math.Mod(x, 1e6)
}

func TestProperties(t *testing.T) {
	cfg := &quick.Config{MaxCount: 500}

	t.Run("cross product is orthogonal to both operands", func(t *testing.T) {
		f := func(a, b, c, d, e, g float64) bool {
			v1 := vec3.New(bounded(a), bounded(b), bounded(c))
			v2 := vec3.New(bounded(d), bounded(e), bounded(g))
			x := vec3.Cross(v1, v2)
			scale := vec3.Norm(v1) * vec3.Norm(v2) * (vec3.Norm(v1) + vec3.Norm(v2))
			return math.Abs(vec3.Dot(x, v1)) <= 1e-9*scale+1e-9 &&
				math.Abs(vec3.Dot(x, v2)) <= 1e-9*scale+1e-9
		}
		require.NoError(t, quick.Check(f, cfg))
	})

	t.Run("distance is symmetric and matches norm of difference", func(t *testing.T) {
		f := func(a, b, c, d, e, g float64) bool {
			v1 := vec3.New(bounded(a), bounded(b), bounded(c))
			v2 := vec3.New(bounded(d), bounded(e), bounded(g))
			return vec3.Distance(v1, v2) == vec3.Distance(v2, v1) &&
				vec3.Distance2(v1, v2) == vec3.Norm2(vec3.Sub(v1, v2))
		}
		require.NoError(t, quick.Check(f, cfg))
	})

	t.Run("linear combination with unit coefficients is addition", func(t *testing.T) {
		f := func(a, b, c, d, e, g float64) bool {
			v1 := vec3.New(bounded(a), bounded(b), bounded(c))
			v2 := vec3.New(bounded(d), bounded(e), bounded(g))
			return vec3.LinComb(1, v1, 1, v2) == vec3.Add(v1, v2) &&
				vec3.ScaleAdd(v1, 1, v2) == vec3.Add(v1, v2)
		}
		require.NoError(t, quick.Check(f, cfg))
	})

	t.Run("normalize yields unit length", func(t *testing.T) {
		f := func(a, b, c float64) bool {
			v := vec3.New(bounded(a), bounded(b), bounded(c))
			if vec3.Norm2(v) == 0 {
				return true
			}
			if _, err := vec3.Normalize(&v); err != nil {
				return false
			}
			return math.Abs(vec3.Norm(v)-1) < 1e-12
		}
		require.NoError(t, quick.Check(f, cfg))
	})
}
