package geometry_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/heatsweep/internal/adapters/geometry"
	"go.trai.ch/heatsweep/internal/core/domain"
	"go.trai.ch/heatsweep/internal/vec3"
)

const twoSpheres = `
objects:
  - label: A
    center: [0, 0, 0]
    radius: 0.1
    material:
      epsilon: "12+0.5i"
  - label: B
    center: [0, 0, 1]
    radius: 0.1
    material:
      drude:
        epsinf: 1
        omegap: 4.5
        gamma: 0.05
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func TestLoadGeometry(t *testing.T) {
	path := writeFile(t, "Two.yaml", twoSpheres)

	geo, err := geometry.NewLoader().LoadGeometry(path)
	require.NoError(t, err)

	assert.Equal(t, path, geo.Path)
	assert.Len(t, geo.Identity, 16)
	require.Len(t, geo.Objects, 2)
	assert.Equal(t, "A", geo.Objects[0].Label)
	assert.Equal(t, complex(12, 0.5), geo.Objects[0].Material.Epsilon)
	assert.Nil(t, geo.Objects[0].Material.Drude)
	assert.Equal(t, vec3.New(0, 0, 1), geo.Objects[1].Center)
	require.NotNil(t, geo.Objects[1].Material.Drude)
	assert.InDelta(t, 4.5, geo.Objects[1].Material.Drude.OmegaP, 0)
	assert.Equal(t, 1, geo.ObjectIndex("B"))
}

func TestLoadGeometry_IdentityFollowsContent(t *testing.T) {
	l := geometry.NewLoader()
	a, err := l.LoadGeometry(writeFile(t, "a.yaml", twoSpheres))
	require.NoError(t, err)
	b, err := l.LoadGeometry(writeFile(t, "b.yaml", twoSpheres))
	require.NoError(t, err)
	c, err := l.LoadGeometry(writeFile(t, "c.yaml", twoSpheres+"\n# changed\n"))
	require.NoError(t, err)

	assert.Equal(t, a.Identity, b.Identity)
	assert.NotEqual(t, a.Identity, c.Identity)
}

func TestLoadGeometry_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no objects", "objects: []"},
		{"three objects", `
objects:
  - {label: A, center: [0,0,0], radius: 1, material: {epsilon: "2"}}
  - {label: B, center: [0,0,3], radius: 1, material: {epsilon: "2"}}
  - {label: C, center: [0,0,6], radius: 1, material: {epsilon: "2"}}
`},
		{"duplicate label", `
objects:
  - {label: A, center: [0,0,0], radius: 1, material: {epsilon: "2"}}
  - {label: A, center: [0,0,3], radius: 1, material: {epsilon: "2"}}
`},
		{"missing label", `objects: [{center: [0,0,0], radius: 1, material: {epsilon: "2"}}]`},
		{"short center", `objects: [{label: A, center: [0,0], radius: 1, material: {epsilon: "2"}}]`},
		{"zero radius", `objects: [{label: A, center: [0,0,0], radius: 0, material: {epsilon: "2"}}]`},
		{"no material", `objects: [{label: A, center: [0,0,0], radius: 1}]`},
		{"both materials", `objects: [{label: A, center: [0,0,0], radius: 1, material: {epsilon: "2", drude: {omegap: 1}}}]`},
		{"bad epsilon", `objects: [{label: A, center: [0,0,0], radius: 1, material: {epsilon: "glass"}}]`},
		{"not yaml", "objects: [unterminated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := geometry.NewLoader().LoadGeometry(writeFile(t, "g.yaml", tt.content))
			require.ErrorIs(t, err, domain.ErrInvalidGeometry)
		})
	}
}

func TestLoadGeometry_Missing(t *testing.T) {
	_, err := geometry.NewLoader().LoadGeometry(filepath.Join(t.TempDir(), "none.yaml"))
	require.ErrorIs(t, err, domain.ErrInvalidGeometry)
}

func loadTwoSpheres(t *testing.T) *domain.Geometry {
	t.Helper()
	geo, err := geometry.NewLoader().LoadGeometry(writeFile(t, "Two.yaml", twoSpheres))
	require.NoError(t, err)
	return geo
}

func TestLoadTransformations_Default(t *testing.T) {
	geo := loadTwoSpheres(t)

	set, err := geometry.NewLoader().LoadTransformations("", geo)
	require.NoError(t, err)
	require.Len(t, set, 1)
	assert.Equal(t, domain.DefaultTransformTag, set[0].Tag)
	assert.Equal(t, []vec3.Vec{vec3.New(0, 0, 0), vec3.New(0, 0, 1)}, set[0].Centers)
	assert.NotEmpty(t, set[0].Identity)
}

func TestLoadTransformations(t *testing.T) {
	geo := loadTwoSpheres(t)
	path := writeFile(t, "Two.trans", `
- tag: d1
  displace:
    B: [0, 0, 1]
- tag: spun
  rotate:
    B: {axis: [0, 1, 0], angle: 90}
- tag: spun-and-moved
  rotate:
    B: {axis: [0, 1, 0], angle: 90, about: [0, 0, 0]}
  displace:
    B: [0, 0, 2]
`)

	set, err := geometry.NewLoader().LoadTransformations(path, geo)
	require.NoError(t, err)
	require.Len(t, set, 3)
	assert.Equal(t, []string{"d1", "spun", "spun-and-moved"}, set.Tags())

	want := [][]vec3.Vec{
		{vec3.New(0, 0, 0), vec3.New(0, 0, 2)},
		{vec3.New(0, 0, 0), vec3.New(1, 0, 0)},
		{vec3.New(0, 0, 0), vec3.New(1, 0, 2)},
	}
	for i, tr := range set {
		for j, c := range tr.Centers {
			assert.InDelta(t, want[i][j].X, c.X, 1e-12, "%s object %d X", tr.Tag, j)
			assert.InDelta(t, want[i][j].Y, c.Y, 1e-12, "%s object %d Y", tr.Tag, j)
			assert.InDelta(t, want[i][j].Z, c.Z, 1e-12, "%s object %d Z", tr.Tag, j)
		}
	}

	assert.NotEqual(t, set[0].Identity, set[1].Identity)
	assert.Equal(t, vec3.New(0, 0, 1), geo.Objects[1].Center, "base geometry must stay untouched")
}

func TestLoadTransformations_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", "[]"},
		{"missing tag", "- displace: {B: [0,0,1]}"},
		{"duplicate tag", "- tag: x\n- tag: x\n"},
		{"unknown object", "- tag: x\n  displace: {C: [0,0,1]}"},
		{"short displacement", "- tag: x\n  displace: {B: [0,1]}"},
		{"zero axis", "- tag: x\n  rotate: {B: {axis: [0,0,0], angle: 30}}"},
		{"unknown rotated object", "- tag: x\n  rotate: {Z: {axis: [0,0,1], angle: 30}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geo := loadTwoSpheres(t)
			_, err := geometry.NewLoader().LoadTransformations(writeFile(t, "t.trans", tt.content), geo)
			require.ErrorIs(t, err, domain.ErrInvalidTransformation)
		})
	}
}

func TestLoadTransformations_ZeroAxisKeepsCause(t *testing.T) {
	geo := loadTwoSpheres(t)
	path := writeFile(t, "t.trans", "- tag: x\n  rotate: {B: {axis: [0,0,0], angle: 30}}")

	_, err := geometry.NewLoader().LoadTransformations(path, geo)
	require.ErrorIs(t, err, domain.ErrDegenerateVector)
}
