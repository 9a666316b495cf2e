// Package geometry reads geometry and transformation files.
package geometry

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/heatsweep/internal/core/domain"
	"go.trai.ch/heatsweep/internal/vec3"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.GeometryLoader using YAML files.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadGeometry reads the geometry file at path. The geometry identity is the
// xxhash of the file content.
func (l *Loader) LoadGeometry(path string) (*domain.Geometry, error) {
	//nolint:gosec // Path is supplied by the user on purpose.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrInvalidGeometry, err), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrInvalidGeometry, err), "path", path)
	}

	geo, err := buildGeometry(file)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	geo.Path = path
	geo.Identity = fmt.Sprintf("%016x", xxhash.Sum64(data))
	return geo, nil
}

// LoadTransformations reads the transformation file at path. Without a file the
// set holds the identity transformation tagged domain.DefaultTransformTag.
func (l *Loader) LoadTransformations(path string, geo *domain.Geometry) (domain.TransformationSet, error) {
	if path == "" {
		return domain.TransformationSet{newTransformation(domain.DefaultTransformTag, baseCenters(geo))}, nil
	}

	//nolint:gosec // Path is supplied by the user on purpose.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrInvalidTransformation, err), "path", path)
	}

	var dtos []TransformationDTO
	if err := yaml.Unmarshal(data, &dtos); err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrInvalidTransformation, err), "path", path)
	}
	if len(dtos) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidTransformation, "no transformations listed"), "path", path)
	}

	set := make(domain.TransformationSet, 0, len(dtos))
	seen := make(map[string]bool, len(dtos))
	for i := range dtos {
		dto := &dtos[i]
		if dto.Tag == "" {
			return nil, zerr.With(
				zerr.Wrap(domain.ErrInvalidTransformation, "transformation tag must not be empty"),
				"index", i,
			)
		}
		if seen[dto.Tag] {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidTransformation, "duplicate transformation tag"), "tag", dto.Tag)
		}
		seen[dto.Tag] = true

		centers, err := applyTransformation(dto, geo)
		if err != nil {
			return nil, zerr.With(zerr.With(err, "tag", dto.Tag), "path", path)
		}
		set = append(set, newTransformation(dto.Tag, centers))
	}
	return set, nil
}

func buildGeometry(file File) (*domain.Geometry, error) {
	if n := len(file.Objects); n != 1 && n != 2 {
		return nil, zerr.With(
			zerr.Wrap(domain.ErrInvalidGeometry, "geometry must contain one or two objects"),
			"objects", n,
		)
	}

	geo := &domain.Geometry{Objects: make([]domain.Object, 0, len(file.Objects))}
	for i := range file.Objects {
		dto := &file.Objects[i]
		if dto.Label == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidGeometry, "object label must not be empty"), "index", i)
		}
		if geo.ObjectIndex(dto.Label) >= 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidGeometry, "duplicate object label"), "label", dto.Label)
		}
		center, ok := vec3.FromSlice(dto.Center)
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidGeometry, "center must have three components"), "label", dto.Label)
		}
		if !(dto.Radius > 0) || math.IsInf(dto.Radius, 0) {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidGeometry, "radius must be positive"), "label", dto.Label)
		}
		material, err := buildMaterial(dto.Material)
		if err != nil {
			return nil, zerr.With(err, "label", dto.Label)
		}

		geo.Objects = append(geo.Objects, domain.Object{
			Label:    dto.Label,
			Center:   center,
			Radius:   dto.Radius,
			Material: material,
		})
	}
	return geo, nil
}

func buildMaterial(dto MaterialDTO) (domain.Material, error) {
	hasEps := strings.TrimSpace(dto.Epsilon) != ""
	if hasEps == (dto.Drude != nil) {
		return domain.Material{}, zerr.Wrap(domain.ErrInvalidGeometry, "material needs exactly one of epsilon or drude")
	}

	if dto.Drude != nil {
		return domain.Material{Drude: &domain.DrudeModel{
			EpsInf: dto.Drude.EpsInf,
			OmegaP: dto.Drude.OmegaP,
			Gamma:  dto.Drude.Gamma,
		}}, nil
	}

	eps, err := strconv.ParseComplex(strings.TrimSpace(dto.Epsilon), 128)
	if err != nil {
		return domain.Material{}, zerr.With(fmt.Errorf("%w: %w", domain.ErrInvalidGeometry, err), "epsilon", dto.Epsilon)
	}
	return domain.Material{Epsilon: eps}, nil
}

func baseCenters(geo *domain.Geometry) []vec3.Vec {
	centers := make([]vec3.Vec, len(geo.Objects))
	for i, obj := range geo.Objects {
		centers[i] = obj.Center
	}
	return centers
}

func applyTransformation(dto *TransformationDTO, geo *domain.Geometry) ([]vec3.Vec, error) {
	centers := baseCenters(geo)

	for label, rot := range dto.Rotate {
		idx := geo.ObjectIndex(label)
		if idx < 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidTransformation, "unknown object"), "label", label)
		}
		axis, ok := vec3.FromSlice(rot.Axis)
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidTransformation, "rotation axis must have three components"), "label", label)
		}
		about := vec3.Zero()
		if rot.About != nil {
			if about, ok = vec3.FromSlice(rot.About); !ok {
				return nil, zerr.With(zerr.Wrap(domain.ErrInvalidTransformation, "rotation origin must have three components"), "label", label)
			}
		}
		rotated, err := vec3.Rotate(centers[idx], rot.Angle*math.Pi/180, axis, about)
		if err != nil {
			return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrInvalidTransformation, err), "label", label)
		}
		centers[idx] = rotated
	}

	for label, disp := range dto.Displace {
		idx := geo.ObjectIndex(label)
		if idx < 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidTransformation, "unknown object"), "label", label)
		}
		d, ok := vec3.FromSlice(disp)
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidTransformation, "displacement must have three components"), "label", label)
		}
		vec3.PlusEquals(&centers[idx], 1, d)
	}

	return centers, nil
}

// newTransformation derives the identity from the tag and the transformed centers.
func newTransformation(tag string, centers []vec3.Vec) domain.Transformation {
	hasher := xxhash.New()
	_, _ = hasher.WriteString(tag)
	_, _ = hasher.Write([]byte{0})

	var buf [8]byte
	for _, c := range centers {
		for _, x := range []float64{c.X, c.Y, c.Z} {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(x))
			_, _ = hasher.Write(buf[:])
		}
	}

	return domain.Transformation{
		Tag:      tag,
		Identity: fmt.Sprintf("%016x", hasher.Sum64()),
		Centers:  centers,
	}
}
