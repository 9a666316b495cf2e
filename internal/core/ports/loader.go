package ports

import "go.trai.ch/heatsweep/internal/core/domain"

// FrequencyLoader reads frequency files.
//
//go:generate go run go.uber.org/mock/mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks
type FrequencyLoader interface {
	// LoadFrequencies returns the frequencies listed in the file, in file order.
	// Failures wrap domain.ErrInvalidInputFile.
	LoadFrequencies(path string) ([]domain.Frequency, error)
}

// GeometryLoader reads geometry and transformation files.
type GeometryLoader interface {
	// LoadGeometry reads the geometry file.
	LoadGeometry(path string) (*domain.Geometry, error)

	// LoadTransformations reads the transformation file for geo. An empty path
	// yields the single identity transformation.
	LoadTransformations(path string, geo *domain.Geometry) (domain.TransformationSet, error)
}
