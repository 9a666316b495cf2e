package geometry

// File is the structure of a geometry file.
type File struct {
	Objects []ObjectDTO `yaml:"objects"`
}

// ObjectDTO is one object of a geometry file.
type ObjectDTO struct {
	Label    string      `yaml:"label"`
	Center   []float64   `yaml:"center"`
	Radius   float64     `yaml:"radius"`
	Material MaterialDTO `yaml:"material"`
}

// MaterialDTO holds either a constant permittivity or Drude parameters.
type MaterialDTO struct {
	// Epsilon is a complex literal such as "12+0.5i".
	Epsilon string    `yaml:"epsilon"`
	Drude   *DrudeDTO `yaml:"drude"`
}

// DrudeDTO holds the parameters of a Drude permittivity.
type DrudeDTO struct {
	EpsInf float64 `yaml:"epsinf"`
	OmegaP float64 `yaml:"omegap"`
	Gamma  float64 `yaml:"gamma"`
}

// TransformationDTO is one entry of a transformation file. For every object,
// the rotation is applied before the displacement.
type TransformationDTO struct {
	Tag      string                 `yaml:"tag"`
	Displace map[string][]float64   `yaml:"displace"`
	Rotate   map[string]RotationDTO `yaml:"rotate"`
}

// RotationDTO rotates an object center by Angle degrees around Axis through About.
type RotationDTO struct {
	Axis  []float64 `yaml:"axis"`
	Angle float64   `yaml:"angle"`
	About []float64 `yaml:"about"`
}
