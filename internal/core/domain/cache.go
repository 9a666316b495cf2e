package domain

import "fmt"

// KernelKind discriminates the kernel quantities stored for one frequency.
const (
	// KindPolarizability prefixes the per-object polarizability kind, e.g. "alpha:A".
	KindPolarizability = "alpha"
	// KindCoupling is the pair coupling kernel of one transformation.
	KindCoupling = "coupling"
)

// CacheKey identifies one kernel value. Transform is empty for kernels that
// do not depend on the placement of objects.
type CacheKey struct {
	Geometry  string
	Omega     Frequency
	Transform string
	Kind      string
}

func (k CacheKey) String() string {
	return fmt.Sprintf("%s/%s/%s/%s", k.Geometry, k.Omega, k.Transform, k.Kind)
}

// PolarizabilityKind returns the kernel kind of the polarizability of the labelled object.
func PolarizabilityKind(label string) string {
	return KindPolarizability + ":" + label
}

// CacheStats summarizes kernel cache activity of one run.
type CacheStats struct {
	Hits      int64
	Misses    int64
	Inserts   int64
	Preloaded int64
	HitRate   float64
}
