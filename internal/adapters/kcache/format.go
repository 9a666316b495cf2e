package kcache

import (
	"cmp"
	"slices"

	"go.trai.ch/heatsweep/internal/core/domain"
)

const (
	// FormatName identifies kernel cache files.
	FormatName = "heatsweep-kernel-cache"
	// FormatVersion is the current cache file version.
	FormatVersion = 1
)

// fileDTO is the serialized form of a cache file.
type fileDTO struct {
	Format  string     `json:"format"`
	Version int        `json:"version"`
	Entries []entryDTO `json:"entries"`
}

// entryDTO is one cache entry. Complex numbers are stored as [re, im].
type entryDTO struct {
	Geometry  string     `json:"geometry"`
	Omega     [2]float64 `json:"omega"`
	Transform string     `json:"transform,omitempty"`
	Kind      string     `json:"kind"`
	Value     [2]float64 `json:"value"`
}

func (e entryDTO) key() domain.CacheKey {
	return domain.CacheKey{
		Geometry:  e.Geometry,
		Omega:     domain.Frequency(complex(e.Omega[0], e.Omega[1])),
		Transform: e.Transform,
		Kind:      e.Kind,
	}
}

func (e entryDTO) value() complex128 {
	return complex(e.Value[0], e.Value[1])
}

func newEntryDTO(key domain.CacheKey, value complex128) entryDTO {
	return entryDTO{
		Geometry:  key.Geometry,
		Omega:     [2]float64{key.Omega.Real(), key.Omega.Imag()},
		Transform: key.Transform,
		Kind:      key.Kind,
		Value:     [2]float64{real(value), imag(value)},
	}
}

// sortEntries orders entries so that equal caches serialize to equal bytes.
func sortEntries(entries []entryDTO) {
	slices.SortFunc(entries, func(a, b entryDTO) int {
		return cmp.Or(
			cmp.Compare(a.Geometry, b.Geometry),
			cmp.Compare(a.Omega[0], b.Omega[0]),
			cmp.Compare(a.Omega[1], b.Omega[1]),
			cmp.Compare(a.Transform, b.Transform),
			cmp.Compare(a.Kind, b.Kind),
		)
	})
}
