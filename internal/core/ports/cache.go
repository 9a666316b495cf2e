package ports

import (
	"context"

	"go.trai.ch/heatsweep/internal/core/domain"
)

// KernelCache is the view of the computation cache used by evaluators.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type KernelCache interface {
	// Lookup returns the cached value for key.
	Lookup(key domain.CacheKey) (complex128, bool)

	// Insert stores value under key. Existing entries are never overwritten.
	Insert(key domain.CacheKey, value complex128)
}

// CacheStore is the computation cache owned by one run.
type CacheStore interface {
	KernelCache

	// Preload merges the entries stored at location into the cache and returns
	// the number of entries added. Keys already present are kept.
	// Failures wrap domain.ErrCachePreloadFailure.
	Preload(ctx context.Context, location string) (int, error)

	// WriteBack serializes the whole cache to location.
	WriteBack(ctx context.Context, location string) error

	// Len returns the number of entries.
	Len() int

	// Stats returns activity counters.
	Stats() domain.CacheStats
}
