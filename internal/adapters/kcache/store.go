// Package kcache implements the kernel computation cache.
package kcache

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"go.trai.ch/heatsweep/internal/core/domain"
	"go.trai.ch/heatsweep/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CacheStore = (*Store)(nil)

// Store implements ports.CacheStore in memory. Cache files are read and
// written through a ports.BlobStore.
type Store struct {
	blobs ports.BlobStore

	mu      sync.RWMutex
	entries map[domain.CacheKey]complex128

	hits      atomic.Int64
	misses    atomic.Int64
	inserts   atomic.Int64
	preloaded atomic.Int64
}

// NewStore creates an empty Store.
func NewStore(blobs ports.BlobStore) *Store {
	return &Store{
		blobs:   blobs,
		entries: make(map[domain.CacheKey]complex128),
	}
}

// Lookup returns the cached value for key.
func (s *Store) Lookup(key domain.CacheKey) (complex128, bool) {
	s.mu.RLock()
	value, ok := s.entries[key]
	s.mu.RUnlock()

	if ok {
		s.hits.Add(1)
	} else {
		s.misses.Add(1)
	}
	return value, ok
}

// Insert stores value under key unless the key is present.
// Non-finite values are not cached.
func (s *Store) Insert(key domain.CacheKey, value complex128) {
	if !finite(value) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[key]; ok {
		return
	}
	s.entries[key] = value
	s.inserts.Add(1)
}

// Preload merges the cache file at location into the store. Keys already
// present win, so preloading the same file twice adds nothing the second time.
func (s *Store) Preload(ctx context.Context, location string) (int, error) {
	data, err := s.blobs.Read(ctx, location)
	if err != nil {
		return 0, zerr.With(fmt.Errorf("%w: %w", domain.ErrCachePreloadFailure, err), "location", location)
	}

	var file fileDTO
	if err := json.Unmarshal(data, &file); err != nil {
		return 0, zerr.With(fmt.Errorf("%w: %w", domain.ErrCachePreloadFailure, err), "location", location)
	}
	if file.Format != FormatName || file.Version != FormatVersion {
		err := zerr.Wrap(domain.ErrCachePreloadFailure, "unsupported cache file format")
		err = zerr.With(err, "format", file.Format)
		err = zerr.With(err, "version", file.Version)
		return 0, zerr.With(err, "location", location)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	added := 0
	for _, e := range file.Entries {
		key := e.key()
		if _, ok := s.entries[key]; ok {
			continue
		}
		value := e.value()
		if !finite(value) {
			continue
		}
		s.entries[key] = value
		added++
	}
	s.preloaded.Add(int64(added))
	return added, nil
}

// WriteBack serializes every entry to location.
func (s *Store) WriteBack(ctx context.Context, location string) error {
	s.mu.RLock()
	entries := make([]entryDTO, 0, len(s.entries))
	for key, value := range s.entries {
		entries = append(entries, newEntryDTO(key, value))
	}
	s.mu.RUnlock()

	sortEntries(entries)
	data, err := json.MarshalIndent(fileDTO{
		Format:  FormatName,
		Version: FormatVersion,
		Entries: entries,
	}, "", "  ")
	if err != nil {
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrCacheWriteFailed, err), "location", location)
	}

	if err := s.blobs.Write(ctx, location, data); err != nil {
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrCacheWriteFailed, err), "location", location)
	}
	return nil
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Stats returns the activity counters. Counters are read atomically.
func (s *Store) Stats() domain.CacheStats {
	hits := s.hits.Load()
	misses := s.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return domain.CacheStats{
		Hits:      hits,
		Misses:    misses,
		Inserts:   s.inserts.Load(),
		Preloaded: s.preloaded.Load(),
		HitRate:   hitRate,
	}
}

func finite(v complex128) bool {
	re, im := real(v), imag(v)
	return !math.IsNaN(re) && !math.IsNaN(im) && !math.IsInf(re, 0) && !math.IsInf(im, 0)
}
