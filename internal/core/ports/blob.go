package ports

import "context"

// BlobStore reads and writes whole objects addressed by a location string.
//
//go:generate go run go.uber.org/mock/mockgen -source=blob.go -destination=mocks/mock_blob.go -package=mocks
type BlobStore interface {
	// Read returns the object at location.
	// A missing object wraps domain.ErrLocationNotFound.
	Read(ctx context.Context, location string) ([]byte, error)

	// Write replaces the object at location.
	Write(ctx context.Context, location string, data []byte) error
}
