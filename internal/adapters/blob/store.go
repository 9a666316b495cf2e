// Package blob reads and writes cache files on the local filesystem or in S3.
package blob

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"go.trai.ch/heatsweep/internal/core/domain"
	"go.trai.ch/zerr"
)

// S3API is the subset of the S3 client used by the store.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ClientFactory creates the S3 client on first use.
type ClientFactory func(ctx context.Context) (S3API, error)

// DefaultClientFactory builds a client from the default AWS configuration chain.
func DefaultClientFactory(ctx context.Context) (S3API, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load AWS configuration")
	}
	return s3.NewFromConfig(cfg), nil
}

// Store implements ports.BlobStore.
// Local runs never touch the AWS configuration.
type Store struct {
	newClient ClientFactory

	mu     sync.Mutex
	client S3API
}

// NewStore creates a Store that creates its S3 client with factory.
func NewStore(factory ClientFactory) *Store {
	return &Store{newClient: factory}
}

// Read returns the content at location.
func (s *Store) Read(ctx context.Context, location string) ([]byte, error) {
	loc, err := domain.ParseLocation(location)
	if err != nil {
		return nil, err
	}
	if loc.IsS3() {
		return s.readS3(ctx, loc)
	}
	return readLocal(loc.Path)
}

// Write replaces the content at location.
func (s *Store) Write(ctx context.Context, location string, data []byte) error {
	loc, err := domain.ParseLocation(location)
	if err != nil {
		return err
	}
	if loc.IsS3() {
		return s.writeS3(ctx, loc, data)
	}
	return writeLocal(loc.Path, data)
}

func readLocal(path string) ([]byte, error) {
	//nolint:gosec // Path is supplied by the user on purpose.
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrLocationNotFound, err), "location", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read file"), "location", path)
	}
	return data, nil
}

// writeLocal writes through a temporary file in the target directory so a
// crashed run never leaves a truncated file behind.
func writeLocal(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "location", path)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create temporary file"), "location", path)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // Gone after a successful rename.

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, "failed to write file"), "location", path)
	}
	if err := tmp.Chmod(domain.FilePerm); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, "failed to set file mode"), "location", path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close file"), "location", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to replace file"), "location", path)
	}
	return nil
}

func (s *Store) s3Client(ctx context.Context) (S3API, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return s.client, nil
	}
	client, err := s.newClient(ctx)
	if err != nil {
		return nil, err
	}
	s.client = client
	return client, nil
}

func (s *Store) readS3(ctx context.Context, loc domain.Location) ([]byte, error) {
	client, err := s.s3Client(ctx)
	if err != nil {
		return nil, zerr.With(err, "location", loc.String())
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(loc.Bucket),
		Key:    aws.String(loc.Key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrLocationNotFound, err), "location", loc.String())
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to get object"), "location", loc.String())
	}
	defer out.Body.Close() //nolint:errcheck // Read-only body.

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read object body"), "location", loc.String())
	}
	return data, nil
}

func (s *Store) writeS3(ctx context.Context, loc domain.Location, data []byte) error {
	client, err := s.s3Client(ctx)
	if err != nil {
		return zerr.With(err, "location", loc.String())
	}

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(loc.Bucket),
		Key:         aws.String(loc.Key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to put object"), "location", loc.String())
	}
	return nil
}

func isNotFound(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.ErrorCode() {
	case "NoSuchKey", "NoSuchBucket", "NotFound":
		return true
	default:
		return false
	}
}
