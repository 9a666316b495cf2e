package blob_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/heatsweep/internal/adapters/blob"
	"go.trai.ch/heatsweep/internal/core/domain"
)

// fakeS3 keeps objects in memory keyed by bucket/key.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
	puts    int
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: make(map[string][]byte)}
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &smithy.GenericAPIError{Code: "NoSuchKey", Message: "not found"}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = data
	f.puts++
	return &s3.PutObjectOutput{}, nil
}

func factoryFor(client blob.S3API, calls *int) blob.ClientFactory {
	return func(context.Context) (blob.S3API, error) {
		*calls++
		return client, nil
	}
}

func TestStore_Local(t *testing.T) {
	calls := 0
	store := blob.NewStore(factoryFor(newFakeS3(), &calls))
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "Two.cache")

	_, err := store.Read(ctx, path)
	require.ErrorIs(t, err, domain.ErrLocationNotFound)

	require.NoError(t, store.Write(ctx, path, []byte("first")))
	require.NoError(t, store.Write(ctx, path, []byte("second")))

	got, err := store.Read(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
	assert.Zero(t, calls, "local access must not create an S3 client")
}

func TestStore_S3(t *testing.T) {
	fake := newFakeS3()
	calls := 0
	store := blob.NewStore(factoryFor(fake, &calls))
	ctx := context.Background()

	_, err := store.Read(ctx, "s3://bucket/Two.cache")
	require.ErrorIs(t, err, domain.ErrLocationNotFound)

	require.NoError(t, store.Write(ctx, "s3://bucket/Two.cache", []byte("payload")))
	got, err := store.Read(ctx, "s3://bucket/Two.cache")
	require.NoError(t, err)
	assert.Equal(t, "payload", string(got))

	assert.Equal(t, 1, fake.puts)
	assert.Equal(t, 1, calls, "client is created once")
}

func TestStore_S3ClientError(t *testing.T) {
	boom := errors.New("no credentials")
	store := blob.NewStore(func(context.Context) (blob.S3API, error) { return nil, boom })

	_, err := store.Read(context.Background(), "s3://bucket/key")
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrLocationNotFound)
}
