package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// S3Scheme prefixes locations stored in an S3 bucket.
const S3Scheme = "s3://"

// Location is a parsed cache location: a local path or an S3 object.
type Location struct {
	// Path is set for local files.
	Path string
	// Bucket and Key are set for S3 objects.
	Bucket string
	Key    string
}

// IsS3 reports whether the location addresses an S3 object.
func (l Location) IsS3() bool {
	return l.Bucket != ""
}

func (l Location) String() string {
	if l.IsS3() {
		return S3Scheme + l.Bucket + "/" + l.Key
	}
	return l.Path
}

// ParseLocation parses a local path or an s3://bucket/key URL.
func ParseLocation(raw string) (Location, error) {
	if raw == "" {
		return Location{}, zerr.Wrap(ErrInvalidLocation, "location must not be empty")
	}
	if !strings.HasPrefix(raw, S3Scheme) {
		return Location{Path: raw}, nil
	}

	bucket, key, ok := strings.Cut(strings.TrimPrefix(raw, S3Scheme), "/")
	if !ok || bucket == "" || key == "" || strings.HasSuffix(key, "/") {
		return Location{}, zerr.With(
			zerr.Wrap(ErrInvalidLocation, "expected s3://bucket/key"),
			"location", raw,
		)
	}
	return Location{Bucket: bucket, Key: key}, nil
}
