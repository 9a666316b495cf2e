package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/heatsweep/internal/core/domain"
)

func TestParseLocation(t *testing.T) {
	tests := []struct {
		raw     string
		want    domain.Location
		wantErr bool
	}{
		{raw: "Two.cache", want: domain.Location{Path: "Two.cache"}},
		{raw: "/tmp/x/Two.cache", want: domain.Location{Path: "/tmp/x/Two.cache"}},
		{raw: "s3://bucket/runs/Two.cache", want: domain.Location{Bucket: "bucket", Key: "runs/Two.cache"}},
		{raw: "", wantErr: true},
		{raw: "s3://bucket", wantErr: true},
		{raw: "s3://bucket/", wantErr: true},
		{raw: "s3:///key", wantErr: true},
		{raw: "s3://bucket/dir/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := domain.ParseLocation(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidLocation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.raw, got.String())
		})
	}
}
