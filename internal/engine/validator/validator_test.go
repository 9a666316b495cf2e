package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/heatsweep/internal/core/domain"
	"go.trai.ch/heatsweep/internal/engine/validator"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    domain.Options
		wantErr error
	}{
		{
			name: "geometry only",
			opts: domain.Options{Geometry: "Two.yaml"},
		},
		{
			name: "cache with read caches",
			opts: domain.Options{Geometry: "Two.yaml", Cache: "a.cache", ReadCaches: []string{"b.cache"}},
		},
		{
			name: "plotflux without byomegafile",
			opts: domain.Options{Geometry: "Two.yaml", PlotFlux: true},
		},
		{
			name: "s3 writecache",
			opts: domain.Options{Geometry: "Two.yaml", WriteCache: "s3://bucket/runs/Two.cache"},
		},
		{
			name: "malformed read cache is left to preload",
			opts: domain.Options{Geometry: "Two.yaml", ReadCaches: []string{"s3://bucket"}},
		},
		{
			name:    "writecache without s3 key",
			opts:    domain.Options{Geometry: "Two.yaml", WriteCache: "s3://bucket"},
			wantErr: domain.ErrInvalidLocation,
		},
		{
			name:    "cache without s3 bucket",
			opts:    domain.Options{Geometry: "Two.yaml", Cache: "s3:///Two.cache"},
			wantErr: domain.ErrInvalidLocation,
		},
		{
			name:    "missing geometry",
			opts:    domain.Options{Omegas: []domain.Frequency{1}},
			wantErr: domain.ErrMissingRequiredOption,
		},
		{
			name:    "cache and writecache",
			opts:    domain.Options{Geometry: "Two.yaml", Cache: "a.cache", WriteCache: "b.cache"},
			wantErr: domain.ErrConflictingOptions,
		},
		{
			name:    "plotflux and byomegafile",
			opts:    domain.Options{Geometry: "Two.yaml", PlotFlux: true, ByOmegaFile: "x.byOmega"},
			wantErr: domain.ErrConflictingOptions,
		},
		{
			name:    "negative thread count",
			opts:    domain.Options{Geometry: "Two.yaml", Threads: -2},
			wantErr: domain.ErrConfigParseFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Validate(tt.opts)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_MissingGeometryReportedFirst(t *testing.T) {
	err := validator.Validate(domain.Options{Cache: "a", WriteCache: "b"})
	assert.ErrorIs(t, err, domain.ErrMissingRequiredOption)
	assert.NotErrorIs(t, err, domain.ErrConflictingOptions)
}
