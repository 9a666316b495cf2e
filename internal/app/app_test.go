package app_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/heatsweep/internal/adapters/blob"
	"go.trai.ch/heatsweep/internal/adapters/freqfile"
	"go.trai.ch/heatsweep/internal/adapters/geometry"
	"go.trai.ch/heatsweep/internal/adapters/kcache"
	"go.trai.ch/heatsweep/internal/adapters/plot"
	"go.trai.ch/heatsweep/internal/adapters/telemetry"
	"go.trai.ch/heatsweep/internal/app"
	"go.trai.ch/heatsweep/internal/core/domain"
	"go.trai.ch/heatsweep/internal/core/ports"
	"go.trai.ch/heatsweep/internal/core/ports/mocks"
	"go.trai.ch/heatsweep/internal/vec3"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const twoSpheres = `objects:
  - label: A
    center: [0, 0, 0]
    radius: 0.1
    material:
      epsilon: "4+1i"
  - label: B
    center: [0, 0, 1]
    radius: 0.1
    material:
      drude:
        epsinf: 1
        omegap: 10
        gamma: 0.1
`

type appTestMocks struct {
	logger    *mocks.MockLogger
	logFile   *mocks.MockLogFile
	loader    *mocks.MockFrequencyLoader
	geometry  *mocks.MockGeometryLoader
	cache     *mocks.MockCacheStore
	evaluator *mocks.MockEvaluator
	ctrl      *gomock.Controller
}

// setupAppMocks returns mocks with permissive logging.
func setupAppMocks(t *testing.T) appTestMocks {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := appTestMocks{
		logger:    mocks.NewMockLogger(ctrl),
		logFile:   mocks.NewMockLogFile(ctrl),
		loader:    mocks.NewMockFrequencyLoader(ctrl),
		geometry:  mocks.NewMockGeometryLoader(ctrl),
		cache:     mocks.NewMockCacheStore(ctrl),
		evaluator: mocks.NewMockEvaluator(ctrl),
		ctrl:      ctrl,
	}
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return m
}

func (m appTestMocks) app() *app.App {
	a := app.New(m.logger, m.logFile, m.loader, m.geometry, m.cache, telemetry.NewNoop())
	return a.WithEvaluatorFactory(func(*domain.Geometry, domain.TransformationSet, ports.KernelCache, int) ports.Evaluator {
		return m.evaluator
	})
}

// expectLoad makes the run reach the sweep with a single object and the default transformation.
func (m appTestMocks) expectLoad() {
	m.logFile.EXPECT().OpenLogFile(gomock.Any()).Return(nil)
	m.logFile.EXPECT().CloseLogFile().Return(nil)
	geo := &domain.Geometry{Objects: []domain.Object{{Label: "A", Center: vec3.Zero(), Radius: 1}}}
	m.geometry.EXPECT().LoadGeometry("One.yaml").Return(geo, nil)
	m.geometry.EXPECT().LoadTransformations("", geo).Return(domain.TransformationSet{{Tag: domain.DefaultTransformTag}}, nil)
	m.cache.EXPECT().Stats().Return(domain.CacheStats{}).AnyTimes()
	m.cache.EXPECT().Len().Return(0).AnyTimes()
}

func TestRun_InvalidOptionsDoNoWork(t *testing.T) {
	tests := []struct {
		name string
		opts domain.Options
		want error
	}{
		{"missing geometry", domain.Options{Omegas: []domain.Frequency{1}}, domain.ErrMissingRequiredOption},
		{"cache and writecache", domain.Options{Geometry: "g", Cache: "a", WriteCache: "b"}, domain.ErrConflictingOptions},
		{
			"malformed writecache",
			domain.Options{Geometry: "g", Omegas: []domain.Frequency{0.1, 0.2, 0.3}, WriteCache: "s3://bucket"},
			domain.ErrInvalidLocation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := setupAppMocks(t)
			called := false
			a := app.New(m.logger, m.logFile, m.loader, m.geometry, m.cache, telemetry.NewNoop()).
				WithEvaluatorFactory(func(*domain.Geometry, domain.TransformationSet, ports.KernelCache, int) ports.Evaluator {
					called = true
					return m.evaluator
				})

			err := a.Run(context.Background(), tt.opts)
			require.ErrorIs(t, err, tt.want)
			assert.False(t, called)
		})
	}
}

func TestRun_RangeModeIsUnsupported(t *testing.T) {
	m := setupAppMocks(t)
	m.logFile.EXPECT().OpenLogFile("heatsweep.log").Return(nil)
	m.logFile.EXPECT().CloseLogFile().Return(nil)

	err := m.app().Run(context.Background(), domain.Options{
		Geometry:    "One.yaml",
		OmegaMin:    1,
		OmegaMinSet: true,
	})
	require.ErrorIs(t, err, domain.ErrUnsupportedMode)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "One.out", zErr.Metadata()["output"])
	assert.Equal(t, "(1,infinity)", zErr.Metadata()["range"])
}

func TestRun_ConflictingFrequencyMode(t *testing.T) {
	m := setupAppMocks(t)
	m.logFile.EXPECT().OpenLogFile(gomock.Any()).Return(nil)
	m.logFile.EXPECT().CloseLogFile().Return(nil)

	err := m.app().Run(context.Background(), domain.Options{
		Geometry:    "One.yaml",
		Omegas:      []domain.Frequency{1},
		OmegaMaxSet: true,
		OmegaMax:    2,
	})
	require.ErrorIs(t, err, domain.ErrConflictingFrequencyMode)
}

func TestRun_PreloadOrderAndWriteBack(t *testing.T) {
	m := setupAppMocks(t)
	m.expectLoad()
	dir := t.TempDir()

	gomock.InOrder(
		m.cache.EXPECT().Preload(gomock.Any(), "first.cache").Return(3, nil),
		m.cache.EXPECT().Preload(gomock.Any(), "second.cache").Return(0, domain.ErrCachePreloadFailure),
		m.cache.EXPECT().Preload(gomock.Any(), "main.cache").Return(0, domain.ErrLocationNotFound),
		m.evaluator.EXPECT().Evaluate(gomock.Any(), domain.Frequency(0.5), 0).Return(2.0, nil),
		m.cache.EXPECT().WriteBack(gomock.Any(), "main.cache").Return(nil),
	)

	err := m.app().Run(context.Background(), domain.Options{
		Geometry:    "One.yaml",
		Omegas:      []domain.Frequency{0.5},
		ReadCaches:  []string{"first.cache", "second.cache"},
		Cache:       "main.cache",
		ByOmegaFile: filepath.Join(dir, "One.byOmega"),
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "One.byOmega"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "0.5 DEFAULT 2.00000000e+00\n")
}

func TestRun_WriteBackAfterEvaluationFailure(t *testing.T) {
	m := setupAppMocks(t)
	m.expectLoad()

	cause := errors.New("singular matrix")
	m.evaluator.EXPECT().Evaluate(gomock.Any(), domain.Frequency(1), 0).Return(1.0, nil)
	m.evaluator.EXPECT().Evaluate(gomock.Any(), domain.Frequency(2), 0).Return(0.0, cause)
	m.cache.EXPECT().WriteBack(gomock.Any(), "out.cache").Return(nil)

	err := m.app().Run(context.Background(), domain.Options{
		Geometry:    "One.yaml",
		Omegas:      []domain.Frequency{1, 2, 3},
		WriteCache:  "out.cache",
		ByOmegaFile: filepath.Join(t.TempDir(), "One.byOmega"),
	})
	require.ErrorIs(t, err, domain.ErrEvaluationFailure)
	assert.ErrorIs(t, err, cause)
}

func TestRun_WriteBackFailure(t *testing.T) {
	m := setupAppMocks(t)
	m.expectLoad()

	m.evaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any(), 0).Return(1.0, nil)
	m.cache.EXPECT().Preload(gomock.Any(), "k.cache").Return(0, nil)
	m.cache.EXPECT().WriteBack(gomock.Any(), "k.cache").Return(domain.ErrCacheWriteFailed)

	err := m.app().Run(context.Background(), domain.Options{
		Geometry:    "One.yaml",
		Omegas:      []domain.Frequency{1},
		Cache:       "k.cache",
		ByOmegaFile: filepath.Join(t.TempDir(), "One.byOmega"),
	})
	require.ErrorIs(t, err, domain.ErrCacheWriteFailed)
}

func TestRun_KeepGoing(t *testing.T) {
	m := setupAppMocks(t)
	m.expectLoad()
	out := filepath.Join(t.TempDir(), "One.byOmega")

	m.evaluator.EXPECT().Evaluate(gomock.Any(), domain.Frequency(1), 0).Return(0.0, domain.ErrEvaluationFailure)
	m.evaluator.EXPECT().Evaluate(gomock.Any(), domain.Frequency(2), 0).Return(4.0, nil)

	err := m.app().Run(context.Background(), domain.Options{
		Geometry:    "One.yaml",
		Omegas:      []domain.Frequency{1, 2},
		ByOmegaFile: out,
		KeepGoing:   true,
	})
	require.ErrorIs(t, err, domain.ErrSweepIncomplete)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "1 DEFAULT NaN\n")
	assert.Contains(t, string(data), "2 DEFAULT 4.00000000e+00\n")
}

// newRealApp wires the file-backed adapters with a fresh kernel cache.
func newRealApp(t *testing.T) (*app.App, *kcache.Store) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	logFile := mocks.NewMockLogFile(ctrl)
	logFile.EXPECT().OpenLogFile(gomock.Any()).Return(nil)
	logFile.EXPECT().CloseLogFile().Return(nil)

	store := kcache.NewStore(blob.NewStore(blob.DefaultClientFactory))
	a := app.New(log, logFile, freqfile.New(), geometry.NewLoader(), store, telemetry.NewNoop())
	return a, store
}

func TestRun_CacheReuseEndToEnd(t *testing.T) {
	dir := t.TempDir()
	geoPath := filepath.Join(dir, "Two.yaml")
	require.NoError(t, os.WriteFile(geoPath, []byte(twoSpheres), domain.FilePerm))
	omegaPath := filepath.Join(dir, "omega.list")
	require.NoError(t, os.WriteFile(omegaPath, []byte("# omega\n0.1\n0.2\n0.3\n"), domain.FilePerm))
	cachePath := filepath.Join(dir, "Two.cache")

	run := func(name string) (*kcache.Store, []byte) {
		a, store := newRealApp(t)
		out := filepath.Join(dir, name)
		require.NoError(t, a.Run(context.Background(), domain.Options{
			Geometry:    geoPath,
			OmegaFile:   omegaPath,
			Cache:       cachePath,
			ByOmegaFile: out,
			Threads:     2,
		}))
		data, err := os.ReadFile(out)
		require.NoError(t, err)
		return store, data
	}

	first, firstOut := run("first.byOmega")
	assert.Equal(t, int64(9), first.Stats().Misses)
	assert.Equal(t, 9, first.Len())

	second, secondOut := run("second.byOmega")
	stats := second.Stats()
	assert.Zero(t, stats.Misses)
	assert.Equal(t, int64(9), stats.Preloaded)
	assert.InDelta(t, 1.0, stats.HitRate, 0)
	assert.Equal(t, string(firstOut), string(secondOut))

	lines := strings.Split(strings.TrimSpace(string(secondOut)), "\n")
	assert.Len(t, lines, 6+3)
}

func TestPlot(t *testing.T) {
	m := setupAppMocks(t)
	dir := t.TempDir()
	input := filepath.Join(dir, "Two.byOmega")
	content := "# heatsweep frequency-resolved output\n" +
		"0.1 DEFAULT 1.0e-03\n0.2 DEFAULT 2.0e-03\n0.3 DEFAULT 1.5e-03\n"
	require.NoError(t, os.WriteFile(input, []byte(content), domain.FilePerm))

	out := filepath.Join(dir, "spectrum.png")
	require.NoError(t, m.app().Plot(input, out, plot.Options{}))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestPlot_MissingInput(t *testing.T) {
	m := setupAppMocks(t)
	err := m.app().Plot(filepath.Join(t.TempDir(), "none.byOmega"), "x.png", plot.Options{})
	require.ErrorIs(t, err, domain.ErrInvalidInputFile)
}
