package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/heatsweep/cmd/heatsweep/commands"
	"go.trai.ch/heatsweep/internal/adapters/telemetry"
	"go.trai.ch/heatsweep/internal/app"
	"go.trai.ch/heatsweep/internal/core/domain"
	"go.trai.ch/heatsweep/internal/core/ports"
	"go.trai.ch/heatsweep/internal/core/ports/mocks"
	"go.trai.ch/heatsweep/internal/vec3"
	"go.uber.org/mock/gomock"
)

type cliTestMocks struct {
	logger    *mocks.MockLogger
	logFile   *mocks.MockLogFile
	geometry  *mocks.MockGeometryLoader
	cache     *mocks.MockCacheStore
	evaluator *mocks.MockEvaluator
}

func setupCLI(t *testing.T) (*commands.CLI, cliTestMocks, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := cliTestMocks{
		logger:    mocks.NewMockLogger(ctrl),
		logFile:   mocks.NewMockLogFile(ctrl),
		geometry:  mocks.NewMockGeometryLoader(ctrl),
		cache:     mocks.NewMockCacheStore(ctrl),
		evaluator: mocks.NewMockEvaluator(ctrl),
	}
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	a := app.New(m.logger, m.logFile, mocks.NewMockFrequencyLoader(ctrl), m.geometry, m.cache, telemetry.NewNoop()).
		WithEvaluatorFactory(func(*domain.Geometry, domain.TransformationSet, ports.KernelCache, int) ports.Evaluator {
			return m.evaluator
		})

	out := &bytes.Buffer{}
	cli := commands.New(a)
	cli.SetOutput(out, out)
	return cli, m, out
}

func TestRun_Success(t *testing.T) {
	cli, m, _ := setupCLI(t)
	dir := t.TempDir()
	byOmega := filepath.Join(dir, "One.byOmega")

	geo := &domain.Geometry{Objects: []domain.Object{{Label: "A", Center: vec3.Zero(), Radius: 1}}}
	m.logFile.EXPECT().OpenLogFile(filepath.Join(dir, "run.log")).Return(nil)
	m.logFile.EXPECT().CloseLogFile().Return(nil)
	m.geometry.EXPECT().LoadGeometry("One.yaml").Return(geo, nil)
	m.geometry.EXPECT().LoadTransformations("", geo).Return(domain.TransformationSet{{Tag: "DEFAULT"}}, nil)
	m.evaluator.EXPECT().Evaluate(gomock.Any(), domain.Frequency(complex(1, 0.5)), 0).Return(3.0, nil)
	m.cache.EXPECT().Stats().Return(domain.CacheStats{})

	cli.SetArgs([]string{
		"run",
		"--Geometry", "One.yaml",
		"--omega", "1+0.5i",
		"--byomegafile", byOmega,
		"--LogFile", filepath.Join(dir, "run.log"),
	})
	require.NoError(t, cli.Execute(context.Background()))

	data, err := os.ReadFile(byOmega)
	require.NoError(t, err)
	assert.Contains(t, string(data), "(1+0.5i) DEFAULT 3.00000000e+00\n")
}

func TestRun_MissingGeometry(t *testing.T) {
	cli, _, _ := setupCLI(t)
	cli.SetArgs([]string{"run", "--omega", "1"})
	require.ErrorIs(t, cli.Execute(context.Background()), domain.ErrMissingRequiredOption)
}

func TestRun_InvalidFrequency(t *testing.T) {
	cli, _, _ := setupCLI(t)
	cli.SetArgs([]string{"run", "--geometry", "One.yaml", "--omega", "fast"})
	require.ErrorIs(t, cli.Execute(context.Background()), domain.ErrConfigParseFailed)
}

func TestRun_RejectsArguments(t *testing.T) {
	cli, _, _ := setupCLI(t)
	cli.SetArgs([]string{"run", "One.yaml"})
	require.Error(t, cli.Execute(context.Background()))
}

func TestPlot_RequiresInput(t *testing.T) {
	cli, _, _ := setupCLI(t)
	cli.SetArgs([]string{"plot"})
	require.Error(t, cli.Execute(context.Background()))
}

func TestPlot(t *testing.T) {
	cli, _, _ := setupCLI(t)
	dir := t.TempDir()
	input := filepath.Join(dir, "Two.byOmega")
	require.NoError(t, os.WriteFile(input, []byte("0.1 DEFAULT 1e-3\n0.2 DEFAULT 2e-3\n"), domain.FilePerm))
	image := filepath.Join(dir, "Two.svg")

	cli.SetArgs([]string{"plot", input, "-o", image, "--title", "Two spheres"})
	require.NoError(t, cli.Execute(context.Background()))

	data, err := os.ReadFile(image)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestVersion(t *testing.T) {
	cli, _, out := setupCLI(t)
	cli.SetArgs([]string{"version"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "heatsweep version dev (commit none, built unknown)\n", out.String())
}
