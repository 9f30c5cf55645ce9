package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/transportation/internal/config"
	"github.com/katalvlaran/transportation/transport"
	"github.com/stretchr/testify/require"
)

const textbookYAML = `
supply: [20, 30, 25]
demand: [10, 25, 15, 25]
cost:
  - [4, 6, 8, 7]
  - [5, 7, 6, 5]
  - [6, 8, 6, 4]
`

func write(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_YAMLDefaults(t *testing.T) {
	f, err := config.Load(write(t, "problem.yaml", textbookYAML))
	require.NoError(t, err)

	require.Equal(t, []float64{20, 30, 25}, f.Supply)
	require.Equal(t, []float64{10, 25, 15, 25}, f.Demand)
	require.Equal(t, []float64{6, 8, 6, 4}, f.Cost[2])
	require.Equal(t, "northwest", f.Method)
	require.Zero(t, f.Epsilon)
	require.False(t, f.RequireBalanced)
	require.Equal(t, "info", f.Log.Level)
	require.Equal(t, "text", f.Log.Format)

	p, err := f.Problem()
	require.NoError(t, err)
	res, err := transport.Solve(p)
	require.NoError(t, err)
	require.Equal(t, 395.0, res.Cost)
}

func TestLoad_JSONAndTOML(t *testing.T) {
	j, err := config.Load(write(t, "problem.json",
		`{"supply":[7],"demand":[7],"cost":[[3]],"method":"lc","require_balanced":true,"log":{"level":"debug"}}`))
	require.NoError(t, err)
	require.Equal(t, "lc", j.Method)
	require.True(t, j.RequireBalanced)
	require.Equal(t, "debug", j.Log.Level)

	opts, err := j.Options()
	require.NoError(t, err)
	require.Len(t, opts, 3)

	tm, err := config.Load(write(t, "problem.toml", "supply = [7]\ndemand = [7]\ncost = [[3]]\nepsilon = 0.5\n"))
	require.NoError(t, err)
	require.Equal(t, 0.5, tm.Epsilon)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("TRANSPORT_METHOD", "leastcost")
	t.Setenv("TRANSPORT_LOG_LEVEL", "debug")

	f, err := config.Load(write(t, "problem.yaml", textbookYAML))
	require.NoError(t, err)
	require.Equal(t, "leastcost", f.Method)
	require.Equal(t, "debug", f.Log.Level)

	opts, err := f.Options()
	require.NoError(t, err)
	p, err := f.Problem()
	require.NoError(t, err)
	res, err := transport.Solve(p, opts...)
	require.NoError(t, err)
	require.Equal(t, transport.MethodLeastCost, res.Method)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	var verrs validator.ValidationErrors

	_, err = config.Load(write(t, "nosupply.yaml", "demand: [1]\ncost: [[1]]\n"))
	require.ErrorAs(t, err, &verrs)

	_, err = config.Load(write(t, "negative.yaml", "supply: [-1]\ndemand: [1]\ncost: [[1]]\n"))
	require.ErrorAs(t, err, &verrs)

	_, err = config.Load(write(t, "level.yaml", textbookYAML+"log:\n  level: loud\n"))
	require.ErrorAs(t, err, &verrs)

	_, err = config.Load(write(t, "method.yaml", textbookYAML+"method: vogel\n"))
	require.ErrorIs(t, err, transport.ErrUnknownMethod)
}

func TestFile_ProblemShape(t *testing.T) {
	f, err := config.Load(write(t, "ragged.yaml", "supply: [1, 1]\ndemand: [1, 1]\ncost: [[1, 2], [3]]\n"))
	require.NoError(t, err)

	_, err = f.Problem()
	require.Error(t, err)
}
