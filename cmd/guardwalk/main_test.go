package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/guardwalk/grid"
)

const exampleMap = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

// run executes the CLI with args and stdin, returning stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestSolve_File(t *testing.T) {
	path := writeTemp(t, "input.txt", exampleMap)
	out, _, err := run(t, "", "solve", path)
	require.NoError(t, err)
	assert.Equal(t, "ans1 = 41\nans2 = 6\n", out)
}

func TestSolve_StdinParallel(t *testing.T) {
	out, _, err := run(t, exampleMap, "solve", "--workers", "4", "-")
	require.NoError(t, err)
	assert.Equal(t, "ans1 = 41\nans2 = 6\n", out)
}

func TestSolve_ConfigAndMetrics(t *testing.T) {
	metricsPath := filepath.Join(t.TempDir(), "run.prom")
	cfgPath := writeTemp(t, "guardwalk.yaml",
		"workers: 2\nlog_level: debug\nlog_format: json\nmetrics_file: "+metricsPath+"\n")

	out, logs, err := run(t, exampleMap, "solve", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "ans1 = 41\nans2 = 6\n", out)
	assert.Contains(t, logs, `"msg":"loop detection complete"`)
	assert.Contains(t, logs, `"workers":2`)

	body, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(body), `guardwalk_trials_total{verdict="loop"} 6`)
}

func TestSolve_FlagOverridesConfig(t *testing.T) {
	cfgPath := writeTemp(t, "guardwalk.yaml", "workers: 3\nlog_format: json\n")
	_, logs, err := run(t, exampleMap, "solve", "--config", cfgPath, "--workers", "1")
	require.NoError(t, err)
	assert.Contains(t, logs, `"workers":1`)
}

func TestSolve_Errors(t *testing.T) {
	_, _, err := run(t, "....\n....\n", "solve")
	assert.ErrorIs(t, err, grid.ErrNoStart)

	_, _, err = run(t, "..^\n..\n", "solve")
	assert.ErrorIs(t, err, grid.ErrNonRectangular)

	_, _, err = run(t, "", "solve")
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)

	_, _, err = run(t, exampleMap, "solve", "--log-level", "loud")
	assert.Error(t, err)

	_, _, err = run(t, "", "solve", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRender_Plain(t *testing.T) {
	out, _, err := run(t, ".#.\n...\n.^.\n", "render")
	require.NoError(t, err)
	assert.Equal(t, ".#.\n.XX\n.^.\n", out)

	out, _, err = run(t, exampleMap, "render", "--color=false")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, 6, strings.Count(out, "O"))
	assert.Equal(t, ".#XO^XXXX.", lines[6])
}
