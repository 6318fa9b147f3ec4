package metrics_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/guardwalk/grid"
	"github.com/katalvlaran/guardwalk/internal/metrics"
	"github.com/katalvlaran/guardwalk/loopdetect"
)

func TestRecorder_Detect(t *testing.T) {
	m, err := grid.ParseLines([]string{
		"....#.....",
		".........#",
		"..........",
		"..#.......",
		".......#..",
		"..........",
		".#..^.....",
		"........#.",
		"#.........",
		"......#...",
	})
	require.NoError(t, err)

	rec := metrics.New()
	res, err := loopdetect.Detect(m, loopdetect.WithObserver(rec), loopdetect.WithWorkers(2))
	require.NoError(t, err)
	rec.ObserveResult(res)

	count, err := testutil.GatherAndCount(rec.Gatherer(), "guardwalk_trials_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "one series per verdict")

	path := filepath.Join(t.TempDir(), "guardwalk.prom")
	require.NoError(t, rec.WriteTextfile(path))
	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), `guardwalk_trials_total{verdict="loop"} 6`)
	assert.Contains(t, string(body), `guardwalk_trials_total{verdict="escape"} 34`)
	assert.Contains(t, string(body), "guardwalk_visited_cells 41")
	assert.Contains(t, string(body), "guardwalk_trial_stops_count 40")
}
