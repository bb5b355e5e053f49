package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceanrrt/hybridplan/obstacles"
	"github.com/oceanrrt/hybridplan/planner"
)

var (
	scenarioWorkspace = planner.Workspace{XMin: 0, XMax: 400, YMin: 0, YMax: 350}
	scenarioStart     = planner.Position{X: 20, Y: 20}
	scenarioGoal      = planner.Position{X: 380, Y: 330}
)

func scenarioConfig() planner.Config {
	cfg := planner.DefaultConfig()
	cfg.Seed = 1
	return cfg
}

func TestScenarioSlalom(t *testing.T) {
	path, cost, stats, err := planner.Plan(scenarioStart, scenarioGoal, obstacles.Slalom(), scenarioWorkspace, scenarioConfig())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.PathsFound, 1)
	assert.LessOrEqual(t, cost, 700.0)
	assert.NotEmpty(t, path)
}

func TestScenarioCircleAndPentagon(t *testing.T) {
	_, cost, stats, err := planner.Plan(scenarioStart, scenarioGoal, obstacles.CircleAndPentagon(), scenarioWorkspace, scenarioConfig())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.PathsFound, 1)
	assert.LessOrEqual(t, cost, 600.0)
}

func TestScenarioParallelBars(t *testing.T) {
	_, cost, stats, err := planner.Plan(scenarioStart, scenarioGoal, obstacles.ParallelBars(), scenarioWorkspace, scenarioConfig())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.PathsFound, 1)
	assert.LessOrEqual(t, cost, 750.0)
}

func TestScenarioIShape(t *testing.T) {
	_, cost, stats, err := planner.Plan(scenarioStart, scenarioGoal, obstacles.IShape(), scenarioWorkspace, scenarioConfig())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.PathsFound, 1)
	assert.LessOrEqual(t, cost, 650.0)
}

func TestScenarioNoObstaclesApproachesStraightLineCost(t *testing.T) {
	direct := planner.Path{scenarioStart, scenarioGoal}.Cost()

	const trials = 10
	var withinTolerance int
	for i := 0; i < trials; i++ {
		cfg := scenarioConfig()
		cfg.Seed = int64(i)
		cfg.MaxIterations = 2000
		_, cost, _, err := planner.Plan(scenarioStart, scenarioGoal, nil, scenarioWorkspace, cfg)
		require.NoError(t, err)
		if cost <= direct*1.05 {
			withinTolerance++
		}
	}
	assert.GreaterOrEqual(t, withinTolerance, 9, "expected at least 9/10 seeds to land within 5%% of the direct-line cost %.2f", direct)
}

func TestScenarioSingleObstacleDetourFoundAcrossSeeds(t *testing.T) {
	// The wall blocks the straight start-goal line but leaves a corridor
	// above it (y in 300..350) to detour through.
	wall := planner.Obstacle{{X: 150, Y: 0}, {X: 200, Y: 0}, {X: 200, Y: 300}, {X: 150, Y: 300}}

	const trials = 10
	var succeeded int
	for i := 0; i < trials; i++ {
		cfg := scenarioConfig()
		cfg.Seed = int64(i)
		cfg.MaxIterations = 1000
		_, _, stats, err := planner.Plan(scenarioStart, scenarioGoal, []planner.Obstacle{wall}, scenarioWorkspace, cfg)
		require.NoError(t, err)
		if stats.PathsFound > 0 {
			succeeded++
		}
	}
	assert.GreaterOrEqual(t, succeeded, 9, "expected a valid path within 1000 iterations for at least 9/10 seeds")
}

func TestScenarioMaxIterationsOneCompletesWithoutError(t *testing.T) {
	cfg := scenarioConfig()
	cfg.MaxIterations = 1
	_, _, stats, err := planner.Plan(scenarioStart, scenarioGoal, obstacles.Slalom(), scenarioWorkspace, cfg)
	require.NoError(t, err)
	assert.Contains(t, []int{0, 1}, stats.PathsFound)
}
