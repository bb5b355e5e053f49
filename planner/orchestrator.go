package planner

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/oceanrrt/hybridplan/geometry"
	"github.com/oceanrrt/hybridplan/internal/xlog"
	"github.com/oceanrrt/hybridplan/internal/xrand"
)

// Stats reports the bookkeeping a caller needs to judge how a Plan call
// behaved: how long it ran, how it ended, and a correlation id for tying a
// result back to the log line Plan writes when it finishes.
type Stats struct {
	// RunID uniquely identifies this call, for correlating its result with
	// the log line Plan writes when it finishes.
	RunID string

	Iterations    int
	StartTreeSize int
	GoalTreeSize  int
	PathsFound    int
	BestCost      float64
	StoppedEarly  bool
}

// NodesExplored is the total number of nodes across both trees.
func (s Stats) NodesExplored() int {
	return s.StartTreeSize + s.GoalTreeSize
}

// Plan runs the bidirectional RRT*/PSO hybrid planner from start to goal
// within workspace, avoiding obstacles, per cfg. It returns the
// lowest-cost path discovered (nil with +Inf cost if none was found), that
// path's cost, and run statistics.
func Plan(start, goal Position, obstacles []Obstacle, ws Workspace, cfg Config) (Path, float64, Stats, error) {
	stats := Stats{RunID: uuid.NewString()}

	if !ws.valid() {
		return nil, 0, stats, fmt.Errorf("%w", ErrInvalidWorkspace)
	}
	if err := cfg.validate(); err != nil {
		return nil, 0, stats, err
	}
	if !ws.contains(start) || !ws.contains(goal) || isBlocked(start, obstacles) || isBlocked(goal, obstacles) {
		return nil, 0, stats, fmt.Errorf("%w", ErrInvalidEndpoint)
	}

	// A start that coincides with goal needs no tree search: the trivial
	// two-point path already satisfies every invariant at zero cost.
	if start == goal {
		stats.Iterations = 1
		stats.PathsFound = 1
		return Path{start, goal}, 0, stats, nil
	}

	rng := xrand.New(cfg.Seed)
	samp := newSampler(rng)
	paths := &pathSet{}

	startTree := newTree(start, startRoot)
	goalTree := newTree(goal, goalRoot)

	// The goal tree leads: iterations alternate goal, start, goal, ... so
	// that even-numbered iterations (counting from 1) expand the start tree.
	active, opposite := goalTree, startTree

	for k := 0; k < cfg.MaxIterations; k++ {
		if cfg.StopRequested != nil && cfg.StopRequested() {
			stats.StoppedEarly = true
			break
		}
		stats.Iterations = k + 1

		sample := samp.sample(ws, active, opposite, paths, start, goal, obstacles, k+1, cfg.MaxIterations)
		result := expand(active, sample, cfg.StepSize, cfg.Gamma, obstacles)

		if result.inserted {
			if path, ok := tryConnect(active, opposite, result.ref, cfg.ConnectionK, obstacles); ok {
				paths.append(path)
				xlog.Debugf("connected a path at iteration %d, cost %.3f", k+1, path.Cost())
			}
		}

		if (k+1)%cfg.OptimizationInterval == 0 && paths.len() > 0 {
			refineAll(rng, paths, obstacles, ws, cfg)
		}

		active, opposite = opposite, active
	}

	if paths.len() > 0 {
		refineAll(rng, paths, obstacles, ws, cfg)
	}

	best, bestCost := paths.best()

	stats.StartTreeSize = startTree.size()
	stats.GoalTreeSize = goalTree.size()
	stats.PathsFound = paths.len()
	stats.BestCost = bestCost

	xlog.Infof("run %s finished after %d iterations: %d path(s) found, best cost %.3f", stats.RunID, stats.Iterations, stats.PathsFound, stats.BestCost)

	return best, bestCost, stats, nil
}

func isBlocked(p Position, obstacles []Obstacle) bool {
	for _, obs := range obstacles {
		if geometry.PointInPolygon(p, obs) {
			return true
		}
	}
	return false
}
