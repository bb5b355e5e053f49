// Command hybridplan runs the bidirectional RRT*/PSO hybrid planner from the
// command line, either as a single plan or as a multi-seed batch.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oceanrrt/hybridplan/internal/xlog"
	"github.com/oceanrrt/hybridplan/obstacles"
	"github.com/oceanrrt/hybridplan/planner"
)

var mapNames = map[string]func() []planner.Obstacle{
	"slalom": obstacles.Slalom,
	"circle": obstacles.CircleAndPentagon,
	"bars":   obstacles.ParallelBars,
	"ishape": obstacles.IShape,
	"none":   func() []planner.Obstacle { return nil },
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		xlog.Fatalf("%v", err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hybridplan",
		Short: "Bidirectional RRT*/PSO hybrid path planner",
	}
	root.PersistentFlags().BoolVarP(&xlog.Verbose, "verbose", "v", false, "log per-connection detail")
	root.AddCommand(newPlanCmd())
	root.AddCommand(newBatchCmd())
	return root
}

type planFlags struct {
	mapName              string
	startX, startY       float64
	goalX, goalY         float64
	wsXMax, wsYMax       float64
	seed                 int64
	maxIterations        int
	stepSize             float64
	optimizationInterval int
	gamma                float64
	connectionK          int
	psoParticles         int
	psoIterations        int
}

func (f *planFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.mapName, "map", "slalom", "obstacle map: slalom, circle, bars, ishape, none")
	cmd.Flags().Float64Var(&f.startX, "start-x", 20, "start x coordinate")
	cmd.Flags().Float64Var(&f.startY, "start-y", 20, "start y coordinate")
	cmd.Flags().Float64Var(&f.goalX, "goal-x", 380, "goal x coordinate")
	cmd.Flags().Float64Var(&f.goalY, "goal-y", 330, "goal y coordinate")
	cmd.Flags().Float64Var(&f.wsXMax, "workspace-x", 400, "workspace width")
	cmd.Flags().Float64Var(&f.wsYMax, "workspace-y", 350, "workspace height")
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "RNG seed")

	cfg := planner.DefaultConfig()
	cmd.Flags().IntVar(&f.maxIterations, "max-iterations", cfg.MaxIterations, "outer-loop iteration budget")
	cmd.Flags().Float64Var(&f.stepSize, "step-size", cfg.StepSize, "maximum steer distance")
	cmd.Flags().IntVar(&f.optimizationInterval, "optimization-interval", cfg.OptimizationInterval, "iterations between PSO passes")
	cmd.Flags().Float64Var(&f.gamma, "gamma", cfg.Gamma, "RRT* connection radius coefficient")
	cmd.Flags().IntVar(&f.connectionK, "connection-k", cfg.ConnectionK, "cross-tree candidates probed per connection attempt")
	cmd.Flags().IntVar(&f.psoParticles, "pso-particles", cfg.PSOParticles, "PSO swarm size")
	cmd.Flags().IntVar(&f.psoIterations, "pso-iterations", cfg.PSOIterations, "PSO iterations per refinement pass")
}

func (f *planFlags) resolve() (planner.Position, planner.Position, []planner.Obstacle, planner.Workspace, planner.Config, error) {
	build, ok := mapNames[f.mapName]
	if !ok {
		return planner.Position{}, planner.Position{}, nil, planner.Workspace{}, planner.Config{}, fmt.Errorf("unknown map %q", f.mapName)
	}

	start := planner.Position{X: f.startX, Y: f.startY}
	goal := planner.Position{X: f.goalX, Y: f.goalY}
	ws := planner.Workspace{XMin: 0, XMax: f.wsXMax, YMin: 0, YMax: f.wsYMax}

	cfg := planner.DefaultConfig()
	cfg.Seed = f.seed
	cfg.MaxIterations = f.maxIterations
	cfg.StepSize = f.stepSize
	cfg.OptimizationInterval = f.optimizationInterval
	cfg.Gamma = f.gamma
	cfg.ConnectionK = f.connectionK
	cfg.PSOParticles = f.psoParticles
	cfg.PSOIterations = f.psoIterations

	return start, goal, build(), ws, cfg, nil
}

func newPlanCmd() *cobra.Command {
	f := &planFlags{}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan a single path and print its cost and waypoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, goal, obs, ws, cfg, err := f.resolve()
			if err != nil {
				return err
			}
			path, cost, stats, err := planner.Plan(start, goal, obs, ws, cfg)
			if err != nil {
				return err
			}
			fmt.Printf("run %s: %d iterations, %d path(s) found, best cost %.3f\n", stats.RunID, stats.Iterations, stats.PathsFound, cost)
			for _, p := range path {
				fmt.Printf("  %.2f, %.2f\n", p.X, p.Y)
			}
			return nil
		},
	}
	f.bind(cmd)
	return cmd
}
