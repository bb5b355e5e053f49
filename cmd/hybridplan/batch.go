package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/oceanrrt/hybridplan/planner"
)

type batchFlags struct {
	planFlags
	seeds int
}

// batchResult is one seed's outcome, collected independently of the others
// so the summary can be computed after every run has finished.
type batchResult struct {
	seed  int64
	found bool
	cost  float64
}

func newBatchCmd() *cobra.Command {
	f := &batchFlags{seeds: 10}
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run the planner across multiple seeds and report found/cost statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(f)
		},
	}
	f.planFlags.bind(cmd)
	cmd.Flags().IntVar(&f.seeds, "seeds", f.seeds, "number of seeds to run, starting at --seed")
	return cmd
}

// runBatch launches one Plan call per seed concurrently — the only place in
// this module concurrency is introduced, since the core planning call
// itself is single-threaded and stateful per call.
func runBatch(f *batchFlags) error {
	start, goal, obs, ws, baseCfg, err := f.resolve()
	if err != nil {
		return err
	}

	results := make([]batchResult, f.seeds)
	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < f.seeds; i++ {
		i := i
		seed := baseCfg.Seed + int64(i)
		g.Go(func() error {
			cfg := baseCfg
			cfg.Seed = seed
			_, cost, stats, err := planner.Plan(start, goal, obs, ws, cfg)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			results[i] = batchResult{seed: seed, found: stats.PathsFound > 0, cost: cost}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	found := 0
	costs := make([]float64, 0, f.seeds)
	for _, r := range results {
		if r.found {
			found++
			costs = append(costs, r.cost)
		}
	}
	sort.Float64s(costs)

	fmt.Printf("%d/%d seeds found a path\n", found, f.seeds)
	if len(costs) > 0 {
		fmt.Printf("best cost  %.3f\n", costs[0])
		fmt.Printf("median cost %.3f\n", costs[len(costs)/2])
		fmt.Printf("worst cost %.3f\n", costs[len(costs)-1])
	}
	return nil
}
