package planner

import (
	"math"

	"github.com/oceanrrt/hybridplan/geometry"
)

// Path is an ordered sequence of positions; orientation is start-first,
// goal-last. Its cost is the sum of consecutive segment lengths.
type Path []Position

// Cost returns the sum of consecutive segment lengths.
func (p Path) Cost() float64 {
	if len(p) < 2 {
		return 0
	}
	var total float64
	for i := 1; i < len(p); i++ {
		total += geometry.Distance(p[i-1], p[i])
	}
	return total
}

func clonePath(p Path) Path {
	out := make(Path, len(p))
	copy(out, p)
	return out
}

func reversed(p []Position) []Position {
	out := make([]Position, len(p))
	for i, pos := range p {
		out[len(p)-1-i] = pos
	}
	return out
}

// pathSet is an append-only collection of discovered paths. Entries may be
// rewritten in place by PSO refinement but the set itself only ever grows.
type pathSet struct {
	paths []Path
}

func (ps *pathSet) append(p Path) {
	ps.paths = append(ps.paths, clonePath(p))
}

func (ps *pathSet) len() int {
	return len(ps.paths)
}

func (ps *pathSet) at(i int) Path {
	return ps.paths[i]
}

func (ps *pathSet) set(i int, p Path) {
	ps.paths[i] = p
}

// best returns the minimum-cost path in the set, or (nil, +Inf) if empty.
func (ps *pathSet) best() (Path, float64) {
	if len(ps.paths) == 0 {
		return nil, math.Inf(1)
	}
	bestIdx := 0
	bestCost := ps.paths[0].Cost()
	for i := 1; i < len(ps.paths); i++ {
		if c := ps.paths[i].Cost(); c < bestCost {
			bestCost = c
			bestIdx = i
		}
	}
	return ps.paths[bestIdx], bestCost
}
