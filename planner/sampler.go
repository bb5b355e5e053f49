package planner

import (
	"math"

	"github.com/oceanrrt/hybridplan/geometry"
	"github.com/oceanrrt/hybridplan/internal/xrand"
)

// densityGridN is the side length of the density-aware sampler's grid.
const densityGridN = 20

// sampleWeights holds the five sampling weights. They are always
// non-negative and sum to 1.
type sampleWeights struct {
	goal, density, narrow, path, uniform float64
}

// sampleWeightsFor computes the weight schedule at outer iteration k of
// maxIterations. pathsEmpty forces the initial fixed weights, since the
// path-guided strategy has nothing to draw from until a path exists.
func sampleWeightsFor(k, maxIterations int, pathsEmpty bool) sampleWeights {
	if pathsEmpty {
		return sampleWeights{goal: 0.10, density: 0.20, narrow: 0.15, path: 0.00, uniform: 0.55}
	}
	frac := float64(k) / float64(maxIterations)
	w := sampleWeights{
		goal:    0.05,
		density: math.Max(0, 0.15-0.10*frac),
		narrow:  math.Max(0, 0.10-0.05*frac),
		path:    0.30 + 0.20*frac,
	}
	w.uniform = math.Max(0, 1-(w.goal+w.density+w.narrow+w.path))
	return w
}

// sampler is the adaptive sampler: a single call returns one candidate
// clamped to the workspace rectangle, drawn from one of five strategies
// selected by cumulative weight.
type sampler struct {
	rng *xrand.Stream
}

func newSampler(rng *xrand.Stream) *sampler {
	return &sampler{rng: rng}
}

func (s *sampler) sample(ws Workspace, active, opposite *tree, paths *pathSet, start, goal Position, obstacles []Obstacle, k, maxIterations int) Position {
	w := sampleWeightsFor(k, maxIterations, paths.len() == 0)
	u := s.rng.Float64()

	var p Position
	switch {
	case u < w.goal:
		p = s.goalBias(start, goal)
	case u < w.goal+w.density:
		p = s.densityAware(ws, active, opposite)
	case u < w.goal+w.density+w.narrow:
		p = s.narrowPassage(ws, obstacles)
	case u < w.goal+w.density+w.narrow+w.path:
		if paths.len() == 0 {
			p = s.uniform(ws)
		} else {
			p = s.pathGuided(ws, paths)
		}
	default:
		p = s.uniform(ws)
	}
	return clampToWorkspace(p, ws)
}

func clampToWorkspace(p Position, ws Workspace) Position {
	x, y := p.X, p.Y
	if x < ws.XMin {
		x = ws.XMin
	} else if x > ws.XMax {
		x = ws.XMax
	}
	if y < ws.YMin {
		y = ws.YMin
	} else if y > ws.YMax {
		y = ws.YMax
	}
	return Position{X: x, Y: y}
}

func (s *sampler) uniform(ws Workspace) Position {
	return Position{X: s.rng.Uniform(ws.XMin, ws.XMax), Y: s.rng.Uniform(ws.YMin, ws.YMax)}
}

// goalBias returns start or goal with 50/50 probability, perturbed by
// 0.1·(Uniform[-0.5,0.5]^2) independently on each axis.
func (s *sampler) goalBias(start, goal Position) Position {
	base := start
	if s.rng.Float64() >= 0.5 {
		base = goal
	}
	dx := 0.1 * math.Pow(s.rng.SignedUnit(), 2)
	dy := 0.1 * math.Pow(s.rng.SignedUnit(), 2)
	return Position{X: base.X + dx, Y: base.Y + dy}
}

// densityAware discretizes the workspace into a 20x20 grid indexed
// cell[iy][ix] (ix maps to the x-range — earlier density-grid code this was
// modeled on had a row/column transposition here, easy to get backwards),
// counts nodes from both trees per cell, samples a cell proportional to
// inverse density, and returns a point uniform inside that cell.
func (s *sampler) densityAware(ws Workspace, active, opposite *tree) Position {
	var counts [densityGridN][densityGridN]int
	cellW := (ws.XMax - ws.XMin) / densityGridN
	cellH := (ws.YMax - ws.YMin) / densityGridN

	addCounts := func(t *tree) {
		for i := range t.nodes {
			p := t.nodes[i].pos
			ix := clampInt(int((p.X-ws.XMin)/cellW), 0, densityGridN-1)
			iy := clampInt(int((p.Y-ws.YMin)/cellH), 0, densityGridN-1)
			counts[iy][ix]++
		}
	}
	addCounts(active)
	addCounts(opposite)

	max := 0
	for iy := 0; iy < densityGridN; iy++ {
		for ix := 0; ix < densityGridN; ix++ {
			if counts[iy][ix] > max {
				max = counts[iy][ix]
			}
		}
	}

	var mass [densityGridN * densityGridN]float64
	var total float64
	idx := 0
	for iy := 0; iy < densityGridN; iy++ {
		for ix := 0; ix < densityGridN; ix++ {
			m := float64(max + 1 - counts[iy][ix])
			mass[idx] = m
			total += m
			idx++
		}
	}

	target := s.rng.Float64() * total
	chosenIx, chosenIy := 0, 0
	cum := 0.0
	idx = 0
outer:
	for iy := 0; iy < densityGridN; iy++ {
		for ix := 0; ix < densityGridN; ix++ {
			cum += mass[idx]
			if target <= cum {
				chosenIx, chosenIy = ix, iy
				break outer
			}
			idx++
		}
	}

	cx := ws.XMin + (float64(chosenIx)+0.5)*cellW
	cy := ws.YMin + (float64(chosenIy)+0.5)*cellH
	return Position{
		X: cx + s.rng.Uniform(-cellW/2, cellW/2),
		Y: cy + s.rng.Uniform(-cellH/2, cellH/2),
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// narrowPassage reject-samples uniform points until one lands within
// (0, 30] of the nearest obstacle, giving up after 50 attempts and falling
// back to uniform.
func (s *sampler) narrowPassage(ws Workspace, obstacles []Obstacle) Position {
	for attempt := 0; attempt < 50; attempt++ {
		p := s.uniform(ws)
		d := nearestObstacleDistance(p, obstacles)
		if d > 0 && d <= 30 {
			return p
		}
	}
	return s.uniform(ws)
}

func nearestObstacleDistance(p Position, obstacles []Obstacle) float64 {
	min := math.Inf(1)
	for _, obs := range obstacles {
		if d := geometry.PointToPolygonDistance(p, obs); d < min {
			min = d
		}
	}
	return min
}

// pathGuided picks a random path from the path set, a random segment of it,
// interpolates uniformly along the segment, and adds isotropic noise of
// magnitude 20·Uniform[-0.5,0.5].
func (s *sampler) pathGuided(ws Workspace, paths *pathSet) Position {
	path := paths.at(s.rng.Intn(paths.len()))
	if len(path) < 2 {
		return s.uniform(ws)
	}
	segIdx := s.rng.Intn(len(path) - 1)
	a, b := path[segIdx], path[segIdx+1]
	t := s.rng.Float64()
	p := Position{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
	p.X += 20 * s.rng.SignedUnit()
	p.Y += 20 * s.rng.SignedUnit()
	return p
}
