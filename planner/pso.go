package planner

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/oceanrrt/hybridplan/geometry"
	"github.com/oceanrrt/hybridplan/internal/xrand"
)

// particle holds one candidate set of interior waypoints (the path's start
// and goal are fixed and never optimized) plus its velocity and personal
// best, flattened as [x0,y0,x1,y1,...] pairs to keep the PSO math vectorized
// over gonum's floats helpers rather than looping over Position structs.
type particle struct {
	pos      []float64
	vel      []float64
	best     []float64
	bestCost float64
}

// refineAll runs one PSO pass independently over every path currently in
// the path set, replacing each entry in place with its refined version if
// the refined cost is lower.
func refineAll(rng *xrand.Stream, paths *pathSet, obstacles []Obstacle, ws Workspace, cfg Config) {
	for i := 0; i < paths.len(); i++ {
		refined := refinePath(rng, paths.at(i), obstacles, ws, cfg)
		if refined.Cost() < paths.at(i).Cost() {
			paths.set(i, refined)
		}
	}
}

// refinePath runs particle swarm optimization over the interior waypoints of
// path (everything but the first and last point), returning the best path
// found. Paths with fewer than 3 points have no interior points to optimize
// and are returned unchanged.
func refinePath(rng *xrand.Stream, path Path, obstacles []Obstacle, ws Workspace, cfg Config) Path {
	numParticles, iterations := cfg.PSOParticles, cfg.PSOIterations
	n := len(path)
	if n < 3 {
		return path
	}
	dims := (n - 2) * 2

	swarm := make([]particle, numParticles)
	flatten := func(p Path) []float64 {
		out := make([]float64, dims)
		for i := 1; i < n-1; i++ {
			out[(i-1)*2] = p[i].X
			out[(i-1)*2+1] = p[i].Y
		}
		return out
	}

	base := flatten(path)
	gbest := append([]float64(nil), base...)
	gbestCost := evaluatePathCost(path, obstacles)

	for i := range swarm {
		pos := make([]float64, dims)
		for d := 0; d < dims; d++ {
			pos[d] = base[d] + rng.Uniform(-5, 5)
		}
		projectFlat(pos, ws, obstacles)

		vel := make([]float64, dims)
		for d := 0; d < dims; d++ {
			vel[d] = rng.Uniform(-1, 1)
		}
		cost := evaluatePathCost(unflatten(path, pos), obstacles)
		swarm[i] = particle{pos: pos, vel: vel, best: append([]float64(nil), pos...), bestCost: cost}
		if cost < gbestCost {
			gbestCost = cost
			gbest = append([]float64(nil), pos...)
		}
	}

	for iter := 0; iter < iterations; iter++ {
		for i := range swarm {
			p := &swarm[i]
			floats.Scale(cfg.PSOInertia, p.vel)
			for d := 0; d < dims; d++ {
				r1, r2 := rng.Float64(), rng.Float64()
				cognitive := cfg.PSOCognitive * r1 * (p.best[d] - p.pos[d])
				social := cfg.PSOSocial * r2 * (gbest[d] - p.pos[d])
				p.vel[d] += cognitive + social
			}
			floats.Add(p.pos, p.vel)
			projectFlat(p.pos, ws, obstacles)

			candidate := unflatten(path, p.pos)
			cost := evaluatePathCost(candidate, obstacles)
			if cost < p.bestCost {
				p.bestCost = cost
				copy(p.best, p.pos)
				if cost < gbestCost {
					gbestCost = cost
					copy(gbest, p.pos)
				}
			}
		}
	}

	return unflatten(path, gbest)
}

func unflatten(original Path, flat []float64) Path {
	out := make(Path, len(original))
	out[0] = original[0]
	out[len(original)-1] = original[len(original)-1]
	for i := 1; i < len(original)-1; i++ {
		out[i] = Position{X: flat[(i-1)*2], Y: flat[(i-1)*2+1]}
	}
	return out
}

// projectionRadii and projectionAngles are the fixed radius/angle scan used
// by projectToFreeSpace: radii 5 through 50 in steps of 5, and 16 angles
// spanning a full turn in steps of pi/8.
var projectionRadii = []float64{5, 10, 15, 20, 25, 30, 35, 40, 45, 50}

const projectionAngleSteps = 16

// projectFlat projects every interior waypoint in flat (pairs of x, y) to
// free space in place.
func projectFlat(flat []float64, ws Workspace, obstacles []Obstacle) {
	for d := 0; d < len(flat); d += 2 {
		p := projectToFreeSpace(Position{X: flat[d], Y: flat[d+1]}, ws, obstacles)
		flat[d], flat[d+1] = p.X, p.Y
	}
}

// projectToFreeSpace pushes p into free space: in the workspace and outside
// every obstacle. If p is already free it is returned unchanged; otherwise
// it scans outward at radii 5,10,...,50 and, at each radius, 16 angles
// spaced pi/8 apart, returning the first offset point that lands in free
// space. If the whole scan turns up nothing, p is clamped to the workspace
// rectangle and returned as-is (the clamped point may still be infeasible;
// the cost function's infinite collision penalty is what ultimately rejects
// it).
func projectToFreeSpace(p Position, ws Workspace, obstacles []Obstacle) Position {
	if pointFree(p, ws, obstacles) {
		return p
	}
	for _, radius := range projectionRadii {
		for step := 0; step < projectionAngleSteps; step++ {
			angle := float64(step) * math.Pi / 8
			candidate := Position{X: p.X + radius*math.Cos(angle), Y: p.Y + radius*math.Sin(angle)}
			if pointFree(candidate, ws, obstacles) {
				return candidate
			}
		}
	}
	return clampToWorkspace(p, ws)
}

func pointFree(p Position, ws Workspace, obstacles []Obstacle) bool {
	if !ws.contains(p) {
		return false
	}
	for _, obs := range obstacles {
		if geometry.PointInPolygon(p, obs) {
			return false
		}
	}
	return true
}

// evaluatePathCost is the PSO fitness function: total path length, with any
// consecutive segment that crosses an obstacle driving the cost to +Inf so
// an infeasible candidate can never outscore a longer feasible one.
func evaluatePathCost(path Path, obstacles []Obstacle) float64 {
	if len(path) < 2 {
		return 0
	}
	var total float64
	for i := 1; i < len(path); i++ {
		if !geometry.SegmentCollisionFree(path[i-1], path[i], obstacles) {
			return math.Inf(1)
		}
		total += geometry.Distance(path[i-1], path[i])
	}
	return total
}
