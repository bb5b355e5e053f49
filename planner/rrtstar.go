package planner

import (
	"math"

	"github.com/oceanrrt/hybridplan/geometry"
)

// costEps is the absolute tolerance used for cost tie-breaking. On a tie
// the existing parent wins, which is why every comparison below requires
// strict improvement beyond this epsilon.
const costEps = 1e-9

// minRadius is the floor on the RRT* connection radius.
const minRadius = 15

// steer returns a point step units from x_from towards x_to, or x_to
// itself if it is already within step.
func steer(from, to Position, step float64) Position {
	d := distance(from, to)
	if d <= step {
		return to
	}
	t := step / d
	return Position{X: from.X + t*(to.X-from.X), Y: from.Y + t*(to.Y-from.Y)}
}

func distance(a, b Position) float64 {
	return geometry.Distance(a, b)
}

// connectionRadius computes the dynamic RRT* radius from the current tree
// size n and the gamma coefficient, floored at minRadius. Radius depends
// only on n and gamma, not on workspace area; there is no point computing a
// value nothing reads.
func connectionRadius(n int, gamma float64) float64 {
	if n <= 1 {
		return minRadius
	}
	r := gamma * math.Sqrt(math.Log(float64(n))/float64(n))
	return math.Max(r, minRadius)
}

// expandResult reports the outcome of one RRT* expansion attempt.
type expandResult struct {
	inserted bool
	ref      nodeRef
}

// expand performs one RRT* insertion attempt into t towards sample: steer
// from the nearest node, reject on collision, choose the
// minimum-cost collision-free parent among the near-set plus the nearest
// node, insert, then rewire neighbors whose cost-to-root would strictly
// improve by routing through the new node — cascading the cost change to
// their whole subtree (tree.reparent).
func expand(t *tree, sample Position, stepSize, gamma float64, obstacles []Obstacle) expandResult {
	nearestRef := t.nearest(sample)
	xNew := steer(t.pos(nearestRef), sample, stepSize)

	if !segmentFree(t.pos(nearestRef), xNew, obstacles) {
		return expandResult{}
	}

	r := connectionRadius(t.size(), gamma)
	neighbors := t.near(xNew, r)

	// near-set ∪ {nearest}; nearest is seeded as the default choice above
	// so it only needs to be re-examined here if near() also returned it.
	bestParent := nearestRef
	bestCost := t.cost(nearestRef) + distance(t.pos(nearestRef), xNew)
	for _, ref := range neighbors {
		cost := t.cost(ref) + distance(t.pos(ref), xNew)
		if cost < bestCost-costEps && segmentFree(t.pos(ref), xNew, obstacles) {
			bestCost = cost
			bestParent = ref
		}
	}

	newRef := t.addNode(xNew, bestParent, bestCost)

	for _, ref := range neighbors {
		if ref == bestParent {
			continue
		}
		candidateCost := t.cost(newRef) + distance(xNew, t.pos(ref))
		if candidateCost < t.cost(ref)-costEps &&
			!t.isAncestorOf(ref, newRef) &&
			segmentFree(xNew, t.pos(ref), obstacles) {
			t.reparent(ref, newRef, candidateCost)
		}
	}

	return expandResult{inserted: true, ref: newRef}
}

func segmentFree(a, b Position, obstacles []Obstacle) bool {
	return geometry.SegmentCollisionFree(a, b, obstacles)
}
