package planner

import "sort"

// tryConnect probes the opposite tree for a collision-free link from the
// just-inserted node newRef in active. It tests the k nearest
// opposite-tree candidates in ascending distance order and stops at the
// first collision-free one. On success it assembles a complete start→goal
// Path from both trees' root paths.
func tryConnect(active, opposite *tree, newRef nodeRef, k int, obstacles []Obstacle) (Path, bool) {
	xNew := active.pos(newRef)

	type candidate struct {
		ref  nodeRef
		dist float64
	}
	candidates := make([]candidate, len(opposite.nodes))
	for i := range opposite.nodes {
		candidates[i] = candidate{ref: nodeRef(i), dist: distance(xNew, opposite.pos(nodeRef(i)))}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].dist < candidates[j].dist })

	if k > len(candidates) {
		k = len(candidates)
	}
	for i := 0; i < k; i++ {
		cand := candidates[i]
		if !segmentFree(xNew, opposite.pos(cand.ref), obstacles) {
			continue
		}
		a := active.pathToRoot(newRef)
		b := opposite.pathToRoot(cand.ref)
		var path Path
		if active.kind == startRoot {
			// a: start...xNew, b: goal...cand -> start...xNew, cand...goal
			path = append(append(Path{}, a...), reversed(b)...)
		} else {
			// a: goal...xNew, b: start...cand -> start...cand, xNew...goal
			path = append(append(Path{}, b...), reversed(a)...)
		}
		return path, true
	}
	return nil, false
}
