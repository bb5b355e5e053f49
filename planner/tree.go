package planner

import "github.com/oceanrrt/hybridplan/geometry"

// nodeRef is an arena index into a tree's node slice, rather than a direct
// pointer or a distance-tolerance lookup. Indices eliminate any
// float-tolerance ambiguity around node identity entirely — grounded on
// brychanrobot-go-rrt-star's Node type, generalized from a *Node pointer
// graph to a slice-backed arena.
type nodeRef int

const noParent nodeRef = -1

// rootKind tags which endpoint a tree is rooted at: a proper enum in place
// of loose string tags ('start'/'goal').
type rootKind int

const (
	startRoot rootKind = iota
	goalRoot
)

type treeNode struct {
	pos      Position
	parent   nodeRef
	children []nodeRef
	cost     float64
}

// tree is an arena of nodes plus integer indices. Nodes are only ever
// appended; parent/cost may be overwritten by rewiring.
type tree struct {
	kind  rootKind
	nodes []treeNode
}

func newTree(root Position, kind rootKind) *tree {
	return &tree{
		kind:  kind,
		nodes: []treeNode{{pos: root, parent: noParent, cost: 0}},
	}
}

func (t *tree) size() int {
	return len(t.nodes)
}

func (t *tree) pos(ref nodeRef) Position {
	return t.nodes[ref].pos
}

func (t *tree) cost(ref nodeRef) float64 {
	return t.nodes[ref].cost
}

// addNode appends a new node and returns its reference. It never reorders
// existing nodes, so previously issued nodeRefs stay valid.
func (t *tree) addNode(pos Position, parent nodeRef, cost float64) nodeRef {
	ref := nodeRef(len(t.nodes))
	t.nodes = append(t.nodes, treeNode{pos: pos, parent: parent, cost: cost})
	t.nodes[parent].children = append(t.nodes[parent].children, ref)
	return ref
}

// nearest returns the node minimizing Euclidean distance to pos. Linear
// scan; a spatial index is deliberately not used here, to keep nearest/near
// queries exact and order-independent rather than approximate.
func (t *tree) nearest(p Position) nodeRef {
	best := nodeRef(0)
	bestDist := geometry.Distance(t.nodes[0].pos, p)
	for i := 1; i < len(t.nodes); i++ {
		if d := geometry.Distance(t.nodes[i].pos, p); d < bestDist {
			bestDist = d
			best = nodeRef(i)
		}
	}
	return best
}

// near returns every node within radius (inclusive) of p, linear scan.
func (t *tree) near(p Position, radius float64) []nodeRef {
	var out []nodeRef
	for i := range t.nodes {
		if geometry.Distance(t.nodes[i].pos, p) <= radius {
			out = append(out, nodeRef(i))
		}
	}
	return out
}

// isAncestorOf reports whether ancestor lies on node's path to the root,
// i.e. node is a descendant of ancestor (including node == ancestor).
func (t *tree) isAncestorOf(ancestor, node nodeRef) bool {
	for cur := node; cur != noParent; cur = t.nodes[cur].parent {
		if cur == ancestor {
			return true
		}
	}
	return false
}

func (t *tree) removeChild(parent, child nodeRef) {
	children := t.nodes[parent].children
	for i, c := range children {
		if c == child {
			t.nodes[parent].children = append(children[:i], children[i+1:]...)
			return
		}
	}
}

// reparent detaches child from its current parent, attaches it to
// newParent, and overwrites child's cost. The cost delta is cascaded to
// every descendant of child, since otherwise their cost-to-root would go
// stale after the reparent. Grounded on brychanrobot-go-rrt-star's
// Node.updateCumulativeCost, which performs the same recursive walk over a
// pointer-based tree.
//
// Callers must ensure newParent is not already a descendant of child (see
// isAncestorOf) before calling reparent; this function does not itself
// guard against creating a cycle.
func (t *tree) reparent(child, newParent nodeRef, newCost float64) {
	delta := newCost - t.nodes[child].cost
	if old := t.nodes[child].parent; old != noParent {
		t.removeChild(old, child)
	}
	t.nodes[child].parent = newParent
	t.nodes[child].cost = newCost
	t.nodes[newParent].children = append(t.nodes[newParent].children, child)
	t.propagateCostDelta(child, delta)
}

func (t *tree) propagateCostDelta(ref nodeRef, delta float64) {
	if delta == 0 {
		return
	}
	for _, c := range t.nodes[ref].children {
		t.nodes[c].cost += delta
		t.propagateCostDelta(c, delta)
	}
}

// pathToRoot walks parents from ref and returns the positions in root-first
// order.
func (t *tree) pathToRoot(ref nodeRef) []Position {
	var rev []Position
	for cur := ref; cur != noParent; cur = t.nodes[cur].parent {
		rev = append(rev, t.nodes[cur].pos)
	}
	return reversed(rev)
}
