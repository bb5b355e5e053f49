package planner

import "testing"

func TestTreeAddNodeAndAccessors(t *testing.T) {
	tr := newTree(Position{X: 0, Y: 0}, startRoot)
	if tr.size() != 1 {
		t.Fatalf("expected a fresh tree to have 1 node, got %d", tr.size())
	}
	a := tr.addNode(Position{X: 1, Y: 0}, 0, 1)
	b := tr.addNode(Position{X: 2, Y: 0}, a, 2)
	if tr.size() != 3 {
		t.Fatalf("expected size 3 after two addNode calls, got %d", tr.size())
	}
	if tr.pos(b) != (Position{X: 2, Y: 0}) {
		t.Errorf("pos(%d) = %v, want {2 0}", b, tr.pos(b))
	}
	if tr.cost(b) != 2 {
		t.Errorf("cost(%d) = %f, want 2", b, tr.cost(b))
	}
	if got := tr.nodes[a].children; len(got) != 1 || got[0] != b {
		t.Errorf("expected node %d's children to be [%d], got %v", a, b, got)
	}
}

func TestTreeNearestAndNear(t *testing.T) {
	tr := newTree(Position{X: 0, Y: 0}, startRoot)
	tr.addNode(Position{X: 10, Y: 0}, 0, 10)
	far := tr.addNode(Position{X: 100, Y: 0}, 0, 100)

	nearest := tr.nearest(Position{X: 95, Y: 0})
	if nearest != far {
		t.Errorf("nearest to (95,0) = %d, want %d", nearest, far)
	}

	within := tr.near(Position{X: 0, Y: 0}, 15)
	if len(within) != 2 {
		t.Errorf("expected 2 nodes within radius 15 of origin, got %d: %v", len(within), within)
	}
}

func TestTreeIsAncestorOf(t *testing.T) {
	tr := newTree(Position{X: 0, Y: 0}, startRoot)
	a := tr.addNode(Position{X: 1, Y: 0}, 0, 1)
	b := tr.addNode(Position{X: 2, Y: 0}, a, 2)
	c := tr.addNode(Position{X: 3, Y: 0}, 0, 1)

	if !tr.isAncestorOf(0, b) {
		t.Errorf("expected root to be an ancestor of %d", b)
	}
	if !tr.isAncestorOf(a, b) {
		t.Errorf("expected %d to be an ancestor of %d", a, b)
	}
	if tr.isAncestorOf(b, a) {
		t.Errorf("did not expect %d to be an ancestor of its own parent %d", b, a)
	}
	if tr.isAncestorOf(c, b) {
		t.Errorf("did not expect unrelated node %d to be an ancestor of %d", c, b)
	}
	if !tr.isAncestorOf(b, b) {
		t.Errorf("expected a node to be its own ancestor for reparent cycle checks")
	}
}

// TestTreeReparentCascadesCost builds a chain root -> a -> b -> c, then
// reparents a onto a new sibling whose cost differs from a's old parent,
// and checks that both a and every one of its descendants (b, c) reflect
// the new cost, not just the directly reparented node.
func TestTreeReparentCascadesCost(t *testing.T) {
	tr := newTree(Position{X: 0, Y: 0}, startRoot)
	a := tr.addNode(Position{X: 1, Y: 0}, 0, 5)
	b := tr.addNode(Position{X: 2, Y: 0}, a, 8)
	c := tr.addNode(Position{X: 3, Y: 0}, b, 12)
	sibling := tr.addNode(Position{X: 10, Y: 10}, 0, 1)

	tr.reparent(a, sibling, 2)

	if tr.cost(a) != 2 {
		t.Fatalf("reparented node cost = %f, want 2", tr.cost(a))
	}
	// delta applied to a was 2 - 5 = -3; every descendant must shift by the
	// same delta rather than keep its stale cost.
	if got, want := tr.cost(b), 8.0-3; got != want {
		t.Errorf("descendant %d cost = %f, want %f", b, got, want)
	}
	if got, want := tr.cost(c), 12.0-3; got != want {
		t.Errorf("grandchild %d cost = %f, want %f", c, got, want)
	}
	if got := tr.nodes[0].children; len(got) != 1 || got[0] != sibling {
		t.Errorf("expected old root to have lost %d as a child, children now %v", a, got)
	}
	if got := tr.nodes[sibling].children; len(got) != 1 || got[0] != a {
		t.Errorf("expected new parent %d to have %d as a child, got %v", sibling, a, got)
	}
}

func TestTreeRemoveChild(t *testing.T) {
	tr := newTree(Position{X: 0, Y: 0}, startRoot)
	a := tr.addNode(Position{X: 1, Y: 0}, 0, 1)
	b := tr.addNode(Position{X: 2, Y: 0}, 0, 1)
	tr.removeChild(0, a)
	got := tr.nodes[0].children
	if len(got) != 1 || got[0] != b {
		t.Errorf("after removing %d, root children = %v, want [%d]", a, got, b)
	}
}

func TestTreePathToRootIsRootFirst(t *testing.T) {
	tr := newTree(Position{X: 0, Y: 0}, startRoot)
	a := tr.addNode(Position{X: 1, Y: 0}, 0, 1)
	b := tr.addNode(Position{X: 2, Y: 0}, a, 2)

	path := tr.pathToRoot(b)
	want := []Position{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	if len(path) != len(want) {
		t.Fatalf("pathToRoot length = %d, want %d", len(path), len(want))
	}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("pathToRoot[%d] = %v, want %v", i, path[i], want[i])
		}
	}
}
