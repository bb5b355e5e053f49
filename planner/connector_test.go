package planner

import "testing"

func TestTryConnectAssemblesStartFirstFromStartRootedActive(t *testing.T) {
	active := newTree(Position{X: 0, Y: 0}, startRoot)
	mid := active.addNode(Position{X: 10, Y: 0}, 0, 10)

	opposite := newTree(Position{X: 100, Y: 0}, goalRoot)
	opposite.addNode(Position{X: 20, Y: 0}, 0, 80)

	path, ok := tryConnect(active, opposite, mid, 5, nil)
	if !ok {
		t.Fatalf("expected a connection in an obstacle-free workspace")
	}
	want := Path{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}, {X: 100, Y: 0}}
	if len(path) != len(want) {
		t.Fatalf("path length = %d, want %d: %v", len(path), len(want), path)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("path[%d] = %v, want %v", i, path[i], want[i])
		}
	}
}

func TestTryConnectAssemblesStartFirstFromGoalRootedActive(t *testing.T) {
	active := newTree(Position{X: 100, Y: 0}, goalRoot)
	mid := active.addNode(Position{X: 20, Y: 0}, 0, 80)

	opposite := newTree(Position{X: 0, Y: 0}, startRoot)
	opposite.addNode(Position{X: 10, Y: 0}, 0, 10)

	path, ok := tryConnect(active, opposite, mid, 5, nil)
	if !ok {
		t.Fatalf("expected a connection in an obstacle-free workspace")
	}
	if path[0] != (Position{X: 0, Y: 0}) {
		t.Errorf("path must begin at start, got %v", path[0])
	}
	if path[len(path)-1] != (Position{X: 100, Y: 0}) {
		t.Errorf("path must end at goal, got %v", path[len(path)-1])
	}
}

// TestTryConnectSkipsBlockedNearerCandidate walls off the nearest
// opposite-tree node so the probe has to fall through, in ascending distance
// order, to the next candidate.
func TestTryConnectSkipsBlockedNearerCandidate(t *testing.T) {
	active := newTree(Position{X: 0, Y: 0}, startRoot)
	mid := active.addNode(Position{X: 10, Y: 0}, 0, 10)

	opposite := newTree(Position{X: 100, Y: 0}, goalRoot)
	blocked := opposite.addNode(Position{X: 20, Y: 0}, 0, 80)
	clear := opposite.addNode(Position{X: 10, Y: 30}, 0, 95)

	// Box around the blocked candidate; the link to the clear one stays open.
	wall := Obstacle{{X: 15, Y: -5}, {X: 25, Y: -5}, {X: 25, Y: 5}, {X: 15, Y: 5}}

	path, ok := tryConnect(active, opposite, mid, 5, []Obstacle{wall})
	if !ok {
		t.Fatalf("expected the probe to connect through the unblocked candidate")
	}
	if got := path[2]; got != opposite.pos(clear) {
		t.Errorf("expected the connection to land on the clear candidate %v, got %v (blocked candidate at %v)",
			opposite.pos(clear), got, opposite.pos(blocked))
	}
}

func TestTryConnectRespectsK(t *testing.T) {
	active := newTree(Position{X: 0, Y: 0}, startRoot)
	mid := active.addNode(Position{X: 10, Y: 0}, 0, 10)

	opposite := newTree(Position{X: 100, Y: 0}, goalRoot)
	opposite.addNode(Position{X: 10, Y: 20}, 0, 80)
	opposite.addNode(Position{X: 10, Y: 30}, 0, 70)
	open := opposite.addNode(Position{X: -30, Y: 0}, 0, 130)

	// A slab above xNew blocks the vertical links to the two nearest
	// candidates; the leftward link to the third-nearest stays open, so with
	// k = 2 the probe gives up before it ever reaches it.
	wall := Obstacle{{X: 0, Y: 10}, {X: 50, Y: 10}, {X: 50, Y: 15}, {X: 0, Y: 15}}

	if _, ok := tryConnect(active, opposite, mid, 2, []Obstacle{wall}); ok {
		t.Fatalf("expected no connection with k = 2 and the two nearest candidates walled off")
	}
	if path, ok := tryConnect(active, opposite, mid, 3, []Obstacle{wall}); !ok {
		t.Fatalf("expected a connection once k covers the open candidate at %v", opposite.pos(open))
	} else if path[2] != opposite.pos(open) {
		t.Errorf("expected the connection to land on %v, got %v", opposite.pos(open), path[2])
	}
}
