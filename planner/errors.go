package planner

import "errors"

// Sentinel error kinds. A "no path found" outcome is intentionally absent
// here: it is not an error, it is the zero-value (empty path, +Inf cost)
// return of Plan when validation passes but no path is discovered.
var (
	// ErrInvalidEndpoint is returned when start or goal lies outside the
	// workspace or inside an obstacle.
	ErrInvalidEndpoint = errors.New("invalid endpoint: start or goal outside workspace or inside an obstacle")

	// ErrInvalidWorkspace is returned for a degenerate workspace rectangle.
	ErrInvalidWorkspace = errors.New("invalid workspace: degenerate rectangle")

	// ErrInvalidConfig is returned for a non-positive iteration budget, step
	// size, or swarm size.
	ErrInvalidConfig = errors.New("invalid config")
)
