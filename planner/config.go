package planner

import (
	"fmt"

	"github.com/oceanrrt/hybridplan/geometry"
)

// Position is a point in workspace coordinates.
type Position = geometry.Point

// Obstacle is an ordered, simple polygon. The core treats it as opaque.
type Obstacle = geometry.Polygon

// Workspace is the axis-aligned rectangle planning happens within.
type Workspace struct {
	XMin, XMax, YMin, YMax float64
}

func (w Workspace) valid() bool {
	return w.XMin < w.XMax && w.YMin < w.YMax
}

func (w Workspace) contains(p Position) bool {
	return p.X >= w.XMin && p.X <= w.XMax && p.Y >= w.YMin && p.Y <= w.YMax
}

// Config collects every tunable the planner's outer loop, RRT* engine, and
// PSO refiner read. It is a plain struct with exported fields rather than
// package-level globals, because a Plan call must not leak shared mutable
// state across concurrent or repeated invocations.
type Config struct {
	MaxIterations        int
	StepSize             float64
	OptimizationInterval int
	Gamma                float64
	ConnectionK          int

	PSOParticles  int
	PSOIterations int
	PSOInertia    float64
	PSOCognitive  float64
	PSOSocial     float64

	// Seed drives the single pseudo-random stream every probabilistic
	// decision in the call draws from. Same seed, same config, and same
	// inputs always produce an identical best path and cost (Stats.RunID is
	// still fresh per call).
	Seed int64

	// StopRequested, if non-nil, is polled once per outer iteration; the
	// orchestrator returns the best path found so far as soon as it
	// reports true.
	StopRequested func() bool
}

// DefaultConfig returns the planner's default tuning values.
func DefaultConfig() Config {
	return Config{
		MaxIterations:        5000,
		StepSize:             20,
		OptimizationInterval: 200,
		Gamma:                150,
		ConnectionK:          5,
		PSOParticles:         20,
		PSOIterations:        50,
		PSOInertia:           0.7,
		PSOCognitive:         1.5,
		PSOSocial:            1.5,
	}
}

func (c Config) validate() error {
	if c.MaxIterations < 1 {
		return fmt.Errorf("%w: max_iterations must be >= 1, got %d", ErrInvalidConfig, c.MaxIterations)
	}
	if c.StepSize <= 0 {
		return fmt.Errorf("%w: step_size must be > 0, got %f", ErrInvalidConfig, c.StepSize)
	}
	if c.OptimizationInterval < 1 {
		return fmt.Errorf("%w: optimization_interval must be >= 1, got %d", ErrInvalidConfig, c.OptimizationInterval)
	}
	if c.Gamma <= 0 {
		return fmt.Errorf("%w: gamma must be > 0, got %f", ErrInvalidConfig, c.Gamma)
	}
	if c.ConnectionK < 1 {
		return fmt.Errorf("%w: connection_k must be >= 1, got %d", ErrInvalidConfig, c.ConnectionK)
	}
	if c.PSOParticles < 1 {
		return fmt.Errorf("%w: pso_particles must be >= 1, got %d", ErrInvalidConfig, c.PSOParticles)
	}
	if c.PSOIterations < 1 {
		return fmt.Errorf("%w: pso_iterations must be >= 1, got %d", ErrInvalidConfig, c.PSOIterations)
	}
	return nil
}
