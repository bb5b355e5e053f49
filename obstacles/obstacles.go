// Package obstacles builds the canonical test maps used by the planner's
// own test suite and by the CLI's demo/batch modes. It is the Go-native
// stand-in for the external "test map factory" collaborator: it knows
// nothing about trees, sampling, or PSO, it just returns polygons.
package obstacles

import (
	"math"

	"github.com/oceanrrt/hybridplan/geometry"
	"github.com/oceanrrt/hybridplan/planner"
)

func rect(xMin, yMin, xMax, yMax float64) planner.Obstacle {
	return geometry.Polygon{
		{X: xMin, Y: yMin},
		{X: xMax, Y: yMin},
		{X: xMax, Y: yMax},
		{X: xMin, Y: yMax},
	}
}

// Slalom is canonical map 1: four axis-aligned rectangles staggered across
// the workspace [0,400]x[0,350], forcing a back-and-forth route.
func Slalom() []planner.Obstacle {
	return []planner.Obstacle{
		rect(60, 0, 100, 250),
		rect(160, 100, 200, 350),
		rect(260, 0, 300, 250),
		rect(340, 100, 375, 350),
	}
}

// CircleAndPentagon is canonical map 2: a sampled circle (~40 vertices) and
// a regular pentagon placed across the direct start-goal line.
func CircleAndPentagon() []planner.Obstacle {
	const circleVertices = 40
	circle := make(geometry.Polygon, 0, circleVertices)
	cx, cy, r := 150.0, 150.0, 60.0
	for i := 0; i < circleVertices; i++ {
		theta := 2 * math.Pi * float64(i) / circleVertices
		circle = append(circle, geometry.Point{X: cx + r*math.Cos(theta), Y: cy + r*math.Sin(theta)})
	}

	const pentagonVertices = 5
	pentagon := make(geometry.Polygon, 0, pentagonVertices)
	px, py, pr := 280.0, 230.0, 55.0
	for i := 0; i < pentagonVertices; i++ {
		theta := 2*math.Pi*float64(i)/pentagonVertices - math.Pi/2
		pentagon = append(pentagon, geometry.Point{X: px + pr*math.Cos(theta), Y: py + pr*math.Sin(theta)})
	}

	return []planner.Obstacle{circle, pentagon}
}

// ParallelBars is canonical map 3: four parallel horizontal bars with
// offsetting gaps, forcing a winding vertical traversal.
func ParallelBars() []planner.Obstacle {
	return []planner.Obstacle{
		rect(0, 60, 300, 90),
		rect(100, 150, 400, 180),
		rect(0, 220, 300, 250),
		rect(100, 280, 400, 310),
	}
}

// IShape is canonical map 4: an I-shaped composite of three rectangles (two
// caps, one stem) set diagonally across the workspace.
func IShape() []planner.Obstacle {
	return []planner.Obstacle{
		rect(150, 100, 300, 140),
		rect(205, 140, 245, 260),
		rect(150, 260, 300, 300),
	}
}
