package render

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Extrude returns the triangles of the solid obtained by extruding a
// closed outline along z from 0 to height. The outline must wind once
// counter-clockwise about the origin with a polar angle that never
// decreases, which holds for gear outlines whose flanks do not cross.
// Caps are triangle fans about the origin.
func Extrude(outline []r2.Vec, height float64) ([]Triangle3, error) {
	if !(height > 0) {
		return nil, fmt.Errorf("extrusion height %g must be positive", height)
	}
	n := len(outline)
	if n < 3 {
		return nil, errors.New("outline needs at least 3 points")
	}
	var sweep float64
	for i := range outline {
		d := angleBetween(outline[i], outline[(i+1)%n])
		if d < -1e-12 {
			return nil, fmt.Errorf("outline turns clockwise at point %d, not star-shaped about the origin", i)
		}
		sweep += d
	}
	if math.Abs(sweep-2*math.Pi) > 1e-6 {
		return nil, fmt.Errorf("outline sweeps %g radians about the origin, want 2π", sweep)
	}
	const tol = 1e-12
	model := make([]Triangle3, 0, 4*n)
	var (
		bottomCenter = r3.Vec{}
		topCenter    = r3.Vec{Z: height}
	)
	for i := range outline {
		a, b := outline[i], outline[(i+1)%n]
		a0, b0 := r3.Vec{X: a.X, Y: a.Y}, r3.Vec{X: b.X, Y: b.Y}
		a1, b1 := r3.Vec{X: a.X, Y: a.Y, Z: height}, r3.Vec{X: b.X, Y: b.Y, Z: height}
		// Walls face outward.
		wall := Triangle3{V: [3]r3.Vec{a0, b0, b1}}
		if wall.Degenerate(tol) {
			continue // zero length edge.
		}
		model = append(model, wall, Triangle3{V: [3]r3.Vec{a0, b1, a1}})
		if math.Abs(cross(a, b)) <= tol*r2.Norm(a)*r2.Norm(b) {
			continue // collinear with origin, no cap area.
		}
		model = append(model,
			Triangle3{V: [3]r3.Vec{bottomCenter, b0, a0}},
			Triangle3{V: [3]r3.Vec{topCenter, a1, b1}},
		)
	}
	return model, nil
}

// angleBetween returns the signed angle in (-π, π] turning a towards b about the origin.
func angleBetween(a, b r2.Vec) float64 {
	return math.Atan2(cross(a, b), r2.Dot(a, b))
}

// cross returns the z component of the cross product of a and b.
func cross(a, b r2.Vec) float64 { return a.X*b.Y - a.Y*b.X }
