package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Transform is a 2x2 linear transformation applied to row vectors,
// that is, a point p maps to p·M.
type Transform struct {
	data [2 * 2]float64
}

// Rotation returns the rotation matrix
//
//	| cos θ  -sin θ |
//	| sin θ   cos θ |
//
// Since points are row vectors multiplied on the right, Apply rotates
// a point clockwise by theta.
func Rotation(theta float64) Transform {
	s, c := math.Sincos(theta)
	return Transform{data: [4]float64{c, -s, s, c}}
}

func (t *Transform) At(i, j int) float64 {
	return t.data[i*2+j]
}

func (t *Transform) Set(i, j int, v float64) {
	t.data[i*2+j] = v
}

// Apply returns the row vector b multiplied on the right by t.
func (t Transform) Apply(b r2.Vec) r2.Vec {
	return r2.Vec{
		X: b.X*t.At(0, 0) + b.Y*t.At(1, 0),
		Y: b.X*t.At(0, 1) + b.Y*t.At(1, 1),
	}
}

// ApplySet transforms every point of a and returns the result in a new Set.
func (t Transform) ApplySet(a Set) Set {
	out := make(Set, len(a))
	for i, v := range a {
		out[i] = t.Apply(v)
	}
	return out
}
