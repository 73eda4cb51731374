package spur

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

// ReferenceInvolute samples the involute of a circle of radius r over
// t in [0, π/4] with the generating line offset by a:
//
//	x = r(cos t + (t-a) sin t)
//	y = r(sin t - (t-a) cos t)
//
// It shares no code with BuildInvolute and serves to cross check it.
// nil is returned for fewer than 2 points.
func ReferenceInvolute(r, a float64, points int) []r2.Vec {
	if points < 2 {
		return nil
	}
	t := floats.Span(make([]float64, points), 0, pi/4)
	out := make([]r2.Vec, points)
	for i, ti := range t {
		out[i] = r2.Vec{
			X: r * (math.Cos(ti) + (ti-a)*math.Sin(ti)),
			Y: r * (math.Sin(ti) - (ti-a)*math.Cos(ti)),
		}
	}
	return out
}

// ReferenceRotate returns v·R(θ) computed as a dense matrix product where
// v is the n×2 matrix of points. It shares no code with Rotate.
func ReferenceRotate(theta float64, v []r2.Vec) []r2.Vec {
	if len(v) == 0 {
		return []r2.Vec{}
	}
	c, s := math.Cos(theta), math.Sin(theta)
	R := mat.NewDense(2, 2, []float64{
		c, -s,
		s, c,
	})
	V := mat.NewDense(len(v), 2, nil)
	for i, p := range v {
		V.Set(i, 0, p.X)
		V.Set(i, 1, p.Y)
	}
	var rot mat.Dense
	rot.Mul(V, R)
	out := make([]r2.Vec, len(v))
	for i := range out {
		out[i] = r2.Vec{X: rot.At(i, 0), Y: rot.At(i, 1)}
	}
	return out
}
