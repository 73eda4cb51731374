package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

func Elem(sides float64) r2.Vec {
	return r2.Vec{
		X: sides,
		Y: sides,
	}
}

func EqualWithin(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

// Set is an ordered sequence of points. Order is meaningful and
// functions operating on a Set never reorder it in place.
type Set []r2.Vec

// Min return the minimum components of a set of vectors.
func (a Set) Min() r2.Vec {
	vmin := a[0]
	for _, v := range a[1:] {
		vmin = MinElem(vmin, v)
	}
	return vmin
}

// Max return the maximum components of a set of vectors.
func (a Set) Max() r2.Vec {
	vmax := a[0]
	for _, v := range a[1:] {
		vmax = MaxElem(vmax, v)
	}
	return vmax
}

// Clone returns a copy of the set.
func (a Set) Clone() Set {
	if a == nil {
		return nil
	}
	c := make(Set, len(a))
	copy(c, a)
	return c
}

// MirrorX returns a copy of the set reflected across the x-axis.
func (a Set) MirrorX() Set {
	m := make(Set, len(a))
	for i, v := range a {
		m[i] = r2.Vec{X: v.X, Y: -v.Y}
	}
	return m
}

// Reverse returns a copy of the set in reverse traversal order.
func (a Set) Reverse() Set {
	n := len(a)
	r := make(Set, n)
	for i, v := range a {
		r[n-1-i] = v
	}
	return r
}

// EqualWithin reports whether both sets have the same length and
// all corresponding points are within tol of each other.
func (a Set) EqualWithin(b Set, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !EqualWithin(a[i], b[i], tol) {
			return false
		}
	}
	return true
}

type Pol struct {
	R, Theta float64
}

// PolarToCartesian converts a polar to a cartesian coordinate.
func (a Pol) PolarToCartesian() r2.Vec {
	return r2.Vec{X: a.R * math.Cos(a.Theta), Y: a.R * math.Sin(a.Theta)}
}

// CartesianToPolar converts a cartesian to a polar coordinate.
func CartesianToPolar(a r2.Vec) Pol {
	return Pol{r2.Norm(a), math.Atan2(a.Y, a.X)}
}
