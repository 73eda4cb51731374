package spur

import (
	"math"

	"github.com/soypat/spur/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// SDF2 is the interface to a 2d signed distance function object.
type SDF2 interface {
	// Evaluate takes a point in 2D space as input and returns
	// the minimum distance of the SDF2 to the point. The distance
	// is negative if the point is contained within the SDF2.
	Evaluate(p r2.Vec) float64

	// Bounds returns the bounding box that completely contains the SDF2.
	Bounds() r2.Box
}

var _ SDF2 = Profile{} // Compile time check of interface implementation.

// Evaluate returns the signed distance from p to the gear outline,
// negative inside the gear.
func (p Profile) Evaluate(q r2.Vec) float64 {
	n := len(p.pts)
	if n < 3 {
		return math.Inf(1)
	}
	dd := math.MaxFloat64 // d^2 to polygon (>0)
	wn := 0               // winding number (inside/outside)
	for i := 0; i < n; i++ {
		a := p.pts[i]
		b := p.pts[(i+1)%n] // last edge closes the outline
		pa := r2.Sub(q, a)
		ab := r2.Sub(b, a)
		length := r2.Norm(ab)
		if length == 0 {
			continue
		}
		u := r2.Scale(1/length, ab)
		t := r2.Dot(pa, u)                        // t-parameter of projection onto line
		dn := r2.Dot(pa, r2.Vec{X: u.Y, Y: -u.X}) // normal distance from q to line

		// Distance to line segment
		if t < 0 {
			dd = math.Min(dd, r2.Norm2(pa))
		} else if t > length {
			dd = math.Min(dd, r2.Norm2(r2.Sub(q, b)))
		} else {
			dd = math.Min(dd, dn*dn)
		}

		// Is the point in the polygon?
		// See: http://geomalgorithms.com/a03-_inclusion.html
		if a.Y <= q.Y {
			if b.Y > q.Y && dn < 0 { // upward crossing, q left of edge
				wn++
			}
		} else if b.Y <= q.Y && dn > 0 { // downward crossing, q right of edge
			wn--
		}
	}
	d := math.Sqrt(dd)
	if wn != 0 {
		return -d
	}
	return d
}

// Bounds returns the bounding box of the outline.
func (p Profile) Bounds() r2.Box {
	if len(p.pts) == 0 {
		return r2.Box{}
	}
	return r2.Box(d2.BoxOf(p.pts))
}
