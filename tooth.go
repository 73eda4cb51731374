package spur

import (
	"fmt"
	"math"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/soypat/spur/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Tooth is the outline of a single tooth centered on the x-axis. It is an
// open path from the root point of one valley, up the lower flank and down
// the upper flank to the root point of the next valley, counter-clockwise.
type Tooth struct {
	pts   d2.Set
	flank int // points in each flank
}

// Centering selects the circle on which a flank is placed one half pitch
// angle, 2π/(4*teeth), away from the tooth axis.
type Centering int

const (
	// CenterOnBase places the start of the involute on the base circle at
	// the half pitch angle. Teeth are thinner than standard by twice the
	// involute function of the pressure angle.
	CenterOnBase Centering = iota
	// CenterOnPitch places the flank's pitch circle crossing at the half
	// pitch angle, giving the standard tooth thickness of half the circular
	// pitch.
	CenterOnPitch
)

// BuildTooth prepends the root point (RootRadius, 0) to the involute,
// centers it on the x-axis with CenterOnBase and joins it with its mirror
// image. The flank below the base circle is the straight radial segment from
// the root point to the first involute point. When the root circle lies
// outside the base circle that segment runs inward from the root circle down
// to the base circle. The result has 2*(inv.Len()+1) points.
//
// An involute built with StartOnRoot that begins on the root circle is its
// own root point, which is then repeated.
//
// Flanks may cross below the tip. With CenterOnBase this happens for few
// teeth at large pressure angles and for 51 teeth or more at 20°.
// This is not an error, see FlanksOverlap.
func BuildTooth(inv Involute, g Geometry) (Tooth, error) {
	return BuildToothCentered(inv, g, CenterOnBase)
}

// BuildToothCentered is BuildTooth with a choice of flank placement.
func BuildToothCentered(inv Involute, g Geometry, c Centering) (Tooth, error) {
	if inv.Len() < 2 {
		return Tooth{}, fmt.Errorf("%w: involute has %d points, need at least 2", ErrInvalidSpec, inv.Len())
	}
	if g.Teeth < 3 {
		return Tooth{}, fmt.Errorf("%w: teeth=%d < 3", ErrInvalidSpec, g.Teeth)
	}
	offset := g.HalfPitchAngle()
	switch c {
	case CenterOnBase:
	case CenterOnPitch:
		if g.PitchRadius() < g.BaseRadius {
			return Tooth{}, fmt.Errorf("%w: pitch radius=%g below base radius=%g", ErrDegenerateGeometry, g.PitchRadius(), g.BaseRadius)
		}
		offset += unwindTo(g.PitchRadius(), g.BaseRadius).PolarAngle()
	default:
		return Tooth{}, fmt.Errorf("%w: unknown centering %d", ErrInvalidSpec, c)
	}
	root := r2.Vec{X: g.RootRadius}
	if inv.Start > 0 {
		// Involute begins on the root circle.
		root = inv.pts[0]
	}
	ext := make(d2.Set, 0, inv.Len()+1)
	ext = append(ext, root)
	ext = append(ext, inv.pts...)

	low := d2.Set(Rotate(offset, ext))
	high := low.MirrorX().Reverse()

	t := Tooth{
		pts:   make(d2.Set, 0, 2*len(low)),
		flank: len(low),
	}
	t.pts = append(t.pts, low...)
	t.pts = append(t.pts, high...)
	return t, nil
}

// Points returns a copy of the tooth outline.
func (t Tooth) Points() []r2.Vec { return t.pts.Clone() }

// Len returns the number of points in the tooth outline.
func (t Tooth) Len() int { return len(t.pts) }

// FlankLen returns the number of points of each flank, root to tip.
func (t Tooth) FlankLen() int { return t.flank }

// FlanksOverlap reports whether the two flanks of the tooth cross each other.
// The region between the origin and each flank is intersected with the other's
// and a non-zero intersection area means the flanks cross before the tip.
func (t Tooth) FlanksOverlap() bool {
	if t.flank < 2 {
		return false
	}
	low := t.pts[:t.flank]
	high := t.pts[t.flank:].Reverse()

	var rmax float64
	for _, v := range t.pts {
		rmax = math.Max(rmax, r2.Norm(v))
	}
	clip := flankWedge(low).Construct(polyclip.INTERSECTION, flankWedge(high))
	var area float64
	for _, c := range clip {
		area += math.Abs(contourArea(c))
	}
	return area > tolerance*rmax*rmax
}

// flankWedge returns the polygon enclosed by a flank, ordered root to tip,
// and an apex half way between the origin and the flank's innermost point.
// Points before the innermost one lie on a radial segment and enclose no area.
// The apex is kept off the origin so that mirrored wedges share no vertex.
func flankWedge(flank d2.Set) polyclip.Polygon {
	inner := 0
	for i, v := range flank {
		if r2.Norm(v) < r2.Norm(flank[inner]) {
			inner = i
		}
	}
	flank = flank[inner:]
	apex := r2.Scale(0.5, flank[0])
	c := make(polyclip.Contour, 0, len(flank)+1)
	c = append(c, polyclip.Point{X: apex.X, Y: apex.Y})
	for i, v := range flank {
		if i > 0 && v == flank[i-1] {
			continue
		}
		c = append(c, polyclip.Point{X: v.X, Y: v.Y})
	}
	return polyclip.Polygon{c}
}

// contourArea returns the signed shoelace area of a closed contour.
func contourArea(c polyclip.Contour) float64 {
	var a float64
	for i := range c {
		j := (i + 1) % len(c)
		a += c[i].X*c[j].Y - c[j].X*c[i].Y
	}
	return a / 2
}
