package spur

import (
	"fmt"

	"github.com/soypat/spur/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Involute is the sampled involute of a gear's base circle, ordered from
// the innermost point of the flank to the outer circle.
type Involute struct {
	pts d2.Set
	// Start and End are the parameters of the first and last samples.
	Start, End InvoluteParameter
}

// FlankStart selects where the sampled involute of a flank begins.
type FlankStart int

const (
	// StartOnBase samples the involute from the base circle tangent point
	// (BaseRadius, 0) for every gear.
	StartOnBase FlankStart = iota
	// StartOnRoot samples the involute from where it crosses the root circle
	// when the root circle lies outside the base circle, see
	// Geometry.RootBelowBase. Otherwise it is the same as StartOnBase.
	StartOnRoot
)

// BuildInvolute samples the involute of g's base circle at points equally
// spaced values of t in [0, t_max], both ends included. The first sample is
// the base circle tangent point (BaseRadius, 0) and the last sample lies on
// the outer circle. See BuildInvoluteFrom for gears whose root circle lies
// outside the base circle.
func BuildInvolute(g Geometry, points int) (Involute, error) {
	return BuildInvoluteFrom(g, points, StartOnBase)
}

// BuildInvoluteFrom is BuildInvolute with a choice of where the flank begins.
func BuildInvoluteFrom(g Geometry, points int, s FlankStart) (Involute, error) {
	if points < 2 {
		return Involute{}, fmt.Errorf("%w: involute points=%d < 2", ErrInvalidSpec, points)
	}
	rb := g.BaseRadius
	switch {
	case !(rb > 0):
		return Involute{}, fmt.Errorf("%w: base radius=%g must be positive", ErrDegenerateGeometry, rb)
	case !(g.OuterRadius > rb):
		return Involute{}, fmt.Errorf("%w: outer radius=%g does not exceed base radius=%g", ErrDegenerateGeometry, g.OuterRadius, rb)
	case !(g.OuterRadius > g.RootRadius):
		return Involute{}, fmt.Errorf("%w: outer radius=%g does not exceed root radius=%g", ErrDegenerateGeometry, g.OuterRadius, g.RootRadius)
	}
	var start InvoluteParameter
	switch s {
	case StartOnBase:
	case StartOnRoot:
		if g.RootRadius > rb {
			start = unwindTo(g.RootRadius, rb)
		}
	default:
		return Involute{}, fmt.Errorf("%w: unknown flank start %d", ErrInvalidSpec, s)
	}
	end := unwindTo(g.OuterRadius, rb)
	inv := Involute{
		pts:   make(d2.Set, points),
		Start: start,
		End:   end,
	}
	span := float64(end - start)
	last := points - 1
	for i := range inv.pts {
		t := start + InvoluteParameter(span*float64(i)/float64(last))
		if i == last {
			t = end
		}
		inv.pts[i] = t.Point(rb)
	}
	return inv, nil
}

// Points returns a copy of the sampled points.
func (inv Involute) Points() []r2.Vec { return inv.pts.Clone() }

// Len returns the number of samples.
func (inv Involute) Len() int { return len(inv.pts) }
