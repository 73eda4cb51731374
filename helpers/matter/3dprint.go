// Package matter compensates dimensions of printed parts for material shrinkage.
package matter

import (
	"gonum.org/v1/gonum/spatial/r2"
)

var (
	// PLA (polylactic acid) is the most widely used plastic filament material in 3D printing.
	PLA = ViscousMaterial{shrink: 0.2e-2} // 0.2% shrinkage
)

type ViscousMaterial struct {
	// shrink is the thermal contraction shrinkage of a material once the material
	// cools to room temperature after the heated bed is turned off.
	shrink float64
}

// Scale returns the outline enlarged about the origin so that it shrinks
// back to its nominal size once the printed part cools.
func (m ViscousMaterial) Scale(outline []r2.Vec) []r2.Vec {
	k := m.ScaleFactor()
	out := make([]r2.Vec, len(outline))
	for i, v := range outline {
		out[i] = r2.Scale(k, v)
	}
	return out
}

// ScaleFactor returns the uniform scale applied by Scale.
func (m ViscousMaterial) ScaleFactor() float64 {
	return 1 / (1 - m.shrink)
}
