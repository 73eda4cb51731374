package spur

import (
	"fmt"

	"github.com/soypat/spur/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Profile is the closed outline of a gear, traced counter-clockwise as a
// sequence of tooth outlines. The closing edge from the last point back
// to the first spans a valley like any other pair of consecutive teeth.
type Profile struct {
	pts      d2.Set
	teeth    int
	toothLen int
}

// AssembleProfile replicates the tooth at teeth equally spaced positions.
// Copies are rotated by 2π*k/teeth for k = teeth, teeth-1, ..., 1 and
// concatenated in that order. The first copy is the unrotated tooth (k=teeth
// is a full turn) and each following copy is its predecessor turned
// counter-clockwise by one angular pitch.
func AssembleProfile(t Tooth, teeth int) (Profile, error) {
	if teeth < 3 {
		return Profile{}, fmt.Errorf("%w: teeth=%d < 3", ErrInvalidSpec, teeth)
	}
	if t.Len() == 0 {
		return Profile{}, fmt.Errorf("%w: empty tooth", ErrInvalidSpec)
	}
	step := tau / float64(teeth)
	p := Profile{
		pts:      make(d2.Set, 0, teeth*t.Len()),
		teeth:    teeth,
		toothLen: t.Len(),
	}
	for k := teeth; k >= 1; k-- {
		p.pts = append(p.pts, Rotate(Angle(float64(k)*step), t.pts)...)
	}
	return p, nil
}

// Points returns a copy of the outline points.
func (p Profile) Points() []r2.Vec { return p.pts.Clone() }

// Len returns the number of points in the outline.
func (p Profile) Len() int { return len(p.pts) }

// At returns the i'th point of the outline.
func (p Profile) At(i int) r2.Vec { return p.pts[i] }

// Teeth returns the number of tooth repetitions in the outline.
func (p Profile) Teeth() int { return p.teeth }

// Tooth returns a copy of the i'th tooth repetition, 0 <= i < Teeth().
func (p Profile) Tooth(i int) []r2.Vec {
	if i < 0 || i >= p.teeth {
		panic("tooth index out of range")
	}
	return p.pts[i*p.toothLen : (i+1)*p.toothLen].Clone()
}

// Gear bundles every artifact of the outline derivation.
type Gear struct {
	Geometry Geometry
	Involute Involute
	Tooth    Tooth
	Profile  Profile
}

// Options selects the flank construction used by GenerateWith.
// The zero value is the construction used by Generate.
type Options struct {
	Centering Centering
	Start     FlankStart
}

// Generate derives the gear outline for spec, sampling each involute flank
// with points samples. Flanks start on the base circle and are placed with
// CenterOnBase. No partial result is returned on error.
func Generate(spec Spec, points int) (Gear, error) {
	return GenerateWith(spec, points, Options{})
}

// GenerateCentered is Generate with a choice of flank placement.
func GenerateCentered(spec Spec, points int, c Centering) (Gear, error) {
	return GenerateWith(spec, points, Options{Centering: c})
}

// GenerateWith is Generate with the flank construction given by opts.
func GenerateWith(spec Spec, points int, opts Options) (Gear, error) {
	g, err := Derive(spec)
	if err != nil {
		return Gear{}, err
	}
	inv, err := BuildInvoluteFrom(g, points, opts.Start)
	if err != nil {
		return Gear{}, err
	}
	tooth, err := BuildToothCentered(inv, g, opts.Centering)
	if err != nil {
		return Gear{}, err
	}
	profile, err := AssembleProfile(tooth, g.Teeth)
	if err != nil {
		return Gear{}, err
	}
	return Gear{Geometry: g, Involute: inv, Tooth: tooth, Profile: profile}, nil
}
