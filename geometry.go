package spur

import (
	"fmt"
	"math"
)

// DefaultPressureAngle is the standard pressure angle in degrees.
const DefaultPressureAngle = 20.0

const (
	addendumCoeff = 1.0
	dedendumCoeff = 1.25
)

// Spec holds the parameters that define a spur gear.
type Spec struct {
	// Module is the tooth size. Pitch diameter is Teeth*Module.
	Module float64
	// Teeth is the number of teeth, at least 3.
	Teeth int
	// PressureAngle is the pressure angle in degrees in (0, 90).
	PressureAngle float64
}

// NewSpec returns a Spec with the standard pressure angle.
func NewSpec(module float64, teeth int) Spec {
	return Spec{Module: module, Teeth: teeth, PressureAngle: DefaultPressureAngle}
}

// Validate returns an error wrapping ErrInvalidSpec if the spec lies
// outside the domain for which a gear outline can be derived.
func (s Spec) Validate() error {
	switch {
	case s.Teeth < 3:
		return fmt.Errorf("%w: teeth=%d < 3", ErrInvalidSpec, s.Teeth)
	case math.IsNaN(s.Module) || math.IsInf(s.Module, 0) || s.Module <= 0:
		return fmt.Errorf("%w: module=%g must be positive and finite", ErrInvalidSpec, s.Module)
	case math.IsNaN(s.PressureAngle) || s.PressureAngle <= 0 || s.PressureAngle >= 90:
		return fmt.Errorf("%w: pressure angle=%g° not in (0°, 90°)", ErrInvalidSpec, s.PressureAngle)
	}
	return nil
}

// Geometry holds the constants derived from a Spec. Lengths share the unit of Module.
type Geometry struct {
	Spec
	PitchDiameter  float64
	DiametralPitch float64 // teeth per unit of pitch diameter
	Addendum       float64 // radial extent of a tooth outside the pitch circle
	Dedendum       float64 // radial extent of a tooth inside the pitch circle
	BaseRadius     float64 // radius of the circle the involute unwinds from
	OuterRadius    float64 // tip radius
	RootRadius     float64 // valley radius
}

// Derive computes the geometry of the gear described by s.
func Derive(s Spec) (Geometry, error) {
	if err := s.Validate(); err != nil {
		return Geometry{}, err
	}
	g := Geometry{Spec: s}
	g.PitchDiameter = float64(s.Teeth) * s.Module
	g.DiametralPitch = float64(s.Teeth) / g.PitchDiameter
	g.Addendum = addendumCoeff / g.DiametralPitch
	g.Dedendum = dedendumCoeff / g.DiametralPitch
	g.BaseRadius = g.PitchDiameter * math.Cos(float64(Degrees(s.PressureAngle))) / 2
	g.OuterRadius = g.PitchDiameter/2 + g.Addendum
	g.RootRadius = g.PitchDiameter/2 - g.Dedendum
	return g, nil
}

// PitchRadius returns half the pitch diameter.
func (g Geometry) PitchRadius() float64 { return g.PitchDiameter / 2 }

// HalfPitchAngle returns a quarter of the angular pitch, 2π/(4*teeth).
// A tooth spans two half pitch angles and so does the valley following it.
func (g Geometry) HalfPitchAngle() Angle {
	return Angle(tau / float64(g.Teeth*4))
}

// RootBelowBase reports whether the root circle lies within the base circle,
// in which case the flank closes to the root with a radial segment below
// the base circle. At the standard pressure angle this holds for fewer than 42 teeth.
// When it does not hold the radial segment of a flank started with StartOnBase
// dips from the root circle down to the base circle, leaving a notch at the
// foot of every flank. StartOnRoot avoids it.
func (g Geometry) RootBelowBase() bool {
	return g.RootRadius < g.BaseRadius
}

func (g Geometry) String() string {
	return fmt.Sprintf("m=%g z=%d α=%g° pitch=%g base=%g outer=%g root=%g",
		g.Module, g.Teeth, g.PressureAngle, g.PitchDiameter, g.BaseRadius, g.OuterRadius, g.RootRadius)
}
