package spur

import (
	"math"

	"github.com/soypat/spur/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	pi        = math.Pi
	tau       = 2 * pi
	tolerance = 1e-9
)

// Angle is an angle in radians swept about the origin.
type Angle float64

// InvoluteParameter is the unwinding parameter t of the generating line of an
// involute, equal to the unwound arc length divided by the base radius.
// It is not an angle about the origin and must not be used as one.
type InvoluteParameter float64

// Degrees returns the Angle for the given amount of degrees.
func Degrees(degrees float64) Angle {
	return Angle((pi / 180) * degrees)
}

// Degrees returns the angle converted to degrees.
func (a Angle) Degrees() float64 {
	return (180 / pi) * float64(a)
}

// unwindTo returns the involute parameter at which the involute of a
// base circle of radius rb reaches radius r. r must be >= rb.
func unwindTo(r, rb float64) InvoluteParameter {
	k := r / rb
	return InvoluteParameter(math.Sqrt(k*k - 1))
}

// Point returns the point of the involute of a base circle of radius rb
// at parameter t. t=0 lies on the base circle at (rb, 0).
func (t InvoluteParameter) Point(rb float64) r2.Vec {
	s, c := math.Sincos(float64(t))
	tf := float64(t)
	return r2.Vec{
		X: rb * (c + tf*s),
		Y: rb * (s - tf*c),
	}
}

// Radius returns the distance from the origin of the involute point at t
// for a base circle of radius rb.
func (t InvoluteParameter) Radius(rb float64) float64 {
	return rb * math.Hypot(1, float64(t))
}

// PolarAngle returns the polar angle of the involute point at t, the
// involute function inv(α) = tan α - α where tan α = t.
func (t InvoluteParameter) PolarAngle() Angle {
	return Angle(float64(t) - math.Atan(float64(t)))
}

// Rotate applies the rotation matrix
//
//	| cos θ  -sin θ |
//	| sin θ   cos θ |
//
// to every point, each point taken as a row vector multiplied on the right:
//
//	x' =  x·cos θ + y·sin θ
//	y' = -x·sin θ + y·cos θ
//
// A positive theta therefore turns points clockwise. The input is not modified.
func Rotate(theta Angle, points []r2.Vec) []r2.Vec {
	return d2.Rotation(float64(theta)).ApplySet(points)
}

// MirrorX returns a copy of points reflected across the x-axis.
func MirrorX(points []r2.Vec) []r2.Vec {
	return d2.Set(points).MirrorX()
}
