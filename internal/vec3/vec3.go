// Package vec3 provides the scalar 3-component float32 vector used both on
// its own (ray origins, child sphere centers) and as the building block the
// internal/simd package broadcasts into lane-parallel registers.
package vec3

import "math"

// V3 is a 3-component float32 vector. Value semantics throughout: methods
// take and return V3 by value, never by pointer.
type V3 struct {
	X, Y, Z float32
}

// New is a convenience constructor.
func New(x, y, z float32) V3 {
	return V3{X: x, Y: y, Z: z}
}

// Broadcast returns a vector with all three components set to k.
func Broadcast(k float32) V3 {
	return V3{X: k, Y: k, Z: k}
}

func (a V3) Add(b V3) V3 {
	return V3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func (a V3) Sub(b V3) V3 {
	return V3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Mul is component-wise multiplication.
func (a V3) Mul(b V3) V3 {
	return V3{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// Scale multiplies every component by a scalar.
func (a V3) Scale(k float32) V3 {
	return V3{a.X * k, a.Y * k, a.Z * k}
}

func (a V3) Dot(b V3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func (a V3) Cross(b V3) V3 {
	return V3{
		a.Y*b.Z - a.Z*b.Y,
		-(a.X*b.Z - a.Z*b.X),
		a.X*b.Y - a.Y*b.X,
	}
}

func (a V3) Len() float32 {
	return float32(math.Sqrt(float64(a.X*a.X + a.Y*a.Y + a.Z*a.Z)))
}

// Normalize returns a unit vector in the same direction. A zero-length
// vector is returned unchanged (no divide-by-zero, no fail).
func (a V3) Normalize() V3 {
	length := a.Len()
	if length == 0 {
		return a
	}
	return a.Scale(1 / length)
}
