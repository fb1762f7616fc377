package vec3

import (
	"math"
	"testing"
)

func almostEqual(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func TestNormalizeUnitLength(t *testing.T) {
	tests := []struct {
		name string
		v    V3
	}{
		{"axis", New(1, 0, 0)},
		{"diagonal", New(1, 2, 3)},
		{"negative", New(-4, 5, -6)},
		{"tiny", New(1e-6, 1e-6, 1e-6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.v.Normalize()
			length := n.Len()
			if math.Abs(float64(length-1)) > 1e-6 {
				t.Errorf("Len() = %v, want ~1", length)
			}
		})
	}
}

func TestNormalizeZeroReturnsItself(t *testing.T) {
	z := V3{}
	n := z.Normalize()
	if n != z {
		t.Errorf("Normalize() of zero vector = %v, want %v", n, z)
	}
}

func TestCrossOrthogonal(t *testing.T) {
	tests := []struct {
		name string
		a, b V3
	}{
		{"axes", New(1, 0, 0), New(0, 1, 0)},
		{"general", New(1, 2, 3), New(4, -5, 6)},
		{"parallel", New(2, 4, 6), New(1, 2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.a.Cross(tt.b)
			if !almostEqual(c.Dot(tt.a), 0, 1e-4) {
				t.Errorf("cross(a,b)·a = %v, want 0", c.Dot(tt.a))
			}
			if !almostEqual(c.Dot(tt.b), 0, 1e-4) {
				t.Errorf("cross(a,b)·b = %v, want 0", c.Dot(tt.b))
			}
		})
	}
}

func TestArithmetic(t *testing.T) {
	a := New(1, 2, 3)
	b := New(4, 5, 6)

	if got := a.Add(b); got != New(5, 7, 9) {
		t.Errorf("Add = %v, want (5,7,9)", got)
	}
	if got := b.Sub(a); got != New(3, 3, 3) {
		t.Errorf("Sub = %v, want (3,3,3)", got)
	}
	if got := a.Mul(b); got != New(4, 10, 18) {
		t.Errorf("Mul = %v, want (4,10,18)", got)
	}
	if got := a.Scale(2); got != New(2, 4, 6) {
		t.Errorf("Scale = %v, want (2,4,6)", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot = %v, want 32", got)
	}
}

func TestBroadcast(t *testing.T) {
	b := Broadcast(7)
	if b.X != 7 || b.Y != 7 || b.Z != 7 {
		t.Errorf("Broadcast(7) = %v, want all 7", b)
	}
}
