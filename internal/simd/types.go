// Package simd provides the lane-width-parametric float/vec3/mask
// primitives used by the sphereflake intersector (spec.md §3, §4.1). The
// lane count LANES is fixed by a build-tag-selected file in this package
// (backend_scalar.go, backend_sse.go, backend_avx.go, backend_avx512.go);
// everything below is written once, generic over LANES, rather than
// duplicated per backend — the Go translation of the reference's
// "hoist radii/width into a table, use one function" design note (spec.md
// §9) applied to the SIMD layer itself.
package simd

import "github.com/cwbudde/sphereflake/internal/vec3"

// F is LANES parallel float32 lanes.
type F [LANES]float32

// V is LANES parallel vec3.V3 lanes stored as structure-of-arrays: three F
// registers rather than LANES separate (x,y,z) triples.
type V struct {
	X, Y, Z F
}

// M is LANES parallel boolean lanes, the result of any comparison and the
// condition operand of Select.
type M [LANES]bool

// lane-extraction convention: the reference implementation's hardware
// registers happen to store lane 0 last (_mm256_set_ps loads its first
// scalar argument into the highest lane). Extract/construct-from-array both
// apply the same reversal here so this package's external behaviour (lane i
// is "the i-th ray, left to right") matches the reference bit-for-bit,
// rather than being an arbitrary choice that happens to be self-consistent.
func reverseIndex(i int) int {
	return LANES - i - 1
}

// NewF broadcasts a scalar into every lane.
func NewF(scalar float32) F {
	var f F
	for i := range f {
		f[i] = scalar
	}
	return f
}

// NewFFromArray constructs F from LANES independent scalars, lane i of the
// result corresponding to vals[i].
func NewFFromArray(vals [LANES]float32) F {
	var f F
	for i := 0; i < LANES; i++ {
		f[reverseIndex(i)] = vals[i]
	}
	return f
}

// Extract reads lane i (0-based, left to right from the caller's
// viewpoint). Out-of-range i is a programmer error; callers are expected to
// stay within [0, LANES). There is no explicit check: an out-of-range i
// panics through Go's array bounds check.
func (f F) Extract(i int) float32 {
	return f[reverseIndex(i)]
}

func (a F) Add(b F) F {
	var r F
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return r
}

func (a F) Sub(b F) F {
	var r F
	for i := range r {
		r[i] = a[i] - b[i]
	}
	return r
}

func (a F) Mul(b F) F {
	var r F
	for i := range r {
		r[i] = a[i] * b[i]
	}
	return r
}

func (a F) Div(b F) F {
	var r F
	for i := range r {
		r[i] = a[i] / b[i]
	}
	return r
}

// GE is the per-lane "greater than or equal" comparison.
func (a F) GE(b F) M {
	var m M
	for i := range m {
		m[i] = a[i] >= b[i]
	}
	return m
}

// LT is the per-lane "less than" comparison.
func (a F) LT(b F) M {
	var m M
	for i := range m {
		m[i] = a[i] < b[i]
	}
	return m
}

// InRange reports, per lane, whether lo < a < hi (strict on both ends,
// matching the reference's IsInRange).
func (a F) InRange(lo, hi F) M {
	var m M
	for i := range m {
		m[i] = a[i] > lo[i] && a[i] < hi[i]
	}
	return m
}

// Sqrt is the per-lane square root.
func (a F) Sqrt() F {
	var r F
	for i := range r {
		r[i] = sqrtf32(a[i])
	}
	return r
}

// Select returns, per lane, a where mask is true and b where it is false —
// the sole conditional-update primitive used by the intersector (spec.md
// §4.1: "all conditional updates... expressed as select").
func (m M) Select(a, b F) F {
	var r F
	for i := range r {
		if m[i] {
			r[i] = a[i]
		} else {
			r[i] = b[i]
		}
	}
	return r
}

// Any reports whether at least one lane is set — the bounding-test short
// circuit (spec.md §4.1/§4.2).
func (m M) Any() bool {
	for _, b := range m {
		if b {
			return true
		}
	}
	return false
}

// NewV broadcasts a single vec3.V3 into every lane.
func NewV(v vec3.V3) V {
	return V{X: NewF(v.X), Y: NewF(v.Y), Z: NewF(v.Z)}
}

// NewVFromArray constructs V from LANES independent vec3.V3 values, lane i
// of the result corresponding to vs[i].
func NewVFromArray(vs [LANES]vec3.V3) V {
	var xs, ys, zs [LANES]float32
	for i, p := range vs {
		xs[i] = p.X
		ys[i] = p.Y
		zs[i] = p.Z
	}
	return V{X: NewFFromArray(xs), Y: NewFFromArray(ys), Z: NewFFromArray(zs)}
}

// Extract reads lane i as a scalar vec3.V3.
func (v V) Extract(i int) vec3.V3 {
	return vec3.New(v.X.Extract(i), v.Y.Extract(i), v.Z.Extract(i))
}

func (a V) Add(b V) V {
	return V{X: a.X.Add(b.X), Y: a.Y.Add(b.Y), Z: a.Z.Add(b.Z)}
}

func (a V) Sub(b V) V {
	return V{X: a.X.Sub(b.X), Y: a.Y.Sub(b.Y), Z: a.Z.Sub(b.Z)}
}

// Mul is component-wise (lane-wise) multiplication.
func (a V) Mul(b V) V {
	return V{X: a.X.Mul(b.X), Y: a.Y.Mul(b.Y), Z: a.Z.Mul(b.Z)}
}

// ScaleF multiplies every component by a per-lane scalar (spec.md §3: "* F —
// scalar-lane multiply").
func (a V) ScaleF(k F) V {
	return V{X: a.X.Mul(k), Y: a.Y.Mul(k), Z: a.Z.Mul(k)}
}

// Dot is the per-lane dot product, reducing three F registers to one.
func (a V) Dot(b V) F {
	return a.X.Mul(b.X).Add(a.Y.Mul(b.Y)).Add(a.Z.Mul(b.Z))
}

// SelectV is Select specialised to V (Go has no overloading, so the vec3
// variant gets its own name, mirroring the reference's two
// PickBasedOnCondition overloads).
func (m M) SelectV(a, b V) V {
	return V{X: m.Select(a.X, b.X), Y: m.Select(a.Y, b.Y), Z: m.Select(a.Z, b.Z)}
}
