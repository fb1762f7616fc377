package sphereflake

import (
	"math"

	"github.com/cwbudde/sphereflake/internal/simd"
	"github.com/cwbudde/sphereflake/internal/vec3"
)

// DefaultMin is the lower bound on accepted hit distances (spec.md §3); the
// upper bound starts at math.MaxFloat32 (see NewHitRecord). Shade also uses
// DefaultMin as its miss threshold: a Result below it is a "no hit yet" lane.
const DefaultMin = -0.99

// HitRecord accumulates the closest in-range intersection across the whole
// recursive descent (spec.md §3, invariants I1-I4). Every lane is updated
// independently and only through simd.M.Select/SelectV, never by direct
// assignment, so a miss in one lane never corrupts another.
type HitRecord struct {
	SphereCenter simd.V
	Result       simd.F
	Min          simd.F
	Max          simd.F
	Radius       simd.F
	Level        simd.F
}

// NewHitRecord returns a HitRecord with no accepted hits: Result and Level
// at -1, Min at DefaultMin, Max at the largest representable float32.
func NewHitRecord() HitRecord {
	return HitRecord{
		Result: simd.NewF(-1),
		Min:    simd.NewF(DefaultMin),
		Max:    simd.NewF(math.MaxFloat32),
		Radius: simd.NewF(0),
		Level:  simd.NewF(-1),
	}
}

// Shade resolves lane index's colour from the ray that produced it and this
// hit record (spec.md §4.4): sky colour on a miss, otherwise a depth-hashed
// colour divided by (StartingRadius + hit point's y).
func (h HitRecord) Shade(ray Ray, lane int) vec3.V3 {
	result := h.Result.Extract(lane)
	if result < DefaultMin {
		return SkyColor
	}

	level := h.Level.Extract(lane)
	dir := ray.Direction.Extract(lane)
	origin := ray.Origin.Extract(lane)

	col := vec3.New(
		float32(math.Sin(float64(level)+0)),
		float32(math.Sin(float64(level)+1)),
		float32(math.Sin(float64(level)+2)),
	).Mul(HashConst)

	point := origin.Add(dir.Scale(result))
	div := StartingRadius + point.Y

	return vec3.New(col.X/div, col.Y/div, col.Z/div)
}
