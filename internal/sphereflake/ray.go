package sphereflake

import (
	"github.com/cwbudde/sphereflake/internal/simd"
	"github.com/cwbudde/sphereflake/internal/vec3"
)

// Ray is a packet of LANES rays sharing one origin but independent
// directions (spec.md §4.3).
type Ray struct {
	Origin    simd.V
	Direction simd.V
}

// CastRays builds the ray packet for the aligned pixel block starting at
// (x, y): lane k corresponds to screen pixel (x+k, y). x is expected to be
// a multiple of simd.LANES so a packet never straddles a screen row's end.
func CastRays(origin vec3.V3, x, y int) Ray {
	var dirs [simd.LANES]vec3.V3
	for k := 0; k < simd.LANES; k++ {
		u := float32(x+k) / float32(ScreenWidth)
		v := float32(y) / float32(ScreenHeight)
		v *= float32(ScreenHeight) / float32(ScreenWidth)
		u = (u - 0.5) * 2
		v = (v - 0.5) * 2

		dirs[k] = vec3.New(u, v, -1).Normalize()
	}

	return Ray{
		Origin:    simd.NewV(origin),
		Direction: simd.NewVFromArray(dirs),
	}
}
