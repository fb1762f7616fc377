package sphereflake

import (
	"github.com/cwbudde/sphereflake/internal/simd"
	"github.com/cwbudde/sphereflake/internal/vec3"
)

// Intersect traces ray against the whole sphereflake and records the
// nearest accepted hit into hit (spec.md §4.2). hit should come from
// NewHitRecord (or already carry results from a previous Intersect call
// the caller wants to extend).
func Intersect(ray Ray, hit *HitRecord) {
	// parDir seeds the first orthonormal basis; it only needs to be
	// non-parallel to the root sphere's (0,1,0) direction.
	parDir := vec3.New(0, 0, 1)
	intersectRecurs(0, ray, rootSphere(), parDir, hit)
}

func intersectRecurs(depth int, ray Ray, current Sphere, parDir vec3.V3, hit *HitRecord) {
	if depth >= MaxDepth {
		return
	}

	if !sphereIntersect(depth, true, ray, current.Center, hit).Any() {
		return
	}
	sphereIntersect(depth, false, ray, current.Center, hit)

	childRadius := Radius(depth + 1)
	rayOrigin := ray.Origin.Extract(0)

	for i := 0; i < NumChildren; i++ {
		child := childSphere(current, parDir, i, depth)

		dist := rayOrigin.Sub(child.Center).Len()
		projectedSize := PixelAtDistance * childRadius / dist
		if projectedSize < 1 || dist < childRadius {
			continue
		}

		intersectRecurs(depth+1, ray, child, current.Direction, hit)
	}
}

// sphereIntersect tests ray against the sphere at depth centred at center.
// testOnly inflates the radius by 2x (4x area) for the cheap bounding pass
// that gates descent into children without ever writing to hit; the "self"
// pass (testOnly=false) uses the true radius and folds a successful hit
// into hit via simd.M.Select/SelectV, the sole mutation path (spec.md
// §4.1, §4.2).
func sphereIntersect(depth int, testOnly bool, ray Ray, center vec3.V3, hit *HitRecord) simd.M {
	radius := Radius(depth)
	mult := float32(1.0)
	if testOnly {
		mult = 4.0
	}
	radiusSqr := simd.NewF(radius * radius * mult)

	centerV := simd.NewV(center)
	delta := centerV.Sub(ray.Origin)
	ddp := ray.Direction.Dot(delta)
	remedy := delta.Sub(ray.Direction.ScaleF(ddp))
	discrim := radiusSqr.Sub(remedy.Dot(remedy))

	mask := discrim.GE(simd.NewF(0))

	if testOnly || !mask.Any() {
		return mask
	}

	sqrtVal := discrim.Sqrt()
	tNear := ddp.Sub(sqrtVal)
	tFar := ddp.Add(sqrtVal)

	// Prefer the near root (the first surface the ray reaches); fall back
	// to the far root for a lane where the near one lies outside
	// [min, max] (e.g. the ray origin is already inside the sphere).
	nearValid := tNear.InRange(hit.Min, hit.Max)
	candidate := nearValid.Select(tNear, tFar)

	inRange := candidate.InRange(hit.Min, hit.Max)

	hit.Max = inRange.Select(candidate, hit.Max)
	hit.Result = inRange.Select(candidate, hit.Result)
	hit.SphereCenter = inRange.SelectV(centerV, hit.SphereCenter)
	hit.Radius = inRange.Select(radiusSqr, hit.Radius)
	hit.Level = inRange.Select(simd.NewF(float32(depth)), hit.Level)

	return mask
}
