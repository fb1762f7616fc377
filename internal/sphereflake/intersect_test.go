package sphereflake

import (
	"math"
	"testing"

	"github.com/cwbudde/sphereflake/internal/simd"
	"github.com/cwbudde/sphereflake/internal/vec3"
)

func almostEqual(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

// rayFromOriginDir builds a packet where every lane carries the same
// scalar origin/direction, letting boundary-scenario assertions read lane
// 0 without caring about the build's LANES width.
func rayFromOriginDir(origin, dir vec3.V3) Ray {
	return Ray{Origin: simd.NewV(origin), Direction: simd.NewV(dir)}
}

// TestBoundaryScenario1 hits the root sphere head-on from outside.
func TestBoundaryScenario1(t *testing.T) {
	ray := rayFromOriginDir(vec3.New(0, 0, 5), vec3.New(0, 0, -1))
	hit := NewHitRecord()
	Intersect(ray, &hit)

	result := hit.Result.Extract(0)
	level := hit.Level.Extract(0)

	if !almostEqual(result, 4.0, 1e-3) {
		t.Errorf("result = %v, want ≈ 4.0", result)
	}
	if level != 0 {
		t.Errorf("level = %v, want 0", level)
	}
}

// TestBoundaryScenario2 fires parallel to the sphere's surface: a miss.
func TestBoundaryScenario2(t *testing.T) {
	ray := rayFromOriginDir(vec3.New(0, 0, 5), vec3.New(1, 0, 0))
	hit := NewHitRecord()
	Intersect(ray, &hit)

	if got := hit.Result.Extract(0); got != -1 {
		t.Errorf("result = %v, want -1 (miss)", got)
	}
	if got := hit.Level.Extract(0); got != -1 {
		t.Errorf("level = %v, want -1 (miss)", got)
	}
}

// TestBoundaryScenario3 hits the near side of the root sphere from a camera
// just outside it, with the hit window set to min = 0, max = +Inf instead of
// NewHitRecord's -0.99/MaxFloat32 default; the expected hit is at t≈0.5.
func TestBoundaryScenario3(t *testing.T) {
	ray := rayFromOriginDir(vec3.New(0, 0, 1.5), vec3.New(0, 0, -1))
	hit := HitRecord{
		Result: simd.NewF(-1),
		Min:    simd.NewF(0),
		Max:    simd.NewF(float32(math.Inf(1))),
		Radius: simd.NewF(0),
		Level:  simd.NewF(-1),
	}
	Intersect(ray, &hit)

	result := hit.Result.Extract(0)
	if !almostEqual(result, 0.5, 1e-3) {
		t.Errorf("result = %v, want ≈ 0.5", result)
	}
}

// TestBoundaryScenario4 checks ring-1 child 0's centre distance from the
// root sphere's centre (spec.md §8, scenario 4).
func TestBoundaryScenario4(t *testing.T) {
	root := rootSphere()
	parDir := vec3.New(0, 0, 1)
	child := childSphere(root, parDir, 0, 0)

	want := Radius(0) + Radius(1)
	got := child.Center.Len()
	if !almostEqual(got, want, 1e-6) {
		t.Errorf("|child.center| = %v, want %v", got, want)
	}
}

// TestBoundaryScenario5 checks that a camera far enough away causes the
// pixel-size cutoff to prune the fractal within the first couple of
// levels: the recorded hit level should be shallow.
func TestBoundaryScenario5(t *testing.T) {
	ray := rayFromOriginDir(vec3.New(0, 0, 5000), vec3.New(0, 0, -1))
	hit := NewHitRecord()
	Intersect(ray, &hit)

	level := hit.Level.Extract(0)
	if level > 1 {
		t.Errorf("level = %v, want <= 1 (deep children should be culled)", level)
	}
}

// TestBoundaryScenario6 checks that a full-width packet agrees, lane by
// lane, with LANES independent scalar traversals built the same way.
func TestBoundaryScenario6(t *testing.T) {
	camera := vec3.New(0, 0, 5)
	packet := CastRays(camera, 0, 300)

	hit := NewHitRecord()
	Intersect(packet, &hit)

	for lane := 0; lane < simd.LANES; lane++ {
		scalarRay := rayFromOriginDir(camera, packet.Direction.Extract(lane))
		scalarHit := NewHitRecord()
		Intersect(scalarRay, &scalarHit)

		got := hit.Result.Extract(lane)
		want := scalarHit.Result.Extract(0)
		if !almostEqual(got, want, 1e-3) {
			t.Errorf("lane %d: packet result = %v, scalar result = %v", lane, got, want)
		}
	}
}

// TestInvariantP1 checks every lane of a traversal is either an explicit
// miss (-1/-1) or a result within (min, max_initial].
func TestInvariantP1(t *testing.T) {
	camera := vec3.New(0, 0, 5)
	packet := CastRays(camera, 0, 300)
	hit := NewHitRecord()
	maxInitial := hit.Max.Extract(0)
	minInitial := hit.Min.Extract(0)
	Intersect(packet, &hit)

	for lane := 0; lane < simd.LANES; lane++ {
		result := hit.Result.Extract(lane)
		level := hit.Level.Extract(lane)
		if result == -1 && level == -1 {
			continue
		}
		if !(result > minInitial && result <= maxInitial) {
			t.Errorf("lane %d: result %v not in (%v, %v]", lane, result, minInitial, maxInitial)
		}
	}
}

// TestInvariantP2 checks that rays aimed away from an outside camera never
// produce a NaN or an out-of-range result.
func TestInvariantP2(t *testing.T) {
	camera := vec3.New(0, 0, 5)
	packet := CastRays(camera, 400, 300)
	hit := NewHitRecord()
	minInitial := hit.Min.Extract(0)
	Intersect(packet, &hit)

	for lane := 0; lane < simd.LANES; lane++ {
		result := hit.Result.Extract(lane)
		if math.IsNaN(float64(result)) {
			t.Errorf("lane %d: result is NaN", lane)
		}
		if result != -1 && result < minInitial {
			t.Errorf("lane %d: result %v < min %v", lane, result, minInitial)
		}
	}
}

// TestInvariantP6 checks the radius table shrinks by exactly 1/3 per depth
// and terminates where the square underflows to 0 in float32.
func TestInvariantP6(t *testing.T) {
	for d := 0; d < MaxDepth; d++ {
		got := Radius(d + 1)
		want := Radius(d) * SphereRatio
		if got != want {
			t.Errorf("Radius(%d) = %v, want Radius(%d)*ratio = %v", d+1, got, d, want)
		}
	}

	last := Radius(MaxDepth)
	if last*last != 0 {
		t.Errorf("Radius(MaxDepth)^2 = %v, want 0", last*last)
	}
}

func TestShadeSkyColorOnMiss(t *testing.T) {
	ray := rayFromOriginDir(vec3.New(0, 0, 5), vec3.New(1, 0, 0))
	hit := NewHitRecord()
	Intersect(ray, &hit)

	got := hit.Shade(ray, 0)
	if got != SkyColor {
		t.Errorf("Shade on miss = %v, want sky colour %v", got, SkyColor)
	}
}

func TestShadeHitProducesFiniteColor(t *testing.T) {
	ray := rayFromOriginDir(vec3.New(0, 0, 5), vec3.New(0, 0, -1))
	hit := NewHitRecord()
	Intersect(ray, &hit)

	col := hit.Shade(ray, 0)
	for _, c := range []float32{col.X, col.Y, col.Z} {
		if math.IsNaN(float64(c)) || math.IsInf(float64(c), 0) {
			t.Errorf("Shade on hit produced non-finite component: %v", col)
		}
	}
}
