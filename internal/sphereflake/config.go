// Package sphereflake implements the recursive sphere-fractal ray
// intersector (spec.md §3, §4.2) on top of internal/simd's lane-parallel
// primitives.
package sphereflake

import "github.com/cwbudde/sphereflake/internal/vec3"

// Screen constants, spec.md §6.
const (
	ScreenWidth  = 800
	ScreenHeight = 600
	TargetFPS    = 60
)

// SinHalfFOV is sin(fov/2) for a ~57.3° full field of view, spec.md §6.
const SinHalfFOV = 0.4794255386

// PixelAtDistance is the constant factor used by the pixel-size cutoff
// (spec.md §4.2 step 3): a child sphere projects to less than one pixel
// when PixelAtDistance * childRadius / distanceToCamera < 1.
const PixelAtDistance = 2.0 * SinHalfFOV * ScreenHeight

// StartingRadius and SphereRatio define the depth radii r_d = StartingRadius
// * SphereRatio^d (spec.md §3).
const (
	StartingRadius = 1.0
	SphereRatio    = 1.0 / 3.0
)

// Ring geometry (spec.md §4.2): ring 1 has 6 spheres at 90° polar angle,
// azimuth phase 0°; ring 2 has 3 spheres at 30° polar angle, azimuth phase
// 60°. Nine children total per sphere.
const (
	Ring1Count = 6
	Ring2Count = 3
	NumChildren = Ring1Count + Ring2Count

	Ring1PolarDeg   = 90.0
	Ring2PolarDeg   = 30.0
	Ring1AzimuthDeg = 0.0
	Ring2AzimuthDeg = 60.0
)

// SkyColor is the background colour emitted for a miss and the frame
// buffer's initial fill (spec.md §3, §4.4).
var SkyColor = vec3.New(0.178, 0.461, 0.853)

// HashConst scales the depth-derived base colour (spec.md §4.4).
var HashConst = vec3.New(3.5353123, 4.1459123, 1.3490423)
