package sphereflake

import "github.com/cwbudde/sphereflake/internal/vec3"

// Sphere is one node of the fractal: its centre and the outward direction
// from its parent, which also doubles as the axis children rotate around
// (spec.md §3).
type Sphere struct {
	Center    vec3.V3
	Direction vec3.V3
}

// rootSphere is the depth-0 sphere sitting at the origin (spec.md §4.2).
func rootSphere() Sphere {
	return Sphere{Center: vec3.New(0, 0, 0), Direction: vec3.New(0, 1, 0)}
}

// childSphere computes child i of current at recursion depth (current sits
// at depth, the child at depth+1), given the grandparent direction parDir
// needed to build an orthonormal basis around current's own direction.
func childSphere(current Sphere, parDir vec3.V3, i, depth int) Sphere {
	perp1 := current.Direction.Cross(parDir).Normalize()
	perp2 := current.Direction.Cross(perp1).Normalize()

	rot := perp1.Scale(children.sinPolar[i] * children.cosAz[i]).
		Add(perp2.Scale(children.sinPolar[i] * children.sinAz[i]))

	newDir := rot.Add(current.Direction.Scale(children.cosPolar[i]))

	radDist := Radius(depth) + Radius(depth+1)

	return Sphere{
		Direction: newDir.Normalize(),
		Center:    newDir.Scale(radDist).Add(current.Center),
	}
}
