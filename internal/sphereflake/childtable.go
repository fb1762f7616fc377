package sphereflake

import "math"

// childRotation holds the per-child trigonometric constants precomputed
// once at package init (spec.md §4.2): children 0..5 sit on ring 1 (90°
// polar, 0° azimuth phase, 60° apart), children 6..8 on ring 2 (30° polar,
// 60° azimuth phase, 120° apart).
type childRotation struct {
	sinAz, cosAz       [NumChildren]float32 // named m_rotateSin/m_rotateCos in the reference
	sinPolar, cosPolar [NumChildren]float32 // named m_yAxisRotSines/m_yAxisRotCosines in the reference
}

var children childRotation

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func init() {
	angle1 := degToRad(360.0 / float64(Ring1Count))
	angle2 := degToRad(360.0 / float64(Ring2Count))
	phase1 := degToRad(Ring1AzimuthDeg)
	phase2 := degToRad(Ring2AzimuthDeg)

	for k := 0; k < Ring1Count; k++ {
		children.sinAz[k] = float32(math.Sin(phase1 + angle1*float64(k)))
		children.cosAz[k] = float32(math.Cos(phase1 + angle1*float64(k)))
	}
	for k := 0; k < Ring2Count; k++ {
		children.sinAz[Ring1Count+k] = float32(math.Sin(phase2 + angle2*float64(k)))
		children.cosAz[Ring1Count+k] = float32(math.Cos(phase2 + angle2*float64(k)))
	}

	polar1Sin := float32(math.Sin(degToRad(Ring1PolarDeg)))
	polar1Cos := float32(math.Cos(degToRad(Ring1PolarDeg)))
	polar2Sin := float32(math.Sin(degToRad(Ring2PolarDeg)))
	polar2Cos := float32(math.Cos(degToRad(Ring2PolarDeg)))

	for k := 0; k < Ring1Count; k++ {
		children.sinPolar[k] = polar1Sin
		children.cosPolar[k] = polar1Cos
	}
	for k := 0; k < Ring2Count; k++ {
		children.sinPolar[Ring1Count+k] = polar2Sin
		children.cosPolar[Ring1Count+k] = polar2Cos
	}
}
