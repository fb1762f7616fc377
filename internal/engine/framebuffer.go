package engine

import (
	"github.com/cwbudde/sphereflake/internal/sphereflake"
	"github.com/cwbudde/sphereflake/internal/vec3"
)

// frameBuffer is the shared W*H grid of colours workers sample into and the
// presenter reads from for texture upload. It is a plain unsynchronized
// slice: many goroutines write disjoint-but-occasionally-overlapping
// pixels, one reader uploads a snapshot once per frame. A torn read here —
// half of one packet's old colour, half its new one — is a single-frame,
// sub-pixel visual artefact with no correctness consequence, the same
// trade-off the reference C++ renderer makes with its raw float array
// (spec.md §9, "Lock-free buffer"). Introducing a mutex or per-pixel atomics
// would serialize every worker on every pixel write for no visible benefit.
type frameBuffer struct {
	width, height int
	pixels        []vec3.V3
}

func newFrameBuffer(width, height int) *frameBuffer {
	pixels := make([]vec3.V3, width*height)
	for i := range pixels {
		pixels[i] = sphereflake.SkyColor
	}
	return &frameBuffer{width: width, height: height, pixels: pixels}
}

// set writes len(colors) consecutive colours starting at flat index
// (y*width+x). Callers are responsible for keeping x+len(colors) within one
// row.
func (fb *frameBuffer) set(x, y int, colors []vec3.V3) {
	index := y*fb.width + x
	copy(fb.pixels[index:index+len(colors)], colors)
}
