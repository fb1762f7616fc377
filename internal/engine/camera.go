package engine

import (
	"sync/atomic"

	"github.com/cwbudde/sphereflake/internal/vec3"
)

// camera wraps the shared camera origin in an atomic.Value. Readers and the
// single writer (Engine.Update) never block each other. Each worker loads
// the camera once per packet, so all rays of a packet share one origin, but
// packets sampled before and after an Update land in the same frame, giving
// at most a one-frame visual tear across packet boundaries. That tear is an
// accepted, deliberately unsynchronized artefact of the render loop (the
// frame buffer itself tears the same way, see framebuffer.go) — atomic.Value
// is used here only so `go test -race` has nothing to report.
type camera struct {
	v atomic.Value
}

func newCamera(initial vec3.V3) *camera {
	c := &camera{}
	c.v.Store(initial)
	return c
}

func (c *camera) Load() vec3.V3 {
	return c.v.Load().(vec3.V3)
}

func (c *camera) Store(pos vec3.V3) {
	c.v.Store(pos)
}
