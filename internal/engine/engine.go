// Package engine owns the shared frame buffer, the live camera, and the
// pool of render workers that keep sampling it forever (spec.md §4, §6).
package engine

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"runtime"
	"sync"

	"github.com/cwbudde/sphereflake/internal/simd"
	"github.com/cwbudde/sphereflake/internal/sphereflake"
	"github.com/cwbudde/sphereflake/internal/vec3"
)

// Engine is the presenter contract from spec.md §6: NewEngine spawns
// workers, Update repositions the camera for subsequent samples, Buffer
// borrows the live colour grid for one upload, Shutdown stops every worker.
type Engine struct {
	camera *camera
	buffer *frameBuffer

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewEngine constructs the frame buffer at spec.md §6's fixed resolution,
// seeds the camera at cameraInitial, and spawns runtime.NumCPU()-1 (floor
// 1) render workers — one core is reserved for the presenter's GL/upload
// work, mirroring the reference's "leave one thread for the gl calls"
// (spec.md §4, original_source/screenrenderer.cpp).
func NewEngine(cameraInitial vec3.V3) *Engine {
	ctx, cancel := context.WithCancel(context.Background())

	e := &Engine{
		camera: newCamera(cameraInitial),
		buffer: newFrameBuffer(sphereflake.ScreenWidth, sphereflake.ScreenHeight),
		cancel: cancel,
	}

	workerCount := runtime.NumCPU() - 1
	if workerCount < 1 {
		workerCount = 1
	}

	slog.Info("starting render workers", "count", workerCount, "lanes", simd.LANES)

	for i := 0; i < workerCount; i++ {
		e.wg.Add(1)
		go e.renderLoop(ctx, uint64(i))
	}

	return e
}

// Update sets the camera snapshot point the next samples will read.
func (e *Engine) Update(pos vec3.V3) {
	e.camera.Store(pos)
}

// Buffer borrows the live buffer for one upload; the slice remains valid
// until the next call to Buffer, since workers keep writing into the same
// backing array (spec.md §6's "valid until the next call").
func (e *Engine) Buffer() []vec3.V3 {
	return e.buffer.pixels
}

// Shutdown signals every worker to stop and waits for them to exit.
func (e *Engine) Shutdown() {
	e.cancel()
	e.wg.Wait()
}

// renderLoop is one worker's infinite sampling loop (spec.md §4,
// original_source/screenrenderer.cpp's RenderBuffer): pick a random
// LANES-aligned pixel packet, cast rays from the current camera, intersect
// the sphereflake, shade every lane, and write the colours in. Cancellation
// is checked once per iteration, never mid-packet.
func (e *Engine) renderLoop(ctx context.Context, seed uint64) {
	defer e.wg.Done()

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	packetsPerRow := sphereflake.ScreenWidth / simd.LANES
	colors := make([]vec3.V3, simd.LANES)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		x := rng.IntN(packetsPerRow) * simd.LANES
		y := rng.IntN(sphereflake.ScreenHeight)

		origin := e.camera.Load()
		ray := sphereflake.CastRays(origin, x, y)

		hit := sphereflake.NewHitRecord()
		sphereflake.Intersect(ray, &hit)

		for k := 0; k < simd.LANES; k++ {
			colors[k] = hit.Shade(ray, k)
		}
		e.buffer.set(x, y, colors)
	}
}
