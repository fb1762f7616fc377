// Package debugserver exposes a live PNG snapshot of the render engine's
// frame buffer over HTTP — a much smaller stand-in for the teacher's job
// dashboard, adapted to a single long-running render instead of a queue of
// optimization jobs (spec.md §6.3).
package debugserver

import (
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"net/http"
	"time"

	"github.com/cwbudde/sphereflake/internal/engine"
	"github.com/cwbudde/sphereflake/internal/simd"
	"github.com/cwbudde/sphereflake/internal/sphereflake"
)

// Server serves read-only debug endpoints over the live Engine.
type Server struct {
	eng    *engine.Engine
	addr   string
	server *http.Server
}

// NewServer constructs a debug server bound to addr (e.g. ":6060") that
// reads from eng on every request; it does not own eng's lifecycle.
func NewServer(addr string, eng *engine.Engine) *Server {
	return &Server{eng: eng, addr: addr}
}

// Start registers routes and blocks serving until Shutdown is called, the
// same ListenAndServe-after-registration shape as the teacher's
// internal/server/server.go Start.
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/snapshot.png", s.handleSnapshot)
	mux.HandleFunc("/stats", s.handleStats)

	handler := s.loggingMiddleware(s.corsMiddleware(mux))

	s.server = &http.Server{
		Addr:    s.addr,
		Handler: handler,
	}

	slog.Info("starting debug server", "addr", s.addr)
	err := s.server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("shutting down debug server")
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	buf := s.eng.Buffer()
	img := image.NewNRGBA(image.Rect(0, 0, sphereflake.ScreenWidth, sphereflake.ScreenHeight))

	for y := 0; y < sphereflake.ScreenHeight; y++ {
		for x := 0; x < sphereflake.ScreenWidth; x++ {
			c := buf[y*sphereflake.ScreenWidth+x]
			img.Set(x, y, color.NRGBA{
				R: toByte(c.X),
				G: toByte(c.Y),
				B: toByte(c.Z),
				A: 255,
			})
		}
	}

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		slog.Error("failed to encode snapshot", "error", err)
	}
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats := map[string]any{
		"width":  sphereflake.ScreenWidth,
		"height": sphereflake.ScreenHeight,
		"lanes":  simd.LANES,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		slog.Error("failed to encode stats", "error", err)
	}
}

func toByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Debug("HTTP request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
