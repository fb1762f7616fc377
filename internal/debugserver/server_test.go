package debugserver

import (
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cwbudde/sphereflake/internal/engine"
	"github.com/cwbudde/sphereflake/internal/vec3"
)

func newTestServer(t *testing.T) (*Server, *engine.Engine) {
	t.Helper()
	eng := engine.NewEngine(vec3.New(0, 0, 5))
	t.Cleanup(eng.Shutdown)
	return NewServer(":0", eng), eng
}

func TestHandleSnapshotReturnsValidPNG(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/snapshot.png", nil)
	rec := httptest.NewRecorder()

	s.handleSnapshot(rec, req)

	if rec.Code != http.StatusOK && rec.Code != 0 {
		t.Fatalf("status = %d, want 200 (or unset)", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("Content-Type = %q, want image/png", ct)
	}

	if _, err := png.Decode(rec.Body); err != nil {
		t.Fatalf("response body is not a valid PNG: %v", err)
	}
}

func TestHandleStatsReturnsJSON(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	rec := httptest.NewRecorder()

	s.handleStats(rec, req)

	var stats map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&stats); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if _, ok := stats["width"]; !ok {
		t.Error("stats missing \"width\"")
	}
	if _, ok := stats["lanes"]; !ok {
		t.Error("stats missing \"lanes\"")
	}
}

func TestToByteClamps(t *testing.T) {
	cases := []struct {
		in   float32
		want uint8
	}{
		{-1, 0},
		{0, 0},
		{0.5, 127},
		{1, 255},
		{2, 255},
	}
	for _, c := range cases {
		if got := toByte(c.in); got != c.want {
			t.Errorf("toByte(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}
