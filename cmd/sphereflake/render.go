package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cwbudde/sphereflake/internal/debugserver"
	"github.com/cwbudde/sphereflake/internal/engine"
	"github.com/cwbudde/sphereflake/internal/sphereflake"
	"github.com/cwbudde/sphereflake/internal/vec3"
	"github.com/spf13/cobra"
)

var (
	outPath     string
	sampleTime  time.Duration
	httpAddr    string
	cameraX     float64
	cameraY     float64
	cameraZ     float64
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Sample the sphereflake headlessly for a fixed duration and write a PNG",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVar(&outPath, "out", "out.png", "Output PNG path")
	renderCmd.Flags().DurationVar(&sampleTime, "sample-time", 3*time.Second, "How long to accumulate samples before snapshotting")
	renderCmd.Flags().StringVar(&httpAddr, "http", "", "Optional debug server address (e.g. :6060); disabled if empty")
	renderCmd.Flags().Float64Var(&cameraX, "camera-x", 0, "Initial camera x")
	renderCmd.Flags().Float64Var(&cameraY, "camera-y", 0, "Initial camera y")
	renderCmd.Flags().Float64Var(&cameraZ, "camera-z", 5, "Initial camera z")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	camera := vec3.New(float32(cameraX), float32(cameraY), float32(cameraZ))
	eng := engine.NewEngine(camera)
	defer eng.Shutdown()

	var dbg *debugserver.Server
	if httpAddr != "" {
		dbg = debugserver.NewServer(httpAddr, eng)
		go func() {
			if err := dbg.Start(); err != nil {
				slog.Error("debug server stopped", "error", err)
			}
		}()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	slog.Info("sampling", "duration", sampleTime)
	select {
	case <-time.After(sampleTime):
	case <-ctx.Done():
		slog.Info("interrupted, writing partial result")
	}

	if dbg != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := dbg.Shutdown(shutdownCtx); err != nil {
			slog.Warn("debug server shutdown error", "error", err)
		}
	}

	return writePNG(outPath, eng.Buffer())
}

func writePNG(path string, buf []vec3.V3) error {
	img := image.NewNRGBA(image.Rect(0, 0, sphereflake.ScreenWidth, sphereflake.ScreenHeight))
	for y := 0; y < sphereflake.ScreenHeight; y++ {
		for x := 0; x < sphereflake.ScreenWidth; x++ {
			c := buf[y*sphereflake.ScreenWidth+x]
			img.Set(x, y, color.NRGBA{
				R: clampByte(c.X),
				G: clampByte(c.Y),
				B: clampByte(c.Z),
				A: 255,
			})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}

	slog.Info("wrote render", "path", path)
	return nil
}

func clampByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}
