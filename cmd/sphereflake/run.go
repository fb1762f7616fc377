package main

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/cwbudde/sphereflake/internal/engine"
	"github.com/cwbudde/sphereflake/internal/sphereflake"
	"github.com/cwbudde/sphereflake/internal/vec3"
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/cobra"
)

// cameraStep is the per-keypress movement delta (spec.md §6).
const cameraStep = 0.1

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open an interactive window and render the sphereflake live",
	RunE:  runInteractive,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func init() {
	// GLFW and most GL implementations require all calls to come from the
	// thread that created the context.
	runtime.LockOSThread()
}

func runInteractive(cmd *cobra.Command, args []string) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(sphereflake.ScreenWidth, sphereflake.ScreenHeight, "sphereflake", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("init gl: %w", err)
	}
	slog.Info("window created", "width", sphereflake.ScreenWidth, "height", sphereflake.ScreenHeight)

	program, err := linkProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return fmt.Errorf("compile shaders: %w", err)
	}
	gl.UseProgram(program)

	vao, texture := initQuad()

	camera := vec3.New(0, 0, 5)
	eng := engine.NewEngine(camera)
	defer eng.Shutdown()

	delay := time.Second / sphereflake.TargetFPS

	for !window.ShouldClose() {
		camera = handleInput(window, camera)
		eng.Update(camera)

		gl.Viewport(0, 0, sphereflake.ScreenWidth, sphereflake.ScreenHeight)
		gl.ClearColor(1, 1, 1, 0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		uploadFrame(texture, eng.Buffer())

		gl.BindVertexArray(vao)
		gl.DrawElements(gl.TRIANGLES, 6, gl.UNSIGNED_INT, nil)

		window.SwapBuffers()
		glfw.PollEvents()
		time.Sleep(delay)
	}

	return nil
}

// handleInput applies the spec.md §6 key bindings and returns the updated
// camera position.
func handleInput(window *glfw.Window, camera vec3.V3) vec3.V3 {
	if window.GetKey(glfw.KeyEscape) == glfw.Press {
		window.SetShouldClose(true)
	}

	ctrl := window.GetKey(glfw.KeyLeftControl) == glfw.Press || window.GetKey(glfw.KeyRightControl) == glfw.Press
	if ctrl && window.GetKey(glfw.KeyR) == glfw.Press {
		return vec3.New(0, 0, 5)
	}

	x, y, z := camera.X, camera.Y, camera.Z
	if window.GetKey(glfw.KeyA) == glfw.Press {
		x -= cameraStep
	}
	if window.GetKey(glfw.KeyD) == glfw.Press {
		x += cameraStep
	}
	if window.GetKey(glfw.KeyQ) == glfw.Press {
		y += cameraStep
	}
	if window.GetKey(glfw.KeyE) == glfw.Press {
		y -= cameraStep
	}
	if window.GetKey(glfw.KeyW) == glfw.Press {
		z -= cameraStep
	}
	if window.GetKey(glfw.KeyS) == glfw.Press {
		z += cameraStep
	}

	return vec3.New(x, y, z)
}

// initQuad builds the fullscreen textured quad the reference's InitTexture
// sets up (original_source/screenrenderer.cpp), returning the VAO and the
// texture object the render loop uploads into every frame.
func initQuad() (uint32, uint32) {
	vertices := []float32{
		1, 1, 1, 1,
		1, -1, 1, 0,
		-1, -1, 0, 0,
		-1, 1, 0, 1,
	}
	indices := []uint32{0, 1, 3, 1, 2, 3}

	var vao, vbo, ebo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.GenBuffers(1, &ebo)
	gl.BindVertexArray(vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(1)

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_BORDER)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_BORDER)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.ActiveTexture(gl.TEXTURE0)

	return vao, texture
}

// uploadFrame pushes the engine's live buffer into the GPU texture
// (original_source/screenrenderer.cpp RenderFrame).
func uploadFrame(texture uint32, buf []vec3.V3) {
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB, sphereflake.ScreenWidth, sphereflake.ScreenHeight, 0,
		gl.RGB, gl.FLOAT, gl.Ptr(buf))
}
