package main

import (
	"fmt"

	"github.com/go-gl/gl/v3.2-core/gl"
)

// compileShader compiles one shader stage, surfacing the info log through
// an error rather than the reference's fixed-size info_log buffer + SDL_Log
// pair (original_source/glprogram.cpp CompileShader).
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var success int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &success)
	if success == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		return 0, fmt.Errorf("compile shader: %s", string(log))
	}

	return shader, nil
}

// linkProgram links the compiled vertex/fragment stages into a program,
// deleting the stages afterwards (original_source/glprogram.cpp
// CompileShaders).
func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vert)
	gl.AttachShader(program, frag)
	gl.LinkProgram(program)

	var success int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &success)
	if success == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		return 0, fmt.Errorf("link program: %s", string(log))
	}

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	return program, nil
}

// vertexShaderSource and fragmentShaderSource draw one textured quad
// covering the whole viewport — the minimal pass-through pair the
// reference's GLProgram loads from bin/shaders/{vertex,fragment}.glsl.
const vertexShaderSource = `
#version 150
in vec2 aPos;
in vec2 aTexCoord;
out vec2 vTexCoord;
void main() {
	vTexCoord = aTexCoord;
	gl_Position = vec4(aPos, 0.0, 1.0);
}
`

const fragmentShaderSource = `
#version 150
in vec2 vTexCoord;
out vec4 fragColor;
uniform sampler2D uTex;
void main() {
	fragColor = texture(uTex, vTexCoord);
}
`
