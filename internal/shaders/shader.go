// Package shaders compiles and links the demo's GL program from source.
// It is the fallback the program binary cache falls through to when no
// usable cached binary exists.
package shaders

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// CompileShaderFromSource compiles a single shader stage.
func CompileShaderFromSource(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logMsg := make([]byte, logLength)
		gl.GetShaderInfoLog(shader, logLength, nil, &logMsg[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile shader: %s", logMsg)
	}

	return shader, nil
}

// NewProgram compiles the demo's vertex and fragment shaders and links
// them into a program, returning the linked handle. Shader objects are
// released once the program is linked; on link failure the program is
// released as well.
func NewProgram() (uint32, error) {
	vertShader, err := CompileShaderFromSource(VertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	fragShader, err := CompileShaderFromSource(FragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertShader)
		return 0, fmt.Errorf("fragment shader: %w", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	gl.DeleteShader(vertShader)
	gl.DeleteShader(fragShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		logMsg := make([]byte, logLength)
		gl.GetProgramInfoLog(program, logLength, nil, &logMsg[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link program: %s", logMsg)
	}

	return program, nil
}
