// Package scene owns the demo geometry: a single triangle drawn with
// the cached program and an animated color uniform.
package scene

import (
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var triangleVertices = []float32{
	0.5, -0.5, 0.0, // bottom right
	-0.5, -0.5, 0.0, // bottom left
	0.0, 0.5, 0.0, // top
}

type Scene struct {
	vao uint32
	vbo uint32
}

// New uploads the triangle geometry. Requires a current GL context.
func New() *Scene {
	s := &Scene{}

	gl.GenVertexArrays(1, &s.vao)
	gl.GenBuffers(1, &s.vbo)

	gl.BindVertexArray(s.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(triangleVertices)*4, gl.Ptr(triangleVertices), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)

	return s
}

// Draw clears the frame and renders the triangle with the program,
// pulsing the ourColor uniform's green channel over elapsed seconds.
func (s *Scene) Draw(program uint32, elapsed float64) {
	gl.ClearColor(0.2, 0.3, 0.3, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(program)

	green := float32(math.Sin(elapsed)/2.0 + 0.5)
	colorLocation := gl.GetUniformLocation(program, gl.Str("ourColor\x00"))
	gl.Uniform4f(colorLocation, 0.0, green, 0.0, 1.0)

	gl.BindVertexArray(s.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
}

// Release frees the vertex array and buffer.
func (s *Scene) Release() {
	gl.DeleteVertexArrays(1, &s.vao)
	gl.DeleteBuffers(1, &s.vbo)
}
