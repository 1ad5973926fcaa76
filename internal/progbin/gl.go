package progbin

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GLDriver implements Driver over the OpenGL 4.1 core binding. All
// methods must run on the thread holding the current GL context.
type GLDriver struct{}

func (GLDriver) NumProgramBinaryFormats() int32 {
	var formats int32
	gl.GetIntegerv(gl.NUM_PROGRAM_BINARY_FORMATS, &formats)
	return formats
}

// HasGetProgramBinary reports true unconditionally: glGetProgramBinary
// is core in 4.1, so the binding always links it.
func (GLDriver) HasGetProgramBinary() bool { return true }

func (GLDriver) LinkStatus(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (GLDriver) BinaryLength(program uint32) int32 {
	var length int32
	gl.GetProgramiv(program, gl.PROGRAM_BINARY_LENGTH, &length)
	return length
}

func (GLDriver) GetProgramBinary(program uint32, buf []byte) (uint32, int32, error) {
	var format uint32
	var n int32
	gl.GetProgramBinary(program, int32(len(buf)), &n, &format, gl.Ptr(buf))
	if err := glError("glGetProgramBinary"); err != nil {
		return 0, 0, err
	}
	return format, n, nil
}

func (GLDriver) CreateProgram() uint32 { return gl.CreateProgram() }

func (GLDriver) LoadBinary(program uint32, format uint32, data []byte) error {
	gl.ProgramBinary(program, format, gl.Ptr(data), int32(len(data)))
	return glError("glProgramBinary")
}

func (GLDriver) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (GLDriver) InfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	logMsg := make([]byte, logLength)
	gl.GetProgramInfoLog(program, logLength, nil, &logMsg[0])
	return strings.TrimRight(string(logMsg), "\x00\n ")
}

// glError drains the GL error flag after call and converts any error
// code into a returned error.
func glError(call string) error {
	code := gl.GetError()
	if code == gl.NO_ERROR {
		return nil
	}
	return fmt.Errorf("%s: %s", call, glErrorName(code))
}

func glErrorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return fmt.Sprintf("0x%04X", code)
	}
}
