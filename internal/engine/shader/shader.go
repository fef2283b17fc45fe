// Package shader compiles the scene's GLSL programs.
package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// CompileProgram builds a program from one vertex and one fragment stage.
// name only appears in error messages.
func CompileProgram(name, vertexSrc, fragmentSrc string) (uint32, error) {
	vert, err := compileStage(gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return 0, fmt.Errorf("%s.vert: %w", name, err)
	}
	defer gl.DeleteShader(vert)

	frag, err := compileStage(gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		return 0, fmt.Errorf("%s.frag: %w", name, err)
	}
	defer gl.DeleteShader(frag)

	program := gl.CreateProgram()
	gl.AttachShader(program, vert)
	gl.AttachShader(program, frag)
	gl.LinkProgram(program)
	gl.DetachShader(program, vert)
	gl.DetachShader(program, frag)

	if msg, ok := status(program, gl.GetProgramiv, gl.GetProgramInfoLog, gl.LINK_STATUS); !ok {
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("linking %s: %s", name, msg)
	}
	return program, nil
}

func compileStage(stage uint32, source string) (uint32, error) {
	id := gl.CreateShader(stage)
	src, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, src, nil)
	free()
	gl.CompileShader(id)

	if msg, ok := status(id, gl.GetShaderiv, gl.GetShaderInfoLog, gl.COMPILE_STATUS); !ok {
		gl.DeleteShader(id)
		return 0, fmt.Errorf("compile: %s", msg)
	}
	return id, nil
}

// status reports whether the object's pname flag is set and returns the
// info log when it is not. Shaders and programs share the same query shape.
func status(
	object uint32,
	getiv func(uint32, uint32, *int32),
	getLog func(uint32, int32, *int32, *uint8),
	pname uint32,
) (string, bool) {
	var ok int32
	getiv(object, pname, &ok)
	if ok != gl.FALSE {
		return "", true
	}

	var n int32
	getiv(object, gl.INFO_LOG_LENGTH, &n)
	if n == 0 {
		return "no info log", false
	}
	buf := make([]uint8, n)
	getLog(object, n, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00\n"), false
}

// GetUniform returns the uniform location for the given name, or -1 if the
// uniform is inactive or the program is the null program.
func GetUniform(program uint32, name string) int32 {
	if program == 0 {
		return -1
	}
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// BindBlock attaches a uniform block of program to a binding point. Missing
// blocks are ignored.
func BindBlock(program uint32, block string, binding uint32) {
	if program == 0 {
		return
	}
	index := gl.GetUniformBlockIndex(program, gl.Str(block+"\x00"))
	if index == gl.INVALID_INDEX {
		return
	}
	gl.UniformBlockBinding(program, index, binding)
}
