// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// API is the subset of the graphics API used to draw the cube.
// It operates on the current context, so all calls must be made
// from the thread that owns it (see [runtime.LockOSThread]).
//
// The glgpu package provides the OpenGL implementation, and
// gputest provides a recording implementation for tests.
type API interface {
	// CreateShader returns a new shader object of the given type.
	CreateShader(typ ShaderTypes) uint32

	// ShaderSource replaces the source code of the given shader.
	ShaderSource(shader uint32, src string)

	// CompileShader compiles the current source of the given shader.
	CompileShader(shader uint32)

	// ShaderCompiled reports whether the last compile succeeded.
	ShaderCompiled(shader uint32) bool

	// ShaderInfoLog returns the raw info log of the shader, sized as
	// reported by the driver (including any trailing NUL terminator).
	ShaderInfoLog(shader uint32) []byte

	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)

	// ProgramLinked reports whether the last link succeeded.
	ProgramLinked(program uint32) bool

	// ProgramInfoLog returns the raw info log of the program, sized as
	// reported by the driver (including any trailing NUL terminator).
	ProgramInfoLog(program uint32) []byte

	UseProgram(program uint32)
	DeleteProgram(program uint32)

	// UniformLocation returns the location of the named uniform,
	// or -1 if the linked program has no such active uniform.
	UniformLocation(program uint32, name string) int32

	// UniformMatrix4 uploads one column-major 4x4 matrix.
	UniformMatrix4(location int32, m *[16]float32)

	GenBuffer() uint32

	// BindArrayBuffer binds the buffer to the vertex attribute target.
	BindArrayBuffer(buffer uint32)

	// BufferData uploads data to the buffer bound to the array target.
	BufferData(data []float32, usage Usages)

	DeleteBuffer(buffer uint32)

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	EnableVertexAttribArray(index uint32)

	// VertexAttribPointer describes the buffer bound to the array target
	// as tightly packed float32 values with size components per vertex.
	VertexAttribPointer(index uint32, size int32)

	// DepthTest enables depth testing with the given comparison.
	DepthTest(fn DepthFuncs)

	ClearColor(r, g, b, a float32)

	// Clear clears the given buffers of the current render target.
	Clear(color, depth bool)

	// DrawTriangles draws count vertices from first as a triangle list.
	DrawTriangles(first, count int32)

	// Error returns the oldest recorded error code, or 0 if none.
	Error() uint32
}
