// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgpu implements [gpu.API] on OpenGL 4.1 core profile.
package glgpu

import (
	"fmt"
	"log/slog"
	"unsafe"

	"cogentcore.org/cube/gpu"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Init loads the OpenGL function table through the given lookup,
// typically the window system's GetProcAddress. A context must be
// current on the calling thread. It returns the API to draw with.
func Init(procAddr func(name string) unsafe.Pointer) (*API, error) {
	if err := gl.InitWithProcAddrFunc(procAddr); err != nil {
		return nil, fmt.Errorf("glgpu Init: %w", err)
	}
	slog.Info("glgpu: OpenGL initialized",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
	return &API{}, nil
}

// API is the OpenGL [gpu.API]. All methods call straight through
// to the current context.
type API struct{}

var _ gpu.API = (*API)(nil)

var glShaders = map[gpu.ShaderTypes]uint32{
	gpu.VertexShader:   gl.VERTEX_SHADER,
	gpu.FragmentShader: gl.FRAGMENT_SHADER,
}

var glUsages = map[gpu.Usages]uint32{
	gpu.Static: gl.STATIC_DRAW,
}

var glDepthFuncs = map[gpu.DepthFuncs]uint32{
	gpu.Less: gl.LESS,
}

func (*API) CreateShader(typ gpu.ShaderTypes) uint32 {
	return gl.CreateShader(glShaders[typ])
}

func (*API) ShaderSource(shader uint32, src string) {
	csources, free := gl.Strs(cString(src))
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (*API) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (*API) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (*API) ShaderInfoLog(shader uint32) []byte {
	var n int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n)
	gl.GetShaderInfoLog(shader, n, nil, &buf[0])
	return buf
}

func (*API) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (*API) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (*API) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (*API) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

func (*API) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (*API) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (*API) ProgramInfoLog(program uint32) []byte {
	var n int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n)
	gl.GetProgramInfoLog(program, n, nil, &buf[0])
	return buf
}

func (*API) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (*API) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (*API) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(cString(name)))
}

func (*API) UniformMatrix4(location int32, m *[16]float32) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (*API) GenBuffer() uint32 {
	var b uint32
	gl.GenBuffers(1, &b)
	return b
}

func (*API) BindArrayBuffer(buffer uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
}

func (*API) BufferData(data []float32, usage gpu.Usages) {
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*gpu.Float32Size, gl.Ptr(data), glUsages[usage])
}

func (*API) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (*API) GenVertexArray() uint32 {
	var va uint32
	gl.GenVertexArrays(1, &va)
	return va
}

func (*API) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (*API) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (*API) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (*API) VertexAttribPointer(index uint32, size int32) {
	gl.VertexAttribPointer(index, size, gl.FLOAT, false, 0, gl.PtrOffset(0))
}

func (*API) DepthTest(fn gpu.DepthFuncs) {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(glDepthFuncs[fn])
}

func (*API) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (*API) Clear(color, depth bool) {
	bits := uint32(0)
	if color {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if depth {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(bits)
}

func (*API) DrawTriangles(first, count int32) {
	gl.DrawArrays(gl.TRIANGLES, first, count)
}

func (*API) Error() uint32 {
	return gl.GetError()
}
