// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gputest provides a [gpu.API] implementation that records
// calls instead of talking to a device, for use in tests.
package gputest

import (
	"slices"
	"strings"

	"cogentcore.org/cube/gpu"
)

var _ gpu.API = (*Recorder)(nil)

// Call is one recorded API call.
type Call struct {
	Name string
	Args []any
}

// Recorder is a [gpu.API] that appends every call to Calls.
// Shader sources are checked with a minimal syntax check so that
// compile failures can be exercised without a driver.
type Recorder struct {
	// Calls are all calls in the order they were made.
	Calls []Call

	// Uniforms maps the active uniform names of every linked program
	// to their locations. Names not present resolve to -1.
	Uniforms map[string]int32

	// FailLink makes every link fail.
	FailLink bool

	// Errors are returned by successive Error calls; 0 after they run out.
	Errors []uint32

	next     uint32
	compiled map[uint32]bool
	logs     map[uint32][]byte
	attached map[uint32][]uint32
	linked   map[uint32]bool
	live     map[uint32]string
}

// NewRecorder returns a Recorder whose programs have a single
// uniform named "mvp" at location 0.
func NewRecorder() *Recorder {
	return &Recorder{Uniforms: map[string]int32{"mvp": 0}}
}

// Record appends a call. It is exported so that fakes of other
// collaborators can interleave their calls with the API calls.
func (rc *Recorder) Record(name string, args ...any) {
	rc.Calls = append(rc.Calls, Call{Name: name, Args: args})
}

// Names returns the names of all recorded calls in order.
func (rc *Recorder) Names() []string {
	nms := make([]string, len(rc.Calls))
	for i, c := range rc.Calls {
		nms[i] = c.Name
	}
	return nms
}

// Count returns how many times the named call was made.
func (rc *Recorder) Count(name string) int {
	n := 0
	for _, c := range rc.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Find returns the recorded calls with the given name.
func (rc *Recorder) Find(name string) []Call {
	var cs []Call
	for _, c := range rc.Calls {
		if c.Name == name {
			cs = append(cs, c)
		}
	}
	return cs
}

// Reset forgets recorded calls, keeping object state.
func (rc *Recorder) Reset() {
	rc.Calls = nil
}

// Live returns the kinds of all created objects that have not been
// deleted yet, sorted.
func (rc *Recorder) Live() []string {
	var ks []string
	for _, k := range rc.live {
		ks = append(ks, k)
	}
	slices.Sort(ks)
	return ks
}

// ValidSource is the syntax check applied to shader sources: it
// requires a main function and balanced braces and parentheses,
// and rejects sources containing an #error directive.
func ValidSource(src string) bool {
	if !strings.Contains(src, "void main(") || strings.Contains(src, "#error") {
		return false
	}
	return balanced(src, '{', '}') && balanced(src, '(', ')')
}

func balanced(src string, opn, cls rune) bool {
	depth := 0
	for _, r := range src {
		switch r {
		case opn:
			depth++
		case cls:
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

func (rc *Recorder) create(kind string) uint32 {
	if rc.live == nil {
		rc.live = make(map[uint32]string)
	}
	rc.next++
	rc.live[rc.next] = kind
	return rc.next
}

func (rc *Recorder) delete(h uint32) {
	delete(rc.live, h)
}

func (rc *Recorder) CreateShader(typ gpu.ShaderTypes) uint32 {
	h := rc.create("shader")
	rc.Record("CreateShader", typ, h)
	return h
}

func (rc *Recorder) ShaderSource(shader uint32, src string) {
	rc.Record("ShaderSource", shader, src)
	if rc.compiled == nil {
		rc.compiled = make(map[uint32]bool)
		rc.logs = make(map[uint32][]byte)
	}
	if ValidSource(src) {
		rc.compiled[shader] = true
		rc.logs[shader] = nil
		return
	}
	rc.compiled[shader] = false
	rc.logs[shader] = []byte("0:1(1): error: syntax error\x00")
}

func (rc *Recorder) CompileShader(shader uint32) {
	rc.Record("CompileShader", shader)
}

func (rc *Recorder) ShaderCompiled(shader uint32) bool {
	rc.Record("ShaderCompiled", shader)
	return rc.compiled[shader]
}

func (rc *Recorder) ShaderInfoLog(shader uint32) []byte {
	rc.Record("ShaderInfoLog", shader)
	return rc.logs[shader]
}

func (rc *Recorder) DeleteShader(shader uint32) {
	rc.Record("DeleteShader", shader)
	rc.delete(shader)
}

func (rc *Recorder) CreateProgram() uint32 {
	h := rc.create("program")
	rc.Record("CreateProgram", h)
	return h
}

func (rc *Recorder) AttachShader(program, shader uint32) {
	rc.Record("AttachShader", program, shader)
	if rc.attached == nil {
		rc.attached = make(map[uint32][]uint32)
	}
	rc.attached[program] = append(rc.attached[program], shader)
}

func (rc *Recorder) DetachShader(program, shader uint32) {
	rc.Record("DetachShader", program, shader)
	rc.attached[program] = slices.DeleteFunc(rc.attached[program], func(s uint32) bool { return s == shader })
}

func (rc *Recorder) LinkProgram(program uint32) {
	rc.Record("LinkProgram", program)
	if rc.linked == nil {
		rc.linked = make(map[uint32]bool)
	}
	ok := !rc.FailLink && len(rc.attached[program]) == 2
	for _, sh := range rc.attached[program] {
		ok = ok && rc.compiled[sh]
	}
	rc.linked[program] = ok
}

func (rc *Recorder) ProgramLinked(program uint32) bool {
	rc.Record("ProgramLinked", program)
	return rc.linked[program]
}

func (rc *Recorder) ProgramInfoLog(program uint32) []byte {
	rc.Record("ProgramInfoLog", program)
	if rc.linked[program] {
		return nil
	}
	return []byte("error: linking failed\x00")
}

func (rc *Recorder) UseProgram(program uint32) {
	rc.Record("UseProgram", program)
}

func (rc *Recorder) DeleteProgram(program uint32) {
	rc.Record("DeleteProgram", program)
	rc.delete(program)
}

func (rc *Recorder) UniformLocation(program uint32, name string) int32 {
	rc.Record("UniformLocation", program, name)
	if loc, ok := rc.Uniforms[name]; ok && rc.linked[program] {
		return loc
	}
	return -1
}

func (rc *Recorder) UniformMatrix4(location int32, m *[16]float32) {
	rc.Record("UniformMatrix4", location, *m)
}

func (rc *Recorder) GenBuffer() uint32 {
	h := rc.create("buffer")
	rc.Record("GenBuffer", h)
	return h
}

func (rc *Recorder) BindArrayBuffer(buffer uint32) {
	rc.Record("BindArrayBuffer", buffer)
}

func (rc *Recorder) BufferData(data []float32, usage gpu.Usages) {
	rc.Record("BufferData", slices.Clone(data), usage)
}

func (rc *Recorder) DeleteBuffer(buffer uint32) {
	rc.Record("DeleteBuffer", buffer)
	rc.delete(buffer)
}

func (rc *Recorder) GenVertexArray() uint32 {
	h := rc.create("vertex array")
	rc.Record("GenVertexArray", h)
	return h
}

func (rc *Recorder) BindVertexArray(vao uint32) {
	rc.Record("BindVertexArray", vao)
}

func (rc *Recorder) DeleteVertexArray(vao uint32) {
	rc.Record("DeleteVertexArray", vao)
	rc.delete(vao)
}

func (rc *Recorder) EnableVertexAttribArray(index uint32) {
	rc.Record("EnableVertexAttribArray", index)
}

func (rc *Recorder) VertexAttribPointer(index uint32, size int32) {
	rc.Record("VertexAttribPointer", index, size)
}

func (rc *Recorder) DepthTest(fn gpu.DepthFuncs) {
	rc.Record("DepthTest", fn)
}

func (rc *Recorder) ClearColor(r, g, b, a float32) {
	rc.Record("ClearColor", r, g, b, a)
}

func (rc *Recorder) Clear(color, depth bool) {
	rc.Record("Clear", color, depth)
}

func (rc *Recorder) DrawTriangles(first, count int32) {
	rc.Record("DrawTriangles", first, count)
}

func (rc *Recorder) Error() uint32 {
	rc.Record("Error")
	if len(rc.Errors) == 0 {
		return 0
	}
	code := rc.Errors[0]
	rc.Errors = rc.Errors[1:]
	return code
}
