// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"
)

// Program is a linked vertex and fragment shader pair, ready for drawing.
// Uniform locations are resolved on first use and cached.
type Program struct {
	api    API
	init   bool
	handle uint32
	unis   map[string]Uniform
}

// LinkError is returned when a program fails to link.
// Log is the diagnostic text reported by the driver.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("gpu: failed to link program:\n%s", e.Log)
}

// Link links the given compiled stages into a new Program.
// The stages are detached and released after a successful link,
// as the program keeps its own copy of the executable.
// On failure the program object is deleted and a [*LinkError]
// is returned; the stages are left to the caller.
func Link(api API, vs, fs *Shader) (*Program, error) {
	handle := api.CreateProgram()
	api.AttachShader(handle, vs.handle)
	api.AttachShader(handle, fs.handle)
	api.LinkProgram(handle)
	if !api.ProgramLinked(handle) {
		msg := InfoLog(api.ProgramInfoLog(handle))
		api.DeleteProgram(handle)
		return nil, &LinkError{Log: msg}
	}
	for _, sh := range []*Shader{vs, fs} {
		api.DetachShader(handle, sh.handle)
		sh.Release()
	}
	return &Program{api: api, init: true, handle: handle}, nil
}

// Handle returns the driver handle for this program.
func (pr *Program) Handle() uint32 {
	return pr.handle
}

// Use makes this the active program for subsequent draw calls.
func (pr *Program) Use() {
	if !pr.init {
		return
	}
	pr.api.UseProgram(pr.handle)
}

// Uniform returns the uniform of the given exact name.
// If the program has no such active uniform, the returned
// Uniform is not [Uniform.Valid] and writes to it are skipped.
func (pr *Program) Uniform(name string) Uniform {
	if u, ok := pr.unis[name]; ok {
		return u
	}
	if pr.unis == nil {
		pr.unis = make(map[string]Uniform)
	}
	u := Uniform{api: pr.api, Name: name, location: -1}
	if pr.init {
		u.location = pr.api.UniformLocation(pr.handle, name)
	}
	if !u.Valid() {
		slog.Warn("gpu Program Uniform: name not found", "name", name)
	}
	pr.unis[name] = u
	return u
}

// Release deletes the program; it is safe to call more than once.
func (pr *Program) Release() {
	if pr == nil || !pr.init {
		return
	}
	pr.api.DeleteProgram(pr.handle)
	pr.handle = 0
	pr.init = false
	pr.unis = nil
}

// Uniform is a resolved uniform location in a [Program].
type Uniform struct {
	api      API
	location int32

	// Name is the name the uniform was resolved with.
	Name string
}

// Location returns the resolved location, -1 if unresolved.
func (u Uniform) Location() int32 {
	return u.location
}

// Valid reports whether the uniform was found in the program.
func (u Uniform) Valid() bool {
	return u.api != nil && u.location >= 0
}

// SetMatrix4 uploads a column-major 4x4 matrix.
// The program must be active. It does nothing if the uniform is not valid.
func (u Uniform) SetMatrix4(m *[16]float32) {
	if !u.Valid() {
		return
	}
	u.api.UniformMatrix4(u.location, m)
}
