// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"cogentcore.org/cube/base/errors"
)

// Shader is a successfully compiled shader stage.
type Shader struct {
	api    API
	init   bool
	handle uint32

	// Type is the pipeline stage this shader was compiled for.
	Type ShaderTypes
}

// CompileError is returned when a shader fails to compile.
// Log is the diagnostic text reported by the driver.
type CompileError struct {
	Type ShaderTypes
	Log  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("gpu: failed to compile %s shader:\n%s", e.Type, e.Log)
}

// Compile compiles the given source for the given stage.
// On failure the shader object is deleted and a [*CompileError]
// holding the driver diagnostic is returned, so a returned
// Shader is always usable for linking.
func Compile(api API, typ ShaderTypes, src string) (*Shader, error) {
	if strings.TrimSpace(src) == "" {
		return nil, fmt.Errorf("gpu: empty %s shader source", typ)
	}
	handle := api.CreateShader(typ)
	api.ShaderSource(handle, src)
	api.CompileShader(handle)
	if !api.ShaderCompiled(handle) {
		msg := InfoLog(api.ShaderInfoLog(handle))
		api.DeleteShader(handle)
		return nil, &CompileError{Type: typ, Log: msg}
	}
	return &Shader{api: api, init: true, handle: handle, Type: typ}, nil
}

// Handle returns the driver handle for this shader.
func (sh *Shader) Handle() uint32 {
	return sh.handle
}

// Release deletes the shader; it is safe to call more than once.
func (sh *Shader) Release() {
	if sh == nil || !sh.init {
		return
	}
	sh.api.DeleteShader(sh.handle)
	sh.handle = 0
	sh.init = false
}

// InfoLog decodes a raw info log as returned by the driver.
// Exactly one trailing NUL terminator is removed if present,
// and invalid UTF-8 is replaced so the text can always be shown.
func InfoLog(raw []byte) string {
	if n := len(raw); n > 0 && raw[n-1] == 0 {
		raw = raw[:n-1]
	}
	if utf8.Valid(raw) {
		return string(raw)
	}
	return strings.ToValidUTF8(string(raw), "�")
}

// IsCompileError reports whether err is or wraps a [*CompileError].
func IsCompileError(err error) bool {
	var ce *CompileError
	return errors.As(err, &ce)
}
