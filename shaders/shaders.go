// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaders loads shader source text. The GLSL sources for
// the cube are kept alongside this file.
package shaders

import (
	"fmt"
	"io/fs"
	"strings"
)

// Default file names of the shader sources.
const (
	Vertex   = "vertex.glsl"
	Fragment = "fragment.glsl"
)

// Load reads the shader source at the given path in fsys.
// A missing, unreadable or empty file is an error.
func Load(fsys fs.FS, path string) (string, error) {
	b, err := fs.ReadFile(fsys, path)
	if err != nil {
		return "", fmt.Errorf("shaders: %w", err)
	}
	if strings.TrimSpace(string(b)) == "" {
		return "", fmt.Errorf("shaders: %s is empty", path)
	}
	return string(b), nil
}

// Sources reads the vertex and fragment shader sources.
func Sources(fsys fs.FS, vertex, fragment string) (vs, frag string, err error) {
	vs, err = Load(fsys, vertex)
	if err != nil {
		return "", "", err
	}
	frag, err = Load(fsys, fragment)
	if err != nil {
		return "", "", err
	}
	return vs, frag, nil
}
