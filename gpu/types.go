// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// ShaderTypes are the pipeline stages a [Shader] can be compiled for.
type ShaderTypes int32

const (
	VertexShader ShaderTypes = iota
	FragmentShader
)

func (st ShaderTypes) String() string {
	switch st {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	}
	return "unknown"
}

// Usages are hints for how the contents of a [Buffer] will be accessed.
type Usages int32

const (
	// Static buffers are written once and drawn many times.
	Static Usages = iota
)

func (u Usages) String() string {
	if u == Static {
		return "static"
	}
	return "unknown"
}

// DepthFuncs are depth comparisons used by [API.DepthTest].
type DepthFuncs int32

const (
	// Less passes fragments closer to the camera than the stored depth.
	Less DepthFuncs = iota
)

// Float32Size is the size in bytes of one vertex component.
const Float32Size = 4
